// Package api определяет основные порты сервиса аутентификации.
package api

import (
	"context"

	"notekeeper/internal/auth/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, fullName, email, password string) (*services.AccessToken, error)

	Login(ctx context.Context, email, password string) (*services.AccessToken, error)
}
