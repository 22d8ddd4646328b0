// Package cache определяет порт кэширования для HTTP слоя.
package cache

import (
	"context"
	"time"
)

// Cache определяет интерфейс для операций кэширования.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Close() error
}
