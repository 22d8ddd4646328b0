// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "notekeeper/internal/auth/ports/services"
	"notekeeper/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// userIDLocalKey - ключ locals для идентификатора аутентифицированного пользователя.
const userIDLocalKey = "userID"

const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО проверки bearer токена.
// При успехе идентификатор пользователя сохраняется в locals запроса;
// при любой ошибке нижестоящий обработчик не вызывается.
func NewAuthMiddleware(tokenService svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		userID, err := tokenService.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		ctx.Locals(userIDLocalKey, userID)

		return ctx.Next()
	}
}

// UserIDFromRequest извлекает идентификатор аутентифицированного пользователя,
// сохраненный промежуточным ПО.
func UserIDFromRequest(ctx fiber.Ctx) (string, bool) {
	userID, ok := ctx.Locals(userIDLocalKey).(string)
	return userID, ok && userID != ""
}
