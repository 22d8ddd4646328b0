// Package auth содержит HTTP обработчики для регистрации, входа и профиля.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/auth/domain/entities"
	domainsvc "notekeeper/internal/auth/domain/services"
	"notekeeper/internal/auth/ports/api"
	"notekeeper/internal/gateway/app/dto"
	"notekeeper/internal/gateway/app/http/middleware"
	"notekeeper/internal/gateway/ports/cache"
	"notekeeper/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister   = "auth handler: register"
	LogHandlerLogin      = "auth handler: login"
	LogHandlerGetProfile = "auth handler: get profile"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorInternalServer       = "internal server error"
)

// ProfileCacheKeyPrefix - префикс ключей кэша профилей.
const ProfileCacheKeyPrefix = "profile:"

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
	cache       cache.Cache
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase, cache cache.Cache) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		cache:       cache,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "full name, email and password are required",
		})
	}

	token, err := h.authUseCase.Register(requestCtx, req.FullName, req.Email, req.Password)
	if err != nil {
		return respondAuthError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(toTokenResponse(token))
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return respondAuthError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusOK).JSON(toTokenResponse(token))
}

// GetProfile обрабатывает запрос на получение профиля текущего пользователя.
// Профили неизменяемы, поэтому результат кэшируется без инвалидации.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	userID, ok := middleware.UserIDFromRequest(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	cacheKey := ProfileCacheKeyPrefix + userID
	if cached, err := h.cache.Get(requestCtx, cacheKey); err == nil && cached != "" {
		var profile dto.UserProfileResponse
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			log.Debug(requestCtx, "profile served from cache", zap.String("userID", userID))
			return ctx.Status(http.StatusOK).JSON(&profile)
		}
	}

	user, err := h.userUseCase.GetUserProfile(requestCtx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorInternalServer,
		})
	}

	profile := dto.UserProfileResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}

	if encoded, err := json.Marshal(&profile); err == nil {
		if err := h.cache.Set(requestCtx, cacheKey, string(encoded), 0); err != nil {
			log.Warn(requestCtx, "failed to cache user profile", zap.Error(err))
		}
	}

	return ctx.Status(http.StatusOK).JSON(&profile)
}

// respondAuthError транслирует ошибки use case в HTTP статусы. Ошибки
// валидации и конфликты возвращаются как 400, все прочее скрывается за 500.
func respondAuthError(ctx fiber.Ctx, requestCtx context.Context, err error) error {
	switch {
	case errors.Is(err, entities.ErrEmptyFullName),
		errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrPasswordTooShort),
		errors.Is(err, domainsvc.ErrInvalidPassword),
		errors.Is(err, domainsvc.ErrEmailAlreadyExists),
		errors.Is(err, domainsvc.ErrInvalidCredentials):
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		logger.Log(requestCtx).Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorInternalServer,
		})
	}
}

func toTokenResponse(token *domainsvc.AccessToken) *dto.TokenResponse {
	return &dto.TokenResponse{
		UserID:      token.UserID,
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
	}
}
