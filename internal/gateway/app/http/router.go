// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	authapi "notekeeper/internal/auth/ports/api"
	svc "notekeeper/internal/auth/ports/services"
	"notekeeper/internal/gateway/app/http/auth"
	"notekeeper/internal/gateway/app/http/middleware"
	"notekeeper/internal/gateway/app/http/notes"
	"notekeeper/internal/gateway/ports/cache"
	notesapi "notekeeper/internal/notes/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase authapi.AuthUseCase,
	userUseCase authapi.UserUseCase,
	noteUseCase notesapi.NoteUseCase,
	tokenService svc.TokenService,
	profileCache cache.Cache,
) {
	authHandler := auth.NewHandler(authUseCase, userUseCase, profileCache)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Публичные маршруты.
	app.Get("/", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": "hello"})
	})
	app.Post("/create-account", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Защищенные маршруты.
	protected := app.Group("", middleware.NewAuthMiddleware(tokenService))
	protected.Get("/get-user", authHandler.GetProfile)
	protected.Post("/add-note", notesHandler.AddNote)
	protected.Put("/edit-note/:id", notesHandler.EditNote)
	protected.Get("/get-all-notes", notesHandler.GetAllNotes)
	protected.Delete("/delete-note/:id", notesHandler.DeleteNote)
	protected.Put("/update-note-pinned/:id", notesHandler.UpdateNotePinned)
	protected.Get("/search-notes", notesHandler.SearchNotes)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
