// Package notes содержит HTTP обработчики для работы с заметками.
package notes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/gateway/app/dto"
	"notekeeper/internal/gateway/app/http/middleware"
	notesapp "notekeeper/internal/notes/app"
	"notekeeper/internal/notes/ports/api"
	"notekeeper/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerAddNote      = "notes handler: add note"
	LogHandlerEditNote     = "notes handler: edit note"
	LogHandlerGetAllNotes  = "notes handler: get all notes"
	LogHandlerDeleteNote   = "notes handler: delete note"
	LogHandlerUpdatePinned = "notes handler: update pinned"
	LogHandlerSearchNotes  = "notes handler: search notes"

	ErrorInvalidRequest       = "invalid request"
	ErrorUnauthorized         = "unauthorized"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorInternalServer       = "internal server error"
)

// Handler содержит HTTP обработчики для заметок.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{noteUseCase: noteUseCase}
}

// AddNote обрабатывает запрос на создание заметки.
func (h *Handler) AddNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddNote)

	userID, ok := middleware.UserIDFromRequest(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, userID, req.Title, req.Content, decodeTags(req.Tags))
	if err != nil {
		return respondNoteError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusOK).JSON(&dto.NoteResponse{Note: note})
}

// EditNote обрабатывает запрос на изменение заметки.
func (h *Handler) EditNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerEditNote)

	userID, ok := middleware.UserIDFromRequest(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	noteID := ctx.Params("id")

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	update := api.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	}

	note, err := h.noteUseCase.EditNote(requestCtx, userID, noteID, update)
	if err != nil {
		return respondNoteError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusOK).JSON(&dto.NoteResponse{Note: note})
}

// GetAllNotes обрабатывает запрос на получение всех заметок пользователя.
func (h *Handler) GetAllNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetAllNotes)

	userID, ok := middleware.UserIDFromRequest(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, userID)
	if err != nil {
		return respondNoteError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusOK).JSON(&dto.ListNotesResponse{Notes: notes})
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteNote)

	userID, ok := middleware.UserIDFromRequest(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	noteID := ctx.Params("id")

	if err := h.noteUseCase.DeleteNote(requestCtx, userID, noteID); err != nil {
		// Удаление несуществующей заметки считается ошибкой запроса.
		if errors.Is(err, notesapp.ErrNoteNotFound) {
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return respondNoteError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "note deleted successfully",
	})
}

// UpdateNotePinned обрабатывает запрос на изменение признака закрепления.
func (h *Handler) UpdateNotePinned(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdatePinned)

	userID, ok := middleware.UserIDFromRequest(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	noteID := ctx.Params("id")

	var req dto.UpdatePinnedRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	note, err := h.noteUseCase.SetPinned(requestCtx, userID, noteID, req.IsPinned)
	if err != nil {
		return respondNoteError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusOK).JSON(&dto.NoteResponse{Note: note})
}

// SearchNotes обрабатывает запрос на поиск заметок по подстроке.
func (h *Handler) SearchNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSearchNotes)

	userID, ok := middleware.UserIDFromRequest(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	query := ctx.Query("query")

	notes, err := h.noteUseCase.SearchNotes(requestCtx, userID, query)
	if err != nil {
		return respondNoteError(ctx, requestCtx, err)
	}

	return ctx.Status(http.StatusOK).JSON(&dto.ListNotesResponse{Notes: notes})
}

// respondNoteError транслирует ошибки use case в HTTP статусы.
func respondNoteError(ctx fiber.Ctx, requestCtx context.Context, err error) error {
	switch {
	case errors.Is(err, notesapp.ErrTitleRequired),
		errors.Is(err, notesapp.ErrContentRequired),
		errors.Is(err, notesapp.ErrNoChanges),
		errors.Is(err, notesapp.ErrEmptyQuery):
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, notesapp.ErrNoteNotFound),
		errors.Is(err, notesapp.ErrNoNotesFound):
		return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		logger.Log(requestCtx).Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorInternalServer,
		})
	}
}

func respondUnauthorized(ctx fiber.Ctx) error {
	return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"error": ErrorUnauthorized,
	})
}

// decodeTags разбирает теги из тела запроса. Отсутствующее или не являющееся
// массивом строк значение трактуется как пустой список.
func decodeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
