// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notekeeper/internal/notes/domain/entities"
	"notekeeper/internal/notes/ports/api"
	"notekeeper/internal/notes/ports/repositories"
	"notekeeper/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNoteNotFound    = entities.ErrNoteNotFound
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrNoChanges       = errors.New("no changes provided")
	ErrEmptyQuery      = errors.New("search query is required")
	ErrNoNotesFound    = errors.New("no notes found matching the query")
)

// NoteUseCaseImpl представляет собой бизнес-логику работы с заметками.
// Владелец передается явно каждым вызовом: шлюз уже проверил токен.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo: noteRepo,
	}
}

// CreateNote создает новую заметку для пользователя.
func (uc *NoteUseCaseImpl) CreateNote(ctx context.Context, userID, title, content string, tags []string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "CreateNote"), zap.String("userID", userID))

	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}

	note := entities.NewNote(userID, title, content, tags)
	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Info(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// EditNote применяет частичное обновление заметки. Обязательно хотя бы одно из
// полей title/content/tags: isPinned сам по себе изменением не считается.
// Переданные, но пустые title и content игнорируются; isPinned применяется
// только при явном присутствии в запросе.
func (uc *NoteUseCaseImpl) EditNote(ctx context.Context, userID, noteID string, update api.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "EditNote"), zap.String("noteID", noteID))

	if update.Title == nil && update.Content == nil && update.Tags == nil {
		return nil, ErrNoChanges
	}

	note, err := uc.getOwned(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && *update.Title != "" {
		note.Title = *update.Title
	}
	if update.Content != nil && *update.Content != "" {
		note.Content = *update.Content
	}
	if update.Tags != nil {
		note.Tags = *update.Tags
	}
	if update.IsPinned != nil {
		note.IsPinned = *update.IsPinned
	}

	updated, err := uc.updateOwned(ctx, note)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, err
	}

	log.Info(ctx, "note updated", zap.String("noteID", updated.ID))
	return updated, nil
}

// SetPinned выставляет флаг закрепления заметки.
func (uc *NoteUseCaseImpl) SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "SetPinned"), zap.String("noteID", noteID))

	note, err := uc.getOwned(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	note.IsPinned = pinned

	updated, err := uc.updateOwned(ctx, note)
	if err != nil {
		log.Error(ctx, "failed to update pinned flag", zap.Error(err))
		return nil, err
	}

	log.Info(ctx, "note pinned flag updated", zap.String("noteID", updated.ID), zap.Bool("isPinned", pinned))
	return updated, nil
}

// ListNotes возвращает все заметки пользователя, закрепленные первыми.
func (uc *NoteUseCaseImpl) ListNotes(ctx context.Context, userID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// SearchNotes ищет заметки пользователя по подстроке. Пустой запрос является
// ошибкой валидации; пустой результат поиска трактуется как отсутствие заметок.
func (uc *NoteUseCaseImpl) SearchNotes(ctx context.Context, userID, query string) ([]*entities.Note, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	notes, err := uc.noteRepo.SearchByUserID(ctx, userID, query)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to search notes", zap.Error(err))
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	if len(notes) == 0 {
		return nil, ErrNoNotesFound
	}

	return notes, nil
}

// DeleteNote удаляет заметку пользователя.
func (uc *NoteUseCaseImpl) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", "DeleteNote"), zap.String("noteID", noteID))

	err := uc.noteRepo.Delete(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	log.Info(ctx, "note deleted", zap.String("noteID", noteID))
	return nil
}

func (uc *NoteUseCaseImpl) getOwned(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

func (uc *NoteUseCaseImpl) updateOwned(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	updated, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return updated, nil
}
