// Package repositories определяет порты хранения заметок.
package repositories

import (
	"context"

	"notekeeper/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс хранилища заметок. Все операции чтения
// и изменения выполняются в пределах пары (id, userID): заметка другого
// владельца неотличима от отсутствующей.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error)

	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)

	SearchByUserID(ctx context.Context, userID, query string) ([]*entities.Note, error)

	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	Delete(ctx context.Context, noteID, userID string) error
}
