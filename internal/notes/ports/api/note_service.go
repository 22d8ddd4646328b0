// Package api определяет основной порт сервиса заметок.
package api

import (
	"context"

	"notekeeper/internal/notes/domain/entities"
)

// NoteUpdate описывает частичное обновление заметки. Nil-поле означает
// "не передано" и отличается от пустого или ложного значения.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

// NoteUseCase определяет операции над заметками, выполняемые от имени
// аутентифицированного владельца.
type NoteUseCase interface {
	CreateNote(ctx context.Context, userID, title, content string, tags []string) (*entities.Note, error)

	EditNote(ctx context.Context, userID, noteID string, update NoteUpdate) (*entities.Note, error)

	SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entities.Note, error)

	ListNotes(ctx context.Context, userID string) ([]*entities.Note, error)

	SearchNotes(ctx context.Context, userID, query string) ([]*entities.Note, error)

	DeleteNote(ctx context.Context, userID, noteID string) error
}
