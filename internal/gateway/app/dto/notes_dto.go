package dto

import (
	"encoding/json"

	"notekeeper/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
// Теги разбираются отложенно: значение неожиданного типа не должно
// отклонять запрос целиком.
type CreateNoteRequest struct {
	Title   string          `json:"title" validate:"required"`
	Content string          `json:"content" validate:"required"`
	Tags    json.RawMessage `json:"tags"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// Указатели различают "поле не передано" и "передано пустое/ложное значение".
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

// UpdatePinnedRequest содержит явное значение флага закрепления.
type UpdatePinnedRequest struct {
	IsPinned bool `json:"isPinned"`
}

// NoteResponse содержит информацию о заметке для ответа.
type NoteResponse struct {
	Note *entities.Note `json:"note"`
}

// ListNotesResponse содержит список заметок.
type ListNotesResponse struct {
	Notes []*entities.Note `json:"notes"`
}
