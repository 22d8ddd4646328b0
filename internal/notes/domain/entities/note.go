// Package entities defines the domain entities for the notes service.
package entities

import (
	"errors"
	"time"
)

// ErrNoteNotFound возвращается, когда заметка отсутствует или принадлежит
// другому пользователю: эти случаи намеренно неразличимы.
var ErrNoteNotFound = errors.New("note not found")

// Note представляет собой заметку пользователя.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a new note with the given owner, title, content and tags.
func NewNote(userID, title, content string, tags []string) *Note {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now()
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
