package repository

import (
	"context"
	"errors"

	"hdnotes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when no active note of the owner matches the ID.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository persists notes. Soft-deleted notes are only ever excluded explicitly,
// by the *Active methods; there is no implicit query filter.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error

	// FindActiveByID returns the owner's note unless it is missing or soft-deleted.
	FindActiveByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Note, error)

	// ListActive returns one page of the owner's non-deleted notes, newest first, and the total count.
	ListActive(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Note, int64, error)

	UpdateText(ctx context.Context, ownerID, id uuid.UUID, text string) (*entity.Note, error)

	// SoftDelete flags the note as deleted.
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error

	// DeleteByOwner hard-deletes every note of an account.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
