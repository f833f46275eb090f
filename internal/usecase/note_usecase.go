package usecase

import (
	"context"

	"hdnotes/internal/domain/entity"

	"github.com/google/uuid"
)

// Listing bounds.
const (
	DefaultNotesPage  = 1
	DefaultNotesLimit = 10
	MaxNotesLimit     = 100
)

// ListNotesInput selects one page. Zero values fall back to the defaults.
type ListNotesInput struct {
	Page  int
	Limit int
}

// ListNotesOutput is one page of notes, newest first.
type ListNotesOutput struct {
	Notes      []*entity.Note
	Pagination entity.Pagination
}

// NoteUsecase manages the notes of a single owner.
type NoteUsecase interface {
	CreateNote(ctx context.Context, ownerID uuid.UUID, text string) (*entity.Note, error)
	ListNotes(ctx context.Context, ownerID uuid.UUID, input *ListNotesInput) (*ListNotesOutput, error)
	GetNote(ctx context.Context, ownerID, noteID uuid.UUID) (*entity.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID uuid.UUID, text string) (*entity.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID uuid.UUID) error
}
