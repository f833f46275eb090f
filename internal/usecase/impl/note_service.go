package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "hdnotes/internal/delivery/context"
	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	noteRepo repository.NoteRepository
	logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(noteRepo repository.NoteRepository, logger *slog.Logger) usecase.NoteUsecase {
	return &noteService{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNote stores a new note for the owner.
func (srv *noteService) CreateNote(ctx context.Context, ownerID uuid.UUID, text string) (*entity.Note, error) {
	text, err := normalizeNoteText(text)
	if err != nil {
		return nil, err
	}

	note := &entity.Note{OwnerID: ownerID, Text: text}
	if err := srv.noteRepo.Create(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to create note")
	}
	srv.log(ctx).Debug("Note created", slog.Any("account_id", ownerID), slog.Any("note_id", note.ID))

	return note, nil
}

// ListNotes returns one page of the owner's active notes, newest first.
func (srv *noteService) ListNotes(ctx context.Context, ownerID uuid.UUID, input *usecase.ListNotesInput) (*usecase.ListNotesOutput, error) {
	page, limit := usecase.DefaultNotesPage, usecase.DefaultNotesLimit
	if input != nil {
		if input.Page > 0 {
			page = input.Page
		}
		if input.Limit > 0 {
			limit = min(input.Limit, usecase.MaxNotesLimit)
		}
	}

	notes, total, err := srv.noteRepo.ListActive(ctx, ownerID, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return &usecase.ListNotesOutput{
		Notes:      notes,
		Pagination: entity.NewPagination(page, limit, total),
	}, nil
}

// GetNote returns a single active note of the owner.
func (srv *noteService) GetNote(ctx context.Context, ownerID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := srv.noteRepo.FindActiveByID(ctx, ownerID, noteID)
	if err != nil {
		return nil, mapNoteError(err, "failed to get note")
	}

	return note, nil
}

// UpdateNote replaces the text of an active note.
func (srv *noteService) UpdateNote(ctx context.Context, ownerID, noteID uuid.UUID, text string) (*entity.Note, error) {
	text, err := normalizeNoteText(text)
	if err != nil {
		return nil, err
	}

	note, err := srv.noteRepo.UpdateText(ctx, ownerID, noteID, text)
	if err != nil {
		return nil, mapNoteError(err, "failed to update note")
	}

	return note, nil
}

// DeleteNote soft-deletes a note. A second delete reports not found.
func (srv *noteService) DeleteNote(ctx context.Context, ownerID, noteID uuid.UUID) error {
	if err := srv.noteRepo.SoftDelete(ctx, ownerID, noteID); err != nil {
		return mapNoteError(err, "failed to delete note")
	}
	srv.log(ctx).Debug("Note deleted", slog.Any("account_id", ownerID), slog.Any("note_id", noteID))

	return nil
}

func normalizeNoteText(text string) (string, error) {
	text = strings.TrimSpace(text)

	length := utf8.RuneCountInString(text)
	if length < entity.NoteTextMinLength || length > entity.NoteTextMaxLength {
		return "", errors.WithStack(
			domainerrors.ErrValidationFailed.WithFieldDetail("text", "Note text must be between 1 and 1000 characters"),
		)
	}

	return text, nil
}

func mapNoteError(err error, message string) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return errors.Wrap(domainerrors.ErrNoteNotFound, message)
	}

	return errors.Wrap(err, message)
}
