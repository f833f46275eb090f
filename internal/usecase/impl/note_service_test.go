package impl

import (
	"context"
	"strings"
	"testing"

	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	mockRepo "hdnotes/internal/mocks/repository"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNoteService_CreateNote_TrimsText(t *testing.T) {
	noteRepo := mockRepo.NewMockNoteRepository(t)
	svc := NewNoteService(noteRepo, newDiscardLogger())
	ctx := context.Background()
	ownerID := uuid.New()

	noteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Note")).
		RunAndReturn(func(_ context.Context, note *entity.Note) error {
			note.ID = uuid.New()

			return nil
		}).
		Once()

	note, err := svc.CreateNote(ctx, ownerID, "  buy milk  ")

	require.NoError(t, err)
	assert.Equal(t, "buy milk", note.Text)
	assert.Equal(t, ownerID, note.OwnerID)
	assert.NotEqual(t, uuid.Nil, note.ID)
}

func TestNoteService_CreateNote_TextLength(t *testing.T) {
	noteRepo := mockRepo.NewMockNoteRepository(t)
	svc := NewNoteService(noteRepo, newDiscardLogger())
	ctx := context.Background()

	for _, text := range []string{"", "   ", strings.Repeat("é", entity.NoteTextMaxLength+1)} {
		_, err := svc.CreateNote(ctx, uuid.New(), text)
		assert.True(t, isValidationError(err), "len %d", len(text))
	}

	noteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Note")).Return(nil).Once()

	_, err := svc.CreateNote(ctx, uuid.New(), strings.Repeat("é", entity.NoteTextMaxLength))
	require.NoError(t, err)
}

// isValidationError matches validation errors that carry details.
func isValidationError(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == domainerrors.ErrValidationFailed.ErrorCode()
}

func TestNoteService_ListNotes_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		input      *usecase.ListNotesInput
		wantOffset int
		wantLimit  int
		total      int64
		wantPages  int
	}{
		{name: "defaults", input: nil, wantOffset: 0, wantLimit: 10, total: 25, wantPages: 3},
		{name: "third page", input: &usecase.ListNotesInput{Page: 3, Limit: 5}, wantOffset: 10, wantLimit: 5, total: 11, wantPages: 3},
		{name: "limit capped", input: &usecase.ListNotesInput{Page: 1, Limit: 500}, wantOffset: 0, wantLimit: 100, total: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteRepo := mockRepo.NewMockNoteRepository(t)
			svc := NewNoteService(noteRepo, newDiscardLogger())
			ctx := context.Background()
			ownerID := uuid.New()
			notes := []*entity.Note{{ID: uuid.New(), OwnerID: ownerID, Text: "newest"}}

			noteRepo.EXPECT().ListActive(ctx, ownerID, tt.wantOffset, tt.wantLimit).Return(notes, tt.total, nil).Once()

			output, err := svc.ListNotes(ctx, ownerID, tt.input)

			require.NoError(t, err)
			assert.Equal(t, notes, output.Notes)
			assert.Equal(t, tt.wantLimit, output.Pagination.Limit)
			assert.Equal(t, tt.total, output.Pagination.Total)
			assert.Equal(t, tt.wantPages, output.Pagination.Pages)
		})
	}
}

func TestNoteService_GetNote_NotFound(t *testing.T) {
	noteRepo := mockRepo.NewMockNoteRepository(t)
	svc := NewNoteService(noteRepo, newDiscardLogger())
	ctx := context.Background()
	ownerID, noteID := uuid.New(), uuid.New()

	noteRepo.EXPECT().FindActiveByID(ctx, ownerID, noteID).Return(nil, repository.ErrNoteNotFound)

	_, err := svc.GetNote(ctx, ownerID, noteID)

	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_UpdateNote(t *testing.T) {
	noteRepo := mockRepo.NewMockNoteRepository(t)
	svc := NewNoteService(noteRepo, newDiscardLogger())
	ctx := context.Background()
	ownerID, noteID := uuid.New(), uuid.New()
	updated := &entity.Note{ID: noteID, OwnerID: ownerID, Text: "edited"}

	noteRepo.EXPECT().UpdateText(ctx, ownerID, noteID, "edited").Return(updated, nil).Once()

	note, err := svc.UpdateNote(ctx, ownerID, noteID, " edited ")

	require.NoError(t, err)
	assert.Equal(t, updated, note)
}

func TestNoteService_DeleteNote_Twice(t *testing.T) {
	noteRepo := mockRepo.NewMockNoteRepository(t)
	svc := NewNoteService(noteRepo, newDiscardLogger())
	ctx := context.Background()
	ownerID, noteID := uuid.New(), uuid.New()

	noteRepo.EXPECT().SoftDelete(ctx, ownerID, noteID).Return(nil).Once()
	noteRepo.EXPECT().SoftDelete(ctx, ownerID, noteID).Return(repository.ErrNoteNotFound).Once()

	require.NoError(t, svc.DeleteNote(ctx, ownerID, noteID))

	err := svc.DeleteNote(ctx, ownerID, noteID)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}
