package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	mockUC "hdnotes/internal/mocks/usecase"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNoteHandler(t *testing.T) (*NoteHandler, *mockUC.MockNoteUsecase) {
	noteUC := mockUC.NewMockNoteUsecase(t)

	return NewNoteHandler(NoteHandlerParams{NoteUC: noteUC, Logger: newDiscardLogger()}), noteUC
}

func newTestNote(ownerID uuid.UUID, text string) *entity.Note {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Note{ID: uuid.New(), OwnerID: ownerID, Text: text, CreatedAt: now, UpdatedAt: now}
}

func TestNoteHandler_ListNotes(t *testing.T) {
	t.Run("passes pagination through", func(t *testing.T) {
		h, noteUC := createTestNoteHandler(t)
		account := newTestAccount()
		notes := []*entity.Note{newTestNote(account.ID, "second"), newTestNote(account.ID, "first")}

		noteUC.EXPECT().
			ListNotes(mock.Anything, account.ID, &usecase.ListNotesInput{Page: 2, Limit: 2}).
			Return(&usecase.ListNotesOutput{Notes: notes, Pagination: entity.NewPagination(2, 2, 5)}, nil)

		c, rec := newTestContext(http.MethodGet, "/notes?page=2&limit=2", "")
		withAccount(c, account)

		require.NoError(t, h.ListNotes(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		view := decodeData[NoteListView](t, rec)
		require.Len(t, view.Notes, 2)
		assert.Equal(t, "second", view.Notes[0].Text)
		assert.Equal(t, entity.Pagination{Page: 2, Limit: 2, Total: 5, Pages: 3}, view.Pagination)
	})

	t.Run("defaults when the query is empty", func(t *testing.T) {
		h, noteUC := createTestNoteHandler(t)
		account := newTestAccount()
		noteUC.EXPECT().
			ListNotes(mock.Anything, account.ID, &usecase.ListNotesInput{Page: 1, Limit: 10}).
			Return(&usecase.ListNotesOutput{Pagination: entity.NewPagination(1, 10, 0)}, nil)

		c, rec := newTestContext(http.MethodGet, "/notes", "")
		withAccount(c, account)

		require.NoError(t, h.ListNotes(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeData[NoteListView](t, rec).Notes)
	})

	for _, query := range []string{"page=0", "limit=101", "limit=0", "page=abc"} {
		t.Run("rejects "+query, func(t *testing.T) {
			h, _ := createTestNoteHandler(t)
			c, rec := newTestContext(http.MethodGet, "/notes?"+query, "")
			withAccount(c, newTestAccount())

			require.NoError(t, h.ListNotes(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestNoteHandler_CreateNote(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, noteUC := createTestNoteHandler(t)
		account := newTestAccount()
		note := newTestNote(account.ID, "buy milk")
		noteUC.EXPECT().CreateNote(mock.Anything, account.ID, "  buy milk ").Return(note, nil)

		c, rec := newTestContext(http.MethodPost, "/notes", `{"text":"  buy milk "}`)
		withAccount(c, account)

		require.NoError(t, h.CreateNote(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeData[NoteResponse](t, rec)
		assert.Equal(t, MessageNoteCreated, resp.Message)
		assert.Equal(t, note.ID, resp.Note.ID)
	})

	t.Run("text too long", func(t *testing.T) {
		h, noteUC := createTestNoteHandler(t)
		account := newTestAccount()
		text := strings.Repeat("x", 1001)
		noteUC.EXPECT().CreateNote(mock.Anything, account.ID, text).
			Return(nil, errors.WithStack(
				domainerrors.ErrValidationFailed.WithFieldDetail("text", "Note text must be between 1 and 1000 characters"),
			))

		c, rec := newTestContext(http.MethodPost, "/notes", `{"text":"`+text+`"}`)
		withAccount(c, account)

		require.NoError(t, h.CreateNote(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
		assert.Equal(t, map[string]string{"text": "Note text must be between 1 and 1000 characters"}, env.Error.Details)
	})
}

func TestNoteHandler_GetNote(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, noteUC := createTestNoteHandler(t)
		account := newTestAccount()
		note := newTestNote(account.ID, "hello")
		noteUC.EXPECT().GetNote(mock.Anything, account.ID, note.ID).Return(note, nil)

		c, rec := newTestContext(http.MethodGet, "/notes/"+note.ID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(note.ID.String())
		withAccount(c, account)

		require.NoError(t, h.GetNote(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello", decodeData[NoteView](t, rec).Text)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		h, _ := createTestNoteHandler(t)
		c, rec := newTestContext(http.MethodGet, "/notes/nope", "")
		c.SetParamNames("id")
		c.SetParamValues("nope")
		withAccount(c, newTestAccount())

		require.NoError(t, h.GetNote(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerrors.ErrNoteNotFound.Message(), decodeEnvelope(t, rec).Error.Message)
	})
}

func TestNoteHandler_UpdateNote(t *testing.T) {
	h, noteUC := createTestNoteHandler(t)
	account := newTestAccount()
	note := newTestNote(account.ID, "edited")
	noteUC.EXPECT().UpdateNote(mock.Anything, account.ID, note.ID, "edited").Return(note, nil)

	c, rec := newTestContext(http.MethodPut, "/notes/"+note.ID.String(), `{"text":"edited"}`)
	c.SetParamNames("id")
	c.SetParamValues(note.ID.String())
	withAccount(c, account)

	require.NoError(t, h.UpdateNote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MessageNoteUpdated, decodeData[NoteResponse](t, rec).Message)
}

func TestNoteHandler_DeleteNote(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, noteUC := createTestNoteHandler(t)
		account := newTestAccount()
		noteID := uuid.New()
		noteUC.EXPECT().DeleteNote(mock.Anything, account.ID, noteID).Return(nil)

		c, rec := newTestContext(http.MethodDelete, "/notes/"+noteID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(noteID.String())
		withAccount(c, account)

		require.NoError(t, h.DeleteNote(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, MessageNoteDeleted, decodeData[map[string]string](t, rec)["message"])
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		h, noteUC := createTestNoteHandler(t)
		account := newTestAccount()
		noteID := uuid.New()
		noteUC.EXPECT().DeleteNote(mock.Anything, account.ID, noteID).
			Return(errors.Wrap(domainerrors.ErrNoteNotFound, "failed to delete note"))

		c, rec := newTestContext(http.MethodDelete, "/notes/"+noteID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(noteID.String())
		withAccount(c, account)

		require.NoError(t, h.DeleteNote(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData[HealthStatus](t, rec).Status)
}
