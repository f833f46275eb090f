package handler

import (
	"log/slog"
	"net/http"

	"hdnotes/internal/delivery/api/middleware"
	"hdnotes/internal/delivery/api/response"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Response messages of the note routes.
const (
	MessageNoteCreated = "Note created successfully"
	MessageNoteUpdated = "Note updated successfully"
	MessageNoteDeleted = "Note deleted successfully"
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler serves the notes of the signed-in account.
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

// NoteRequest represents the request body for creating or updating a note.
// Length is checked by the usecase after trimming.
type NoteRequest struct {
	Text string `json:"text"`
}

// ListNotesQuery represents the query parameters of GET /notes.
type ListNotesQuery struct {
	Page  int `json:"page" query:"page" validate:"gte=1"`
	Limit int `json:"limit" query:"limit" validate:"gte=1,lte=100"`
}

// NoteResponse confirms a write and returns the note.
type NoteResponse struct {
	Message string    `json:"message"`
	Note    *NoteView `json:"note"`
}

// ListNotes handles GET /notes.
func (h *NoteHandler) ListNotes(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	query := ListNotesQuery{Page: usecase.DefaultNotesPage, Limit: usecase.DefaultNotesLimit}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "Invalid pagination parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.noteUC.ListNotes(c.Request().Context(), ownerID, &usecase.ListNotesInput{
		Page:  query.Page,
		Limit: query.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*NoteView, 0, len(output.Notes))
	for _, note := range output.Notes {
		views = append(views, newNoteView(note))
	}

	return response.Success(c, http.StatusOK, &NoteListView{
		Notes:      views,
		Pagination: output.Pagination,
	})
}

// CreateNote handles POST /notes.
func (h *NoteHandler) CreateNote(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid note input")
	}

	note, err := h.noteUC.CreateNote(c.Request().Context(), ownerID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &NoteResponse{
		Message: MessageNoteCreated,
		Note:    newNoteView(note),
	})
}

// GetNote handles GET /notes/:id.
func (h *NoteHandler) GetNote(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	// Malformed IDs can never match a note.
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrNoteNotFound)
	}

	note, err := h.noteUC.GetNote(c.Request().Context(), ownerID, noteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNoteView(note))
}

// UpdateNote handles PUT /notes/:id.
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrNoteNotFound)
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid note input")
	}

	note, err := h.noteUC.UpdateNote(c.Request().Context(), ownerID, noteID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &NoteResponse{
		Message: MessageNoteUpdated,
		Note:    newNoteView(note),
	})
}

// DeleteNote handles DELETE /notes/:id.
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrNoteNotFound)
	}

	if err := h.noteUC.DeleteNote(c.Request().Context(), ownerID, noteID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, MessageNoteDeleted)
}
