package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"hdnotes/internal/delivery/api/middleware"
	"hdnotes/internal/delivery/api/response"
	"hdnotes/internal/delivery/api/validator"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Response messages of the user routes.
const (
	MessageProfileUpdated      = "Profile updated successfully"
	MessageAccountDeleted      = "Account deleted successfully"
	MessageLoggedOutEverywhere = "Logged out from all sessions successfully"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the routes of the signed-in account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents the request body for updating a profile.
// Omitted fields keep their stored value.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=2,max=100"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitnil,isodate"`
}

// ProfileUpdatedResponse confirms an update and returns the new profile.
type ProfileUpdatedResponse struct {
	Message string       `json:"message"`
	User    *AccountView `json:"user"`
}

// GetProfile handles GET /user/profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	account, err := h.profileUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// UpdateProfile handles PUT /user/profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.UpdateProfileInput{Name: req.Name}
	if req.DateOfBirth != nil {
		dateOfBirth, _ := validator.ParseDate(*req.DateOfBirth)
		input.DateOfBirth = &dateOfBirth
	}

	account, err := h.profileUC.UpdateProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ProfileUpdatedResponse{
		Message: MessageProfileUpdated,
		User:    newAccountView(account),
	})
}

// DeleteAccount handles DELETE /user/account.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	if err := h.profileUC.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, MessageAccountDeleted)
}

// LogoutAll handles POST /user/logout-all.
func (h *ProfileHandler) LogoutAll(c echo.Context) error {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingToken)
	}

	if err := h.sessionUC.RevokeAllSessions(c.Request().Context(), accountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, MessageLoggedOutEverywhere)
}
