// Package response writes the JSON envelope shared by every endpoint:
//
//	{"data": ..., "meta": {"request_id": "..."}}
//	{"error": {"code": "...", "message": "...", "details": ...}, "meta": {...}}
package response

import (
	"net/http"

	"hdnotes/internal/delivery/api/validator"
	deliverycontext "hdnotes/internal/delivery/context"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/errors"

	"github.com/labstack/echo/v4"
)

// Meta is attached to every response.
type Meta struct {
	RequestID string `json:"request_id"`
}

// ErrorBody is the error member of a failure envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type successEnvelope struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type errorEnvelope struct {
	Error ErrorBody `json:"error"`
	Meta  Meta      `json:"meta"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success wraps data in the success envelope.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, successEnvelope{Data: data, Meta: meta(c)})
}

// Message answers with {"data": {"message": message}}.
func Message(c echo.Context, status int, message string) error {
	return Success(c, status, struct {
		Message string `json:"message"`
	}{Message: message})
}

// Error writes an error envelope. Details are dropped for auth failures and
// server errors.
func Error(c echo.Context, status int, code, message string, details any) error {
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		details = nil
	}

	return c.JSON(status, errorEnvelope{
		Error: ErrorBody{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BindingError reports a body or query that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// ValidationError lists the offending fields under details.
func ValidationError(c echo.Context, err error) error {
	var details any
	if fields := validator.FieldErrors(err); fields != nil {
		details = fields
	}

	return Error(c, http.StatusBadRequest,
		domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), details)
}

// TooManyRequests answers 429 RATE_LIMITED.
func TooManyRequests(c echo.Context) error {
	return HandleAppError(c, domainerrors.ErrRateLimited)
}

// HandleAppError renders err when it is, or wraps, an AppError. Anything else
// is returned with a stack so the error middleware logs it and answers 500.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return errors.WithStack(err)
	}

	var details any
	if fd, ok := appErr.(domainerrors.FieldDetailer); ok && len(fd.FieldDetails()) > 0 {
		details = fd.FieldDetails()
	} else if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
