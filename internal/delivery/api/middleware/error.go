package middleware

import (
	"log/slog"
	"net/http"

	"hdnotes/internal/delivery/api/response"
	deliverycontext "hdnotes/internal/delivery/context"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the echo HTTPErrorHandler. It turns whatever a handler
// or middleware returned into the standard error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders AppErrors as-is and echo errors (404, 405, 413) as
// HTTP_ERROR. Anything else is logged and answered with a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	log := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).With(
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			log.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		msg, isText := httpErr.Message.(string)
		if !isText {
			msg = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", msg, nil)

		return
	}

	log.Error("Unhandled error", slog.Any("error", err))
	_ = response.HandleAppError(c, domainerrors.ErrInternalError)
}
