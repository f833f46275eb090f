package middleware

import (
	"log/slog"

	deliverycontext "hdnotes/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an ID. The ID is echoed in the
// X-Request-Id response header, the response envelope and every log line
// written through the request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware is the constructor for RequestIDMiddleware.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process keeps a client supplied ID when it is safe to log, otherwise it
// mints a UUID.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)
		deliverycontext.SetRequestID(c, id)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), id)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", id)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID allows 1..128 visible ASCII characters.
func validRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxRequestIDLength {
		return false
	}

	for _, b := range []byte(id) {
		if b <= ' ' || b > '~' {
			return false
		}
	}

	return true
}
