// Package context carries per-request values (request ID, account ID and the
// request-scoped logger) from the HTTP pipeline into usecases and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

const echoKeyRequestID = "hdnotes.request_id"

type scopeKey struct{}

// scope is stored by value; every With* call stores a modified copy.
type scope struct {
	requestID string
	accountID uuid.UUID
	logger    *slog.Logger
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

func withScope(ctx context.Context, update func(*scope)) context.Context {
	s := scopeFrom(ctx)
	update(&s)

	return context.WithValue(ctx, scopeKey{}, s)
}

// SetRequestID records the request ID on the echo context for response metadata.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the ID assigned by the request ID middleware. Outside
// that middleware a fresh UUID is returned so envelopes never carry an empty ID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withScope(ctx, func(s *scope) { s.requestID = requestID })
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// WithAccountID marks the request as authenticated and tags the scoped logger
// with the account.
func WithAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return withScope(ctx, func(s *scope) {
		s.accountID = accountID
		if s.logger != nil {
			s.logger = s.logger.With(slog.String("account_id", accountID.String()))
		}
	})
}

// AccountIDFromContext reports the authenticated account, if any.
func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id := scopeFrom(ctx).accountID

	return id, id != uuid.Nil
}

// WithLogger installs the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return withScope(ctx, func(s *scope) { s.logger = logger })
}

// GetLogger returns nil when no request-scoped logger was installed.
func GetLogger(ctx context.Context) *slog.Logger {
	return scopeFrom(ctx).logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
