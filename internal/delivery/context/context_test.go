package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeValuesAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	base := WithLogger(WithRequestID(context.Background(), "req-1"), logger)
	accountID := uuid.New()
	authed := WithAccountID(base, accountID)

	assert.Equal(t, "req-1", GetRequestIDFromContext(authed))

	_, ok := AccountIDFromContext(base)
	assert.False(t, ok)

	got, ok := AccountIDFromContext(authed)
	require.True(t, ok)
	assert.Equal(t, accountID, got)

	GetLogger(authed).Info("hello")
	assert.Contains(t, buf.String(), "account_id="+accountID.String())

	buf.Reset()
	GetLogger(base).Info("hello")
	assert.NotContains(t, buf.String(), "account_id")
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("from echo store", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "abc")
		assert.Equal(t, "abc", GetRequestID(c))
	})

	t.Run("from request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "ctx-id"))
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "ctx-id", GetRequestID(c))
	})

	t.Run("generated when missing", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}
