package janitor

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	mockUC "hdnotes/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJanitor_SweepsUntilStopped(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)

	var sweeps atomic.Int32
	sessionUC.EXPECT().CleanupExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			if sweeps.Add(1) == 2 {
				return 0, errors.New("database unavailable")
			}

			return 3, nil
		})

	j := newJanitor(10*time.Millisecond, sessionUC, newDiscardLogger())

	served := make(chan error, 1)
	go func() { served <- j.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return sweeps.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, j.stop(context.Background()))
	require.NoError(t, <-served)
}

func TestJanitor_StopsWithContext(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().CleanupExpiredSessions(mock.Anything).Return(0, nil)

	j := newJanitor(time.Hour, sessionUC, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, j.Serve(ctx))
}

func TestDisabledJanitor(t *testing.T) {
	assert.NoError(t, disabled{logger: newDiscardLogger()}.Serve(context.Background()))
}
