// Package janitor runs the periodic purge of expired refresh tokens.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"hdnotes/config"
	"hdnotes/internal/delivery"
	"hdnotes/internal/domain/lifecycle"
	"hdnotes/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type janitor struct {
	interval  time.Duration
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// Params holds dependencies for the janitor, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// NewJanitor creates the session janitor. When disabled its Serve returns immediately.
func NewJanitor(params Params) (delivery.Delivery, error) {
	if params.Cfg.Janitor == nil || !params.Cfg.Janitor.Enabled {
		return disabled{logger: params.Logger}, nil
	}

	j := newJanitor(params.Cfg.Janitor.Interval, params.SessionUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j, nil
}

func newJanitor(interval time.Duration, sessionUC usecase.SessionUsecase, logger *slog.Logger) *janitor {
	return &janitor{
		interval:  interval,
		sessionUC: sessionUC,
		logger:    logger.With(slog.String("component", "janitor")),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Serve sweeps once on start and then on every tick until stopped.
func (j *janitor) Serve(ctx context.Context) error {
	defer close(j.doneCh)

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-j.stopCh:
			return nil
		case <-ticker.C:
		}
	}
}

func (j *janitor) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := j.sessionUC.CleanupExpiredSessions(sweepCtx)
	if err != nil {
		j.logger.Error("Expired session cleanup failed", slog.Any("error", err))

		return
	}

	if removed > 0 {
		j.logger.Info("Expired sessions removed", slog.Int64("count", removed))
	}
}

func (j *janitor) stop(ctx context.Context) error {
	j.logger.Info("Stopping session janitor")
	close(j.stopCh)

	select {
	case <-j.doneCh:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "janitor did not stop in time")
	}
}

type disabled struct {
	logger *slog.Logger
}

func (d disabled) Serve(context.Context) error {
	d.logger.Debug("Session janitor disabled")

	return nil
}
