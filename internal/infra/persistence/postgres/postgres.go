package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"hdnotes/config"
	"hdnotes/internal/domain/lifecycle"
	"hdnotes/internal/infra/metrics"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params are the dependencies of New.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary/replica pool described by config.Postgres. The pool
// is pinged, optionally migrated and watched for contention on start.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration must be provided")
	}

	db, sqlDB, err := open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	if err := params.Metrics.RegisterDBStats(sqlDB); err != nil {
		return nil, errors.Wrap(err, "register postgres pool metrics")
	}

	watcher := &poolWatcher{db: sqlDB, logger: params.Logger, every: poolWatchInterval}
	stopWatch := func() {}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			if params.Config.Migration.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("postgres schema is up to date")
			}

			var watchCtx context.Context
			watchCtx, stopWatch = context.WithCancel(context.Background())
			go watcher.run(watchCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

func open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, *sql.DB, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open postgres")
	}

	// Transactions are opened explicitly by the transaction manager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "unwrap postgres pool")
	}

	return db, sqlDB, nil
}

const (
	poolWatchInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// poolWatcher reports when callers had to wait for a free connection.
type poolWatcher struct {
	db     *sql.DB
	logger *slog.Logger
	every  time.Duration
}

func (w *poolWatcher) run(ctx context.Context) {
	if w.db == nil || w.logger == nil {
		return
	}

	ticker := time.NewTicker(w.every)
	defer ticker.Stop()

	last := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.db.Stats()
			if level, attrs, waited := poolWaitReport(last, now); waited {
				w.logger.LogAttrs(ctx, level, "postgres pool contention", attrs...)
			}
			last = now
		}
	}
}

// poolWaitReport compares two snapshots. Waits adding up to poolWaitWarnAfter
// or more are warnings, shorter ones are debug noise.
func poolWaitReport(last, now sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := now.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", now.OpenConnections),
		slog.Int("inUse", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("maxOpen", now.MaxOpenConnections),
	}, true
}
