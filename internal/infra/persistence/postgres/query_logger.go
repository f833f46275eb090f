package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hdnotes/config"
	deliverycontext "hdnotes/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output through slog. Statements issued while serving
// a request are written with that request's logger.
type queryLogger struct {
	base *slog.Logger
	mode gormlogger.LogLevel
	slow time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	mode := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		mode = gormlogger.Info
	}

	return &queryLogger{base: base, mode: mode, slow: slowQueryThreshold}
}

func (q *queryLogger) LogMode(mode gormlogger.LogLevel) gormlogger.Interface {
	next := *q
	next.mode = mode

	return &next
}

func (q *queryLogger) Info(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (q *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (q *queryLogger) Error(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (q *queryLogger) printf(ctx context.Context, need gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if q.base == nil || q.mode < need {
		return
	}

	q.target(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(format, args...)))
}

// Trace logs failed statements, then slow ones, then everything in Info mode.
// Record-not-found is an expected outcome for lookups and is never logged.
func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.base == nil || q.mode <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level = slog.LevelInfo
		msg   = "sql statement"
		extra slog.Attr
	)

	switch {
	case err != nil && q.mode >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg, extra = slog.LevelError, "sql statement failed", slog.String("error", err.Error())
	case q.slow > 0 && elapsed > q.slow && q.mode >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "sql statement slow", slog.Duration("threshold", q.slow)
	case q.mode >= gormlogger.Info:
	default:
		return
	}

	stmt, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", stmt),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	q.target(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (q *queryLogger) target(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return q.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, q.base)
}
