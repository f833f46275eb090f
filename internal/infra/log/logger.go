package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"hdnotes/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process logger: JSON on stdout, or text when env.log.pretty
// is set. env.debug lowers the level to debug and adds source locations.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Env.Debug {
		opts.Level = min(level, slog.LevelDebug)
		opts.AddSource = true
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var attrs []any
	if name := cfg.Env.ServiceName; name != "" {
		attrs = append(attrs, slog.String("service", name))
	}
	if env := cfg.Env.Env; env != "" {
		attrs = append(attrs, slog.String("env", env))
	}

	return slog.New(handler).With(attrs...), nil
}

// parseLogLevel accepts debug, info, warn and error in any case. Empty means info.
func parseLogLevel(raw string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return slog.LevelInfo, nil
	}

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if strings.ToLower(level.String()) == name {
			return level, nil
		}
	}

	return slog.LevelInfo, errors.Errorf("unknown log level: %s", raw)
}
