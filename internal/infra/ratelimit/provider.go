package ratelimit

import (
	"context"
	"log/slog"

	"hdnotes/config"
	"hdnotes/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Limiters groups the limiter of each rate limited route scope.
type Limiters struct {
	OTP    service.RateLimiter
	Signin service.RateLimiter
}

// RedisParams are the dependencies of NewRedisClient.
type RedisParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis when the redis backend is selected and returns nil otherwise.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	if params.Cfg.RateLimit.Backend != config.RateLimitBackendRedis {
		return nil, nil
	}
	if params.Cfg.Redis == nil || params.Cfg.Redis.Addr == "" {
		return nil, errors.New("redis address must be provided for the redis rate limit backend")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Cfg.Redis.Addr,
		Password: params.Cfg.Redis.Password,
		DB:       params.Cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", params.Cfg.Redis.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// NewLimiters builds the per-scope limiters for the configured backend.
func NewLimiters(cfg *config.Config, client *redis.Client) (*Limiters, error) {
	rules := cfg.RateLimit

	switch rules.Backend {
	case config.RateLimitBackendMemory:
		return &Limiters{
			OTP:    NewMemoryLimiter(rules.OTP.Max, rules.OTP.Window),
			Signin: NewMemoryLimiter(rules.Signin.Max, rules.Signin.Window),
		}, nil
	case config.RateLimitBackendRedis:
		if client == nil {
			return nil, errors.New("redis client is required for the redis rate limit backend")
		}

		return &Limiters{
			OTP:    NewRedisLimiter(client, "rl:otp:", rules.OTP.Max, rules.OTP.Window),
			Signin: NewRedisLimiter(client, "rl:signin:", rules.Signin.Max, rules.Signin.Window),
		}, nil
	default:
		return nil, errors.Errorf("unknown rate limit backend %q", rules.Backend)
	}
}
