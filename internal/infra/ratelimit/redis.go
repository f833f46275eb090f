// Package ratelimit provides fixed-window request limiters backed by Redis or process memory.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hdnotes/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "rl:"

// redisLimiter counts hits with INCR and expires each window key after the window.
type redisLimiter struct {
	client *redis.Client
	prefix string
	max    int64
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter returns a limiter shared by every instance using the same Redis.
func NewRedisLimiter(client *redis.Client, prefix string, maxHits int, window time.Duration) service.RateLimiter {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	return &redisLimiter{
		client: client,
		prefix: prefix,
		max:    int64(maxHits),
		window: window,
		now:    time.Now,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (service.RateLimitResult, error) {
	winStart := l.now().UTC().Truncate(l.window)
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, strings.ReplaceAll(key, " ", "_"), winStart.Unix())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return service.RateLimitResult{}, errors.Wrap(err, "rate limit pipeline")
	}

	// set expiry on first hit
	windowTTL := ttl.Val()
	if incr.Val() == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return service.RateLimitResult{}, errors.Wrap(err, "rate limit expire")
		}
		windowTTL = l.window
	}

	return buildResult(incr.Val(), l.max, windowTTL, l.window), nil
}

func buildResult(hits, maxHits int64, windowTTL, window time.Duration) service.RateLimitResult {
	remaining := maxHits - hits
	if remaining < 0 {
		remaining = 0
	}

	res := service.RateLimitResult{
		Allowed:   hits <= maxHits,
		Remaining: int(remaining),
	}
	if !res.Allowed {
		res.RetryAfter = windowTTL
		if res.RetryAfter <= 0 {
			res.RetryAfter = window
		}
	}

	return res
}
