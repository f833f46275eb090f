package ratelimit

import (
	"context"
	"strconv"
	"time"

	"hdnotes/internal/domain/service"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// memoryLimiter keeps window counters in a single process. Suitable for one replica.
type memoryLimiter struct {
	cache  *gocache.Cache
	max    int64
	window time.Duration
	now    func() time.Time
}

// NewMemoryLimiter keeps counters in process memory. Counters are not shared between replicas.
func NewMemoryLimiter(maxHits int, window time.Duration) service.RateLimiter {
	return &memoryLimiter{
		cache:  gocache.New(window, time.Minute),
		max:    int64(maxHits),
		window: window,
		now:    time.Now,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (service.RateLimitResult, error) {
	now := l.now().UTC()
	winStart := now.Truncate(l.window)
	cacheKey := key + ":" + strconv.FormatInt(winStart.Unix(), 10)

	// Add fails when the window already has hits, which is fine.
	_ = l.cache.Add(cacheKey, int64(0), l.window)

	hits, err := l.cache.IncrementInt64(cacheKey, 1)
	if err != nil {
		return service.RateLimitResult{}, errors.Wrap(err, "rate limit increment")
	}

	return buildResult(hits, l.max, winStart.Add(l.window).Sub(now), l.window), nil
}
