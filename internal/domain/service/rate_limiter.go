package service

import (
	"context"
	"time"
)

// RateLimitResult reports the state of a key's window after counting a hit.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter counts hits per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}
