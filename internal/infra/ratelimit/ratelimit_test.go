package ratelimit

import (
	"context"
	"testing"
	"time"

	"hdnotes/config"
	"hdnotes/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return mr, client
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func assertFixedWindow(t *testing.T, limiter service.RateLimiter, clk *clock) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "otp:203.0.113.7")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "hit %d", i+1)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "otp:203.0.113.7")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.Positive(t, res.RetryAfter)
	assert.LessOrEqual(t, res.RetryAfter, 15*time.Minute)

	// Other clients are counted separately.
	res, err = limiter.Allow(ctx, "otp:198.51.100.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	// A new window starts from zero.
	clk.now = clk.now.Add(15 * time.Minute)
	res, err = limiter.Allow(ctx, "otp:203.0.113.7")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	_, client := newTestRedis(t)
	clk := &clock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	limiter, ok := NewRedisLimiter(client, "", 3, 15*time.Minute).(*redisLimiter)
	require.True(t, ok)
	limiter.now = clk.Now

	assertFixedWindow(t, limiter, clk)
}

func TestRedisLimiter_SetsExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter, ok := NewRedisLimiter(client, "rl:test:", 5, time.Minute).(*redisLimiter)
	require.True(t, ok)
	limiter.now = func() time.Time { return time.Unix(1_800_000_000, 0) }

	_, err := limiter.Allow(context.Background(), "k")
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))
}

func TestRedisLimiter_BackendDown(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRedisLimiter(client, "", 3, time.Minute)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	clk := &clock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	limiter, ok := NewMemoryLimiter(3, 15*time.Minute).(*memoryLimiter)
	require.True(t, ok)
	limiter.now = clk.Now

	assertFixedWindow(t, limiter, clk)
}

func TestMemoryLimiter_RetryAfterIsRestOfWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter, ok := NewMemoryLimiter(1, 15*time.Minute).(*memoryLimiter)
	require.True(t, ok)
	limiter.now = func() time.Time { return start.Add(5 * time.Minute) }

	_, err := limiter.Allow(context.Background(), "k")
	require.NoError(t, err)
	res, err := limiter.Allow(context.Background(), "k")
	require.NoError(t, err)

	assert.False(t, res.Allowed)
	assert.Equal(t, 10*time.Minute, res.RetryAfter)
}

func TestNewLimiters(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	limiters, err := NewLimiters(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &memoryLimiter{}, limiters.OTP)
	assert.IsType(t, &memoryLimiter{}, limiters.Signin)

	cfg.RateLimit.Backend = config.RateLimitBackendRedis
	_, err = NewLimiters(cfg, nil)
	assert.Error(t, err)

	_, client := newTestRedis(t)
	limiters, err = NewLimiters(cfg, client)
	require.NoError(t, err)
	assert.IsType(t, &redisLimiter{}, limiters.OTP)

	cfg.RateLimit.Backend = "carrier-pigeon"
	_, err = NewLimiters(cfg, nil)
	assert.Error(t, err)
}
