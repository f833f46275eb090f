package middleware

import (
	"log/slog"
	"math"
	"strconv"

	"hdnotes/internal/delivery/api/response"
	deliverycontext "hdnotes/internal/delivery/context"
	"hdnotes/internal/domain/service"
	"hdnotes/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

const headerRateLimitRemaining = "X-RateLimit-Remaining"

// RateLimitMiddleware applies the fixed-window limits per client IP.
type RateLimitMiddleware struct {
	limiters *ratelimit.Limiters
	logger   *slog.Logger
}

// NewRateLimitMiddleware creates the rate limit middleware for the configured limiters.
func NewRateLimitMiddleware(limiters *ratelimit.Limiters, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiters: limiters,
		logger:   logger,
	}
}

// OTP limits the routes that send or check signup codes.
func (m *RateLimitMiddleware) OTP() echo.MiddlewareFunc {
	return m.limit("otp", m.limiters.OTP)
}

// Signin limits signin attempts.
func (m *RateLimitMiddleware) Signin() echo.MiddlewareFunc {
	return m.limit("signin", m.limiters.Signin)
}

func (m *RateLimitMiddleware) limit(scope string, limiter service.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			result, err := limiter.Allow(ctx, c.RealIP())
			if err != nil {
				// Limiter backend errors fail open.
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}

			c.Response().Header().Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))

			if !result.Allowed {
				retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(max(retryAfter, 1)))

				return response.TooManyRequests(c)
			}

			return next(c)
		}
	}
}
