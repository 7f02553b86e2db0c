package middleware

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	redisdb "github.com/lawtrack/lawsuit-tracker/internal/infrastructure/db/redis"
	"github.com/lawtrack/lawsuit-tracker/pkg/logger"
)

// AuthLimiter decides whether a client IP may attempt another register or login.
type AuthLimiter interface {
	Allow(ctx context.Context, ip string) (*redisdb.RateLimitResult, error)
}

// RateLimit rejects requests from clients that exhausted their auth attempts
// with domain.ErrRateLimited. Limiter errors let the request through.
func RateLimit(limiter AuthLimiter, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ip := c.RealIP()

			result, err := limiter.Allow(ctx, ip)
			if err != nil {
				log := logger.FromContext(ctx)
				log.Warn().Err(err).Str("ip", ip).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			setRateLimitHeaders(c, result)

			if !result.Allowed {
				m.RateLimitedTotal.Inc()
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
				return domain.ErrRateLimited
			}

			return next(c)
		}
	}
}

func setRateLimitHeaders(c echo.Context, result *redisdb.RateLimitResult) {
	h := c.Response().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
