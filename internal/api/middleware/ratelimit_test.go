package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	redisdb "github.com/lawtrack/lawsuit-tracker/internal/infrastructure/db/redis"
)

type stubLimiter struct {
	result *redisdb.RateLimitResult
	err    error
	ips    []string
}

func (s *stubLimiter) Allow(_ context.Context, ip string) (*redisdb.RateLimitResult, error) {
	s.ips = append(s.ips, ip)
	return s.result, s.err
}

func newRateLimitContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimit_Allowed(t *testing.T) {
	limiter := &stubLimiter{result: &redisdb.RateLimitResult{Allowed: true, Remaining: 9, Limit: 10, ResetIn: time.Minute}}
	m := metrics.New(prometheus.NewRegistry())
	c, rec := newRateLimitContext()

	called := false
	err := RateLimit(limiter, m)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !called {
		t.Fatalf("next not called")
	}
	if len(limiter.ips) != 1 || limiter.ips[0] != "203.0.113.7" {
		t.Fatalf("limiter called with %v", limiter.ips)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "9" {
		t.Fatalf("expected remaining 9, got %q", got)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "10" {
		t.Fatalf("expected limit 10, got %q", got)
	}
}

func TestRateLimit_Exceeded(t *testing.T) {
	limiter := &stubLimiter{result: &redisdb.RateLimitResult{Allowed: false, Remaining: 0, Limit: 10, ResetIn: 42 * time.Second}}
	m := metrics.New(prometheus.NewRegistry())
	c, rec := newRateLimitContext()

	err := RateLimit(limiter, m)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if got := rec.Header().Get("Retry-After"); got != "42" {
		t.Fatalf("expected Retry-After 42, got %q", got)
	}
	if got := testutil.ToFloat64(m.RateLimitedTotal); got != 1 {
		t.Fatalf("expected rate limited counter 1, got %v", got)
	}
}

func TestRateLimit_LimiterErrorFailsOpen(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("connection refused")}
	m := metrics.New(prometheus.NewRegistry())
	c, rec := newRateLimitContext()

	called := false
	err := RateLimit(limiter, m)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Header().Get("X-RateLimit-Limit") != "" {
		t.Fatalf("no rate limit headers expected on limiter failure")
	}
}
