package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAttempts = 10
	defaultWindow   = time.Minute
)

// fixedWindow increments the counter unless it already reached the limit and
// returns {allowed, remaining, ttl_seconds}. The expiry is only set when the
// window opens so the counter resets on schedule.
var fixedWindow = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

if current >= limit then
	local ttl = redis.call('TTL', KEYS[1])
	if ttl < 0 then ttl = window end
	return {0, 0, ttl}
end

current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('EXPIRE', KEYS[1], window)
end
local ttl = redis.call('TTL', KEYS[1])
if ttl < 0 then ttl = window end
return {1, limit - current, ttl}
`)

// RateLimitConfig bounds auth attempts per client within a window.
type RateLimitConfig struct {
	Attempts int
	Window   time.Duration
}

// RateLimitResult is the outcome of a single check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
	Limit     int
}

// AuthRateLimiter counts register/login attempts per client IP.
// Key format: ratelimit:<ip>:auth
type AuthRateLimiter struct {
	client *redis.Client
	cfg    RateLimitConfig
}

// NewAuthRateLimiter wraps client. Non-positive settings fall back to 10 attempts per minute.
func NewAuthRateLimiter(client *redis.Client, cfg RateLimitConfig) *AuthRateLimiter {
	if cfg.Attempts <= 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.Window < time.Second {
		cfg.Window = defaultWindow
	}
	return &AuthRateLimiter{client: client, cfg: cfg}
}

// Allow consumes one attempt for ip and reports whether it was within the limit.
func (l *AuthRateLimiter) Allow(ctx context.Context, ip string) (*RateLimitResult, error) {
	res, err := fixedWindow.Run(ctx, l.client, []string{l.key(ip)}, l.cfg.Attempts, int(l.cfg.Window.Seconds())).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit check: %w", err)
	}
	if len(res) != 3 {
		return nil, fmt.Errorf("rate limit check: unexpected result %v", res)
	}

	return &RateLimitResult{
		Allowed:   res[0] == 1,
		Remaining: int(res[1]),
		ResetIn:   time.Duration(res[2]) * time.Second,
		Limit:     l.cfg.Attempts,
	}, nil
}

func (l *AuthRateLimiter) key(ip string) string {
	return fmt.Sprintf("ratelimit:%s:auth", ip)
}
