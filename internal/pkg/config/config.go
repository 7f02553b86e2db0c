package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=https://magnificent-sunflower-d07b82.netlify.app,http://localhost:3000,http://localhost:5000"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lawsuit_tracker"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// RateLimitConfig bounds register/login attempts per client IP. Requires Redis.
type RateLimitConfig struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED,  default=false"`
	Attempts int           `env:"RATE_LIMIT_ATTEMPTS, default=10"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=60s"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	// RequireToken makes data routes trust the bearer token instead of the
	// username sent in the body.
	RequireToken bool `env:"AUTH_REQUIRE_TOKEN, default=false"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.Auth.RequireToken && c.Auth.JWTSecret == "" {
		return errors.New("AUTH_REQUIRE_TOKEN requires JWT_SECRET")
	}
	if c.RateLimit.Enabled && c.Redis.Addr == "" {
		return errors.New("RATE_LIMIT_ENABLED requires REDIS_ADDR")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
// Variables from a .env file in the working directory are applied first
// without overriding the real environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom decodes and validates the configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
