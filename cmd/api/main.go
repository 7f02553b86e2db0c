// @title        Lawsuit Tracker API
// @version      1.0
// @description  Accounts, themes, lawsuits and document links for the lawsuit tracker front end.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT returned by login.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/lawtrack/lawsuit-tracker/internal/api"
	"github.com/lawtrack/lawsuit-tracker/internal/api/handler"
	"github.com/lawtrack/lawsuit-tracker/internal/core/service"
	mongodb "github.com/lawtrack/lawsuit-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/lawtrack/lawsuit-tracker/internal/infrastructure/db/redis"
	"github.com/lawtrack/lawsuit-tracker/internal/pkg/config"
	"github.com/lawtrack/lawsuit-tracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "lawsuit-tracker",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	checks := map[string]handler.Checker{
		"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
	}

	deps := api.Dependencies{
		Accounts:           service.NewAccountService(mongodb.NewUserRepository(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log),
		Themes:             service.NewThemeService(mongodb.NewThemeRepository(db)),
		Lawsuits:           service.NewLawsuitService(mongodb.NewLawsuitRepository(db), log),
		UserDocs:           service.NewUserDocService(mongodb.NewUserDocRepository(db)),
		Checks:             checks,
		Logger:             log,
		Registry:           newRegistry(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		JWTSecret:          cfg.Auth.JWTSecret,
		RequireToken:       cfg.Auth.RequireToken,
	}

	if cfg.RateLimit.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		deps.RateLimiter = redisdb.NewAuthRateLimiter(rdb, redisdb.RateLimitConfig{
			Attempts: cfg.RateLimit.Attempts,
			Window:   cfg.RateLimit.Window,
		})
		log.Info().Int("attempts", cfg.RateLimit.Attempts).Dur("window", cfg.RateLimit.Window).Msg("auth rate limiting enabled")
	}

	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, login will not issue tokens")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("lawsuit tracker API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newRegistry returns the registry behind /metrics with the Go runtime and
// process collectors attached.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
