package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/lawtrack/lawsuit-tracker/docs"
	"github.com/lawtrack/lawsuit-tracker/internal/api/handler"
	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/api/middleware"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Accounts ports.AccountService
	Themes   ports.ThemeService
	Lawsuits ports.LawsuitService
	UserDocs ports.UserDocService

	// RateLimiter guards register and login when non-nil.
	RateLimiter middleware.AuthLimiter
	// Checks are probed by GET /health/ready.
	Checks map[string]handler.Checker

	Logger zerolog.Logger
	// Registry receives the HTTP and domain metrics served on /metrics.
	// A private registry is created when nil.
	Registry *prometheus.Registry

	CORSAllowedOrigins []string
	JWTSecret          string
	// RequireToken protects data routes with the bearer token middleware.
	RequireToken bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler()

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(corsConfig(deps.CORSAllowedOrigins)))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:          "lawsuit_tracker",
		Subsystem:          "http",
		Registerer:         reg,
		StatusCodeResolver: metricsStatus,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Handlers ---
	accountHandler := handler.NewAccountHandler(deps.Accounts, m)
	themeHandler := handler.NewThemeHandler(deps.Themes, m)
	lawsuitHandler := handler.NewLawsuitHandler(deps.Lawsuits, m)
	userDocHandler := handler.NewUserDocHandler(deps.UserDocs, m)
	healthHandler := handler.NewHealthHandler(deps.Checks)

	var authMW, pingMW []echo.MiddlewareFunc
	if deps.RequireToken {
		authMW = append(authMW, middleware.Auth(deps.JWTSecret))
		pingMW = append(pingMW, middleware.Auth(deps.JWTSecret, middleware.Optional()))
	}

	var limitMW []echo.MiddlewareFunc
	if deps.RateLimiter != nil {
		limitMW = append(limitMW, middleware.RateLimit(deps.RateLimiter, m))
	}

	g := e.Group("/api")

	// --- Account routes ---
	g.POST("/register", accountHandler.Register, limitMW...)
	g.POST("/login", accountHandler.Login, limitMW...)

	// --- Theme routes ---
	g.POST("/saveTheme", themeHandler.Save, authMW...)
	g.POST("/getTheme", themeHandler.Get, pingMW...)

	// --- Lawsuit routes ---
	g.POST("/addLawsuit", lawsuitHandler.Add, authMW...)
	g.POST("/getLawsuits", lawsuitHandler.List, authMW...)
	g.POST("/updateLawsuit", lawsuitHandler.UpdateStatus, authMW...)
	g.POST("/deleteLawsuit", lawsuitHandler.Delete, authMW...)

	// --- Document link routes ---
	g.POST("/addUserDoc", userDocHandler.Add, authMW...)
	g.POST("/getUserDocs", userDocHandler.List, authMW...)

	// --- Health probes (no auth required) ---
	g.POST("/health", healthHandler.Liveness)
	g.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operational ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// corsConfig allows the configured origins. A single "*" entry switches to
// wildcard mode, where credentials cannot be allowed.
func corsConfig(origins []string) echomiddleware.CORSConfig {
	cfg := echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowOrigins = []string{"*"}
			cfg.AllowCredentials = false
			break
		}
	}
	return cfg
}
