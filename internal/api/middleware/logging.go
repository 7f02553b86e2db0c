package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lawtrack/lawsuit-tracker/pkg/logger"
)

// RequestLogger attaches a request-scoped logger carrying the request id to
// the request context and writes one access line per request. It must run
// after echo's RequestID middleware.
func RequestLogger(base zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURIPath:   true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		BeforeNextFunc: func(c echo.Context) {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			l := base.With().Str("request_id", rid).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), l)))
		},
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			l := logger.FromContext(c.Request().Context())

			evt := l.Info()
			switch {
			case v.Status >= 500:
				evt = l.Error().Err(v.Error)
			case v.Status >= 400:
				evt = l.Warn()
			}

			evt.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
