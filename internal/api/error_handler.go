package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lawtrack/lawsuit-tracker/internal/api/handler"
	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/pkg/logger"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors with the request id without leaking details to the client.
//   - Renders the envelope {"success": false, "error": "...", "message": "..."}.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, c)

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

// statusCode maps err to the HTTP status the error handler renders for it.
// It does not log.
func statusCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	switch {
	case errors.Is(err, domain.ErrMissingField), errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// metricsStatus resolves the status label for echoprometheus.
func metricsStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	return statusCode(err)
}

func resolveError(err error, c echo.Context) (int, handler.ErrorResponse) {
	// Echo's own errors (bind failures, 404 from router, auth middleware, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	code := statusCode(err)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return code, handler.ErrorResponse{
			Error:   domain.ErrMissingField.Error(),
			Message: detail(err, domain.ErrMissingField),
		}
	case errors.Is(err, domain.ErrUserExists):
		return code, handler.ErrorResponse{
			Error:   "user already exists",
			Message: "user already exists",
		}
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return code, handler.ErrorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrForbidden):
		return code, handler.ErrorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrRateLimited):
		return code, handler.ErrorResponse{Error: "too many attempts, try again later"}
	}

	// Unexpected error: log the real cause, return a generic message.
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	log := logger.FromContext(c.Request().Context())
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", rid).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{
		Error:     "internal server error",
		RequestID: rid,
	}
}

// detail strips the sentinel prefix from a wrapped error, leaving the
// field-level message.
func detail(err, sentinel error) string {
	msg, found := strings.CutPrefix(err.Error(), sentinel.Error()+": ")
	if !found {
		return ""
	}
	return msg
}
