package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawtrack/lawsuit-tracker/internal/api/middleware"
	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

// authorizeOwner checks the body username against the bearer token when the
// Auth middleware ran for this route:
//   - no Auth middleware: the body username is trusted as is.
//   - optional Auth without a token: 401.
//   - token for another user: domain.ErrForbidden.
func authorizeOwner(c echo.Context, username string) error {
	if missing, _ := c.Get(middleware.ContextTokenMissing).(bool); missing {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	tokenUser, ok := c.Get(middleware.ContextUsername).(string)
	if !ok {
		return nil
	}
	if tokenUser != username {
		return domain.ErrForbidden
	}
	return nil
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
