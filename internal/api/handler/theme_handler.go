package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

type ThemeHandler struct {
	service ports.ThemeService
	metrics *metrics.Metrics
}

func NewThemeHandler(service ports.ThemeService, m *metrics.Metrics) *ThemeHandler {
	return &ThemeHandler{service: service, metrics: m}
}

type saveThemeRequest struct {
	Username string `json:"username" validate:"required"`
	Theme    string `json:"theme" validate:"required"`
}

type getThemeRequest struct {
	Username string `json:"username" validate:"required"`
}

type themeResponse struct {
	Success bool   `json:"success" example:"true"`
	Theme   string `json:"theme" example:"dark"`
}

// Save stores the user's theme, replacing any previous value.
//
// @Summary      Save theme
// @Tags         theme
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveThemeRequest  true  "Theme"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/saveTheme [post]
func (h *ThemeHandler) Save(c echo.Context) error {
	var req saveThemeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := authorizeOwner(c, req.Username); err != nil {
		return err
	}

	if err := h.service.Save(c.Request().Context(), req.Username, req.Theme); err != nil {
		return err
	}
	h.metrics.ThemeSavesTotal.Inc()

	return c.JSON(http.StatusOK, ok())
}

// Get returns the user's theme, "dark" when none was saved. The username
// "__ping__" answers without touching storage and needs no token.
//
// @Summary      Get theme
// @Tags         theme
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      getThemeRequest  true  "Owner"
// @Success      200   {object}  themeResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/getTheme [post]
func (h *ThemeHandler) Get(c echo.Context) error {
	var req getThemeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Username != domain.PingUsername {
		if err := authorizeOwner(c, req.Username); err != nil {
			return err
		}
	}

	theme, err := h.service.Get(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, themeResponse{Success: true, Theme: theme})
}
