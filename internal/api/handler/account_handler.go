package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

type AccountHandler struct {
	service ports.AccountService
	metrics *metrics.Metrics
}

func NewAccountHandler(service ports.AccountService, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{service: service, metrics: m}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	VK       string `json:"vk,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool   `json:"success" example:"true"`
	Token   string `json:"token,omitempty"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  ErrorResponse  "missing field or user already exists"
// @Failure      429   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		h.metrics.RegistrationsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}

	err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		VK:       req.VK,
	})
	h.metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err == nil)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok())
}

// Login verifies credentials. A token is returned when signing is configured.
//
// @Summary      Login
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      429   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		h.metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	h.metrics.LoginsTotal.WithLabelValues(metrics.Result(err == nil)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token})
}
