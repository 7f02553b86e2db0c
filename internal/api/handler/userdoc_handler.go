package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

type UserDocHandler struct {
	service ports.UserDocService
	metrics *metrics.Metrics
}

func NewUserDocHandler(service ports.UserDocService, m *metrics.Metrics) *UserDocHandler {
	return &UserDocHandler{service: service, metrics: m}
}

type addUserDocRequest struct {
	Username string `json:"username" validate:"required"`
	Title    string `json:"title"`
	URL      string `json:"url" validate:"required"`
}

type linkResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type linksResponse struct {
	Success bool           `json:"success" example:"true"`
	Links   []linkResponse `json:"links"`
}

// Add saves a document link for the user.
//
// @Summary      Add a document link
// @Tags         userdocs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addUserDocRequest  true  "Document link"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/addUserDoc [post]
func (h *UserDocHandler) Add(c echo.Context) error {
	var req addUserDocRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := authorizeOwner(c, req.Username); err != nil {
		return err
	}

	_, err := h.service.Add(c.Request().Context(), ports.AddUserDocInput{
		Username: req.Username,
		Title:    req.Title,
		URL:      req.URL,
	})
	if err != nil {
		return err
	}
	h.metrics.UserDocsCreatedTotal.Inc()

	return c.JSON(http.StatusOK, ok())
}

// List returns the user's document links as {title, url} pairs.
//
// @Summary      List document links
// @Tags         userdocs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ownerRequest  true  "Owner"
// @Success      200   {object}  linksResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/getUserDocs [post]
func (h *UserDocHandler) List(c echo.Context) error {
	var req ownerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := authorizeOwner(c, req.Username); err != nil {
		return err
	}

	links, err := h.service.List(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}

	items := make([]linkResponse, 0, len(links))
	for _, l := range links {
		items = append(items, linkResponse{Title: l.Title, URL: l.URL})
	}

	return c.JSON(http.StatusOK, linksResponse{Success: true, Links: items})
}
