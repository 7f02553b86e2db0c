package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

// LawsuitHandler handles HTTP requests for lawsuit records.
type LawsuitHandler struct {
	service ports.LawsuitService
	metrics *metrics.Metrics
}

func NewLawsuitHandler(service ports.LawsuitService, m *metrics.Metrics) *LawsuitHandler {
	return &LawsuitHandler{service: service, metrics: m}
}

// --- Request / Response types ---

type addLawsuitRequest struct {
	Username  string `json:"username" validate:"required"`
	URL       string `json:"url"`
	Plaintiff string `json:"plaintiff"`
	Defendant string `json:"defendant"`
	Note      string `json:"note"`
	Status    string `json:"status"`
	// Created is epoch milliseconds; the server time is used when omitted.
	Created epochMillis `json:"created"`
}

// epochMillis accepts a JSON number or a numeric string. Fractions are
// truncated toward zero.
type epochMillis int64

func (m *epochMillis) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*m = epochMillis(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return fmt.Errorf("created: invalid epoch millis %q", raw)
	}
	*m = epochMillis(math.Trunc(f))
	return nil
}

type ownerRequest struct {
	Username string `json:"username" validate:"required"`
}

type updateLawsuitRequest struct {
	Username string `json:"username" validate:"required"`
	ID       string `json:"id" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

type deleteLawsuitRequest struct {
	Username string `json:"username" validate:"required"`
	ID       string `json:"id" validate:"required"`
}

type lawsuitResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	URL       string `json:"url"`
	Plaintiff string `json:"plaintiff"`
	Defendant string `json:"defendant"`
	Note      string `json:"note"`
	Status    string `json:"status"`
	Created   int64  `json:"created"`
}

type lawsuitsResponse struct {
	Success  bool              `json:"success" example:"true"`
	Lawsuits []lawsuitResponse `json:"lawsuits"`
}

func toLawsuitResponse(l domain.Lawsuit) lawsuitResponse {
	return lawsuitResponse{
		ID:        l.ID,
		Username:  l.Username,
		URL:       l.URL,
		Plaintiff: l.Plaintiff,
		Defendant: l.Defendant,
		Note:      l.Note,
		Status:    l.Status,
		Created:   l.Created,
	}
}

// Add stores a new lawsuit under a generated id.
//
// @Summary      Add a lawsuit
// @Tags         lawsuits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addLawsuitRequest  true  "Lawsuit"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/addLawsuit [post]
func (h *LawsuitHandler) Add(c echo.Context) error {
	var req addLawsuitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := authorizeOwner(c, req.Username); err != nil {
		return err
	}

	_, err := h.service.Add(c.Request().Context(), ports.AddLawsuitInput{
		Username:  req.Username,
		URL:       req.URL,
		Plaintiff: req.Plaintiff,
		Defendant: req.Defendant,
		Note:      req.Note,
		Status:    req.Status,
		Created:   int64(req.Created),
	})
	if err != nil {
		return err
	}
	h.metrics.LawsuitsCreatedTotal.Inc()

	return c.JSON(http.StatusOK, ok())
}

// List returns every lawsuit owned by the user, in no particular order.
//
// @Summary      List lawsuits
// @Tags         lawsuits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ownerRequest  true  "Owner"
// @Success      200   {object}  lawsuitsResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/getLawsuits [post]
func (h *LawsuitHandler) List(c echo.Context) error {
	var req ownerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := authorizeOwner(c, req.Username); err != nil {
		return err
	}

	lawsuits, err := h.service.List(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}

	items := make([]lawsuitResponse, 0, len(lawsuits))
	for _, l := range lawsuits {
		items = append(items, toLawsuitResponse(l))
	}

	return c.JSON(http.StatusOK, lawsuitsResponse{Success: true, Lawsuits: items})
}

// UpdateStatus changes the status of a lawsuit owned by the user. The
// response is successful whether or not the lawsuit matched.
//
// @Summary      Update lawsuit status
// @Tags         lawsuits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateLawsuitRequest  true  "Status change"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/updateLawsuit [post]
func (h *LawsuitHandler) UpdateStatus(c echo.Context) error {
	var req updateLawsuitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := authorizeOwner(c, req.Username); err != nil {
		return err
	}

	applied, err := h.service.UpdateStatus(c.Request().Context(), req.Username, req.ID, req.Status)
	if err != nil {
		return err
	}
	h.metrics.LawsuitMutationsTotal.WithLabelValues("update", metrics.Applied(applied)).Inc()

	return c.JSON(http.StatusOK, ok())
}

// Delete removes a lawsuit owned by the user. The response is successful
// whether or not the lawsuit matched.
//
// @Summary      Delete a lawsuit
// @Tags         lawsuits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteLawsuitRequest  true  "Lawsuit to delete"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/deleteLawsuit [post]
func (h *LawsuitHandler) Delete(c echo.Context) error {
	var req deleteLawsuitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := authorizeOwner(c, req.Username); err != nil {
		return err
	}

	applied, err := h.service.Delete(c.Request().Context(), req.Username, req.ID)
	if err != nil {
		return err
	}
	h.metrics.LawsuitMutationsTotal.WithLabelValues("delete", metrics.Applied(applied)).Inc()

	return c.JSON(http.StatusOK, ok())
}
