package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lawtrack/lawsuit-tracker/internal/api/metrics"
	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
	"github.com/lawtrack/lawsuit-tracker/internal/core/ports"
)

var errStore = errors.New("store unavailable")

type stubAccountService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) error
	loginFn    func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAccountService) Register(ctx context.Context, in ports.RegisterInput) error {
	return s.registerFn(ctx, in)
}

func (s *stubAccountService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

type stubThemeService struct {
	saveFn func(ctx context.Context, username, theme string) error
	getFn  func(ctx context.Context, username string) (string, error)
}

func (s *stubThemeService) Save(ctx context.Context, username, theme string) error {
	return s.saveFn(ctx, username, theme)
}

func (s *stubThemeService) Get(ctx context.Context, username string) (string, error) {
	return s.getFn(ctx, username)
}

type stubLawsuitService struct {
	addFn    func(ctx context.Context, in ports.AddLawsuitInput) (*domain.Lawsuit, error)
	listFn   func(ctx context.Context, username string) ([]domain.Lawsuit, error)
	updateFn func(ctx context.Context, username, id, status string) (bool, error)
	deleteFn func(ctx context.Context, username, id string) (bool, error)
}

func (s *stubLawsuitService) Add(ctx context.Context, in ports.AddLawsuitInput) (*domain.Lawsuit, error) {
	return s.addFn(ctx, in)
}

func (s *stubLawsuitService) List(ctx context.Context, username string) ([]domain.Lawsuit, error) {
	return s.listFn(ctx, username)
}

func (s *stubLawsuitService) UpdateStatus(ctx context.Context, username, id, status string) (bool, error) {
	return s.updateFn(ctx, username, id, status)
}

func (s *stubLawsuitService) Delete(ctx context.Context, username, id string) (bool, error) {
	return s.deleteFn(ctx, username, id)
}

type stubUserDocService struct {
	addFn  func(ctx context.Context, in ports.AddUserDocInput) (*domain.UserDoc, error)
	listFn func(ctx context.Context, username string) ([]domain.Link, error)
}

func (s *stubUserDocService) Add(ctx context.Context, in ports.AddUserDocInput) (*domain.UserDoc, error) {
	return s.addFn(ctx, in)
}

func (s *stubUserDocService) List(ctx context.Context, username string) ([]domain.Link, error) {
	return s.listFn(ctx, username)
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// newJSONContext builds an echo context for a POST with body. Values in
// ctxValues are set on the context as the Auth middleware would.
func newJSONContext(body string, ctxValues map[string]any) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range ctxValues {
		c.Set(k, v)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}
