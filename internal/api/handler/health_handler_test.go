package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestHealthHandler_Liveness_IgnoresBody(t *testing.T) {
	h := NewHealthHandler(nil)
	h.now = func() time.Time { return time.UnixMilli(1700000000000) }

	for _, body := range []string{"", "{}", "garbage", `{"username":"x"}`} {
		c, rec := newJSONContext(body, nil)
		if err := h.Liveness(c); err != nil {
			t.Fatalf("handler error for %q: %v", body, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d", body, rec.Code)
		}
		resp := decodeBody(t, rec)
		if resp["status"] != "ok" || resp["timestamp"] != float64(1700000000000) {
			t.Fatalf("unexpected body for %q: %v", body, resp)
		}
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		checks   map[string]Checker
		wantCode int
		wantBody string
	}{
		{
			name: "all dependencies up",
			checks: map[string]Checker{
				"mongodb": func(ctx context.Context) error { return nil },
				"redis":   func(ctx context.Context) error { return nil },
			},
			wantCode: http.StatusOK,
			wantBody: `"status":"ok"`,
		},
		{
			name: "mongodb down",
			checks: map[string]Checker{
				"mongodb": func(ctx context.Context) error { return errors.New("no reachable servers") },
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `"error":"no reachable servers"`,
		},
		{
			name:     "no dependencies",
			checks:   nil,
			wantCode: http.StatusOK,
			wantBody: `"status":"ok"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.checks)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := h.Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Fatalf("expected body to contain %s, got %s", tt.wantBody, rec.Body.String())
			}
		})
	}
}
