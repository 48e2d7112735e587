package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"event-approval/internal/form"
	"event-approval/internal/middleware"
	"event-approval/internal/model"
	"event-approval/internal/smartfill"
	"event-approval/internal/temporal"
	"event-approval/pkg/log"
)

type mockUseCase struct {
	fillFn func(ctx context.Context, sc model.Scope, input smartfill.FillInput) (smartfill.FillOutput, error)
}

func (m *mockUseCase) Fill(ctx context.Context, sc model.Scope, input smartfill.FillInput) (smartfill.FillOutput, error) {
	return m.fillFn(ctx, sc, input)
}

func newTestRouter(uc smartfill.UseCase, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l), perMin)
	return r
}

func post(r http.Handler, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/event-requests/smart-fill", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFill(t *testing.T) {
	var got smartfill.FillInput
	uc := &mockUseCase{
		fillFn: func(ctx context.Context, sc model.Scope, input smartfill.FillInput) (smartfill.FillOutput, error) {
			got = input
			day := temporal.CalendarDate{Year: 2025, Month: 7, Day: 1}
			merged := input.Current
			merged.Start.TimeText = "12:00"
			return smartfill.FillOutput{
				Form: merged,
				Extracted: form.PartialEventRequest{
					Title: form.Some("Team lunch"),
					Start: form.Some(temporal.Timed(day, temporal.TimeOfDay{Hour: 12}, "UTC")),
				},
			}, nil
		},
	}
	r := newTestRouter(uc, 0)

	w := post(r, "u1", `{"text":"lunch at noon","current":{"title":"Lunch","start":{"date":"2025-07-02"}}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got.Text != "lunch at noon" || got.Current.Title != "Lunch" || got.Current.Start.DateText != "2025-07-02" {
		t.Errorf("input = %+v", got)
	}

	var env struct {
		Data fillResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Data.Form.Start != (localDate{Date: "2025-07-02", Time: "12:00"}) {
		t.Errorf("form start = %+v", env.Data.Form.Start)
	}
	if env.Data.Extracted.Title == nil || *env.Data.Extracted.Title != "Team lunch" {
		t.Errorf("extracted title = %v", env.Data.Extracted.Title)
	}

	var raw struct {
		Data struct {
			Extracted map[string]json.RawMessage `json:"extracted"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(raw.Data.Extracted) != 2 {
		t.Errorf("absent fields should be omitted, got keys %v", raw.Data.Extracted)
	}

	body := w.Body.String()
	if !strings.Contains(body, `"date_time":"2025-07-01T12:00:00"`) {
		t.Errorf("extracted start should use the wire format: %s", body)
	}
}

func TestFillErrors(t *testing.T) {
	tests := []struct {
		name       string
		user       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "no caller", body: `{"text":"x"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing text", user: "u1", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "blank text", user: "u1", body: `{"text":" "}`, ucErr: smartfill.ErrEmptyText, wantStatus: http.StatusBadRequest},
		{name: "extraction failed", user: "u1", body: `{"text":"x"}`, ucErr: fmt.Errorf("%w: timeout", smartfill.ErrExtractionFailed), wantStatus: http.StatusBadGateway},
		{name: "unexpected", user: "u1", body: `{"text":"x"}`, ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				fillFn: func(ctx context.Context, sc model.Scope, input smartfill.FillInput) (smartfill.FillOutput, error) {
					return smartfill.FillOutput{}, tt.ucErr
				},
			}
			if w := post(newTestRouter(uc, 0), tt.user, tt.body); w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestFillRateLimited(t *testing.T) {
	uc := &mockUseCase{
		fillFn: func(ctx context.Context, sc model.Scope, input smartfill.FillInput) (smartfill.FillOutput, error) {
			return smartfill.FillOutput{}, nil
		},
	}
	// 10/min allows a burst of one.
	r := newTestRouter(uc, 10)

	if w := post(r, "u1", `{"text":"x"}`); w.Code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", w.Code)
	}
	if w := post(r, "u1", `{"text":"x"}`); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second call: expected 429, got %d", w.Code)
	}
}
