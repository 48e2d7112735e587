package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"event-approval/internal/middleware"
	"event-approval/internal/temporal"
	"event-approval/pkg/llmprovider"
	"event-approval/pkg/log"
)

type stubLLM struct{}

func (stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return nil, errors.New("not used")
}

func newTestServer(t *testing.T, cfg Config) (*HTTPServer, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	zones, err := temporal.NewZoneRegistry("UTC")
	if err != nil {
		t.Fatalf("NewZoneRegistry: %v", err)
	}

	cfg.Logger = log.NewNop()
	cfg.Port = 8080
	cfg.Mode = gin.TestMode
	cfg.PostgresDB = db
	cfg.Zones = zones

	srv, err := New(cfg.Logger, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, mock
}

func serve(srv *HTTPServer, method, path, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	zones, _ := temporal.NewZoneRegistry("UTC")
	db, _, _ := sqlmock.New()
	defer db.Close()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no mode", cfg: Config{Port: 1, PostgresDB: db, Zones: zones}},
		{name: "no port", cfg: Config{Mode: gin.TestMode, PostgresDB: db, Zones: zones}},
		{name: "no db", cfg: Config{Mode: gin.TestMode, Port: 1, Zones: zones}},
		{name: "no zones", cfg: Config{Mode: gin.TestMode, Port: 1, PostgresDB: db}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, mock := newTestServer(t, Config{})

	w := serve(srv, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("/health: expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("/health: expected an X-Request-ID response header")
	}
	if w := serve(srv, http.MethodGet, "/live", ""); w.Code != http.StatusOK {
		t.Errorf("/live: expected 200, got %d", w.Code)
	}

	mock.ExpectPing()
	if w := serve(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusOK {
		t.Errorf("/ready: expected 200, got %d", w.Code)
	}

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	if w := serve(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("/ready with db down: expected 503, got %d", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDomainRoutes(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	if w := serve(srv, http.MethodGet, "/api/v1/event-requests", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("event requests without caller: expected 401, got %d", w.Code)
	}
	if w := serve(srv, http.MethodPost, "/api/v1/event-requests/smart-fill", "u1"); w.Code != http.StatusNotFound {
		t.Errorf("smart fill without LLM: expected 404, got %d", w.Code)
	}

	withLLM, _ := newTestServer(t, Config{LLM: stubLLM{}, SmartFillRatePerMin: 60})
	if w := serve(withLLM, http.MethodPost, "/api/v1/event-requests/smart-fill", "u1"); w.Code != http.StatusBadRequest {
		t.Errorf("smart fill with empty body: expected 400, got %d", w.Code)
	}
}
