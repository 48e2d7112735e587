package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	erUsecase "event-approval/internal/eventrequest/usecase"
	"event-approval/internal/smartfill/extractor"
	"event-approval/internal/temporal"
	"event-approval/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	postgresDB *sql.DB

	// Event request domain
	zones      *temporal.ZoneRegistry
	calendar   erUsecase.CalendarPublisher
	calendarID string

	// Smart fill; a nil LLM disables the route.
	llm                 extractor.Generator
	smartFillRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB

	Zones *temporal.ZoneRegistry
	// Calendar is optional; approved requests are then not published.
	Calendar   erUsecase.CalendarPublisher
	CalendarID string

	LLM                 extractor.Generator
	SmartFillRatePerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		shutdownTimeout:     cfg.ShutdownTimeout,
		postgresDB:          cfg.PostgresDB,
		zones:               cfg.Zones,
		calendar:            cfg.Calendar,
		calendarID:          cfg.CalendarID,
		llm:                 cfg.LLM,
		smartFillRatePerMin: cfg.SmartFillRatePerMin,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.zones == nil {
		return errors.New("zone registry is required")
	}
	return nil
}
