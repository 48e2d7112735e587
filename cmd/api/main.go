package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"event-approval/config"
	_ "event-approval/docs" // Swagger docs
	erUsecase "event-approval/internal/eventrequest/usecase"
	"event-approval/internal/httpserver"
	"event-approval/internal/smartfill/extractor"
	"event-approval/internal/temporal"
	"event-approval/pkg/gcalendar"
	"event-approval/pkg/llmprovider"
	"event-approval/pkg/log"
	"event-approval/pkg/postgres"
)

// @title       Event Approval API
// @description Event requests with approver sign-off, AI smart fill, Google Calendar publishing and ICS export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Event Approval...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	// 4. Time zones
	zones, err := temporal.NewZoneRegistry(cfg.EventRequest.TimeZone)
	if err != nil {
		logger.Warnf(ctx, "Invalid time zone %q, falling back to UTC: %v", cfg.EventRequest.TimeZone, err)
		zones, _ = temporal.NewZoneRegistry("UTC")
	}
	logger.Infof(ctx, "Default time zone: %s", zones.Zone())

	// 5. Google Calendar (optional)
	var calendar erUsecase.CalendarPublisher
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Smart fill (optional)
	var llm extractor.Generator
	if cfg.SmartFill.Enabled {
		manager, llmErr := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
		if llmErr != nil {
			logger.Warnf(ctx, "Smart fill disabled: %v", llmErr)
		} else {
			llm = manager
			logger.Info(ctx, "Smart fill initialized")
		}
	} else {
		logger.Info(ctx, "Smart fill disabled by configuration")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		ShutdownTimeout:     cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:          db,
		Zones:               zones,
		Calendar:            calendar,
		CalendarID:          cfg.GoogleCalendar.CalendarID,
		LLM:                 llm,
		SmartFillRatePerMin: cfg.SmartFill.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
