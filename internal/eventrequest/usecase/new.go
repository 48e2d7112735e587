package usecase

import (
	"context"
	"time"

	"event-approval/internal/eventrequest/repository"
	"event-approval/internal/temporal"
	"event-approval/pkg/gcalendar"
	"event-approval/pkg/log"
)

// CalendarPublisher publishes approved requests to an external calendar.
// *gcalendar.Client satisfies it.
type CalendarPublisher interface {
	InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// implUseCase is the private implementation of eventrequest.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	zones      *temporal.ZoneRegistry
	calendar   CalendarPublisher
	calendarID string
	now        func() time.Time
	newID      func() string
}

// Config carries the optional collaborators of the use case.
type Config struct {
	// Calendar may be nil; approved requests are then not published.
	Calendar   CalendarPublisher
	CalendarID string
}

// New creates a new eventrequest UseCase implementation.
func New(repo repository.Repository, l log.Logger, zones *temporal.ZoneRegistry, cfg Config) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		zones:      zones,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		now:        time.Now,
		newID:      newRequestID,
	}
}
