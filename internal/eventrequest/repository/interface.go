package repository

import (
	"context"

	"event-approval/internal/eventrequest"
)

// Repository is the composed interface for the event request data store.
type Repository interface {
	EventRequestRepository
	DecisionRepository
}

// EventRequestRepository stores event requests together with their approvers.
type EventRequestRepository interface {
	CreateEventRequest(ctx context.Context, opt CreateEventRequestOptions) (eventrequest.EventRequest, error)
	// GetOneEventRequest returns the zero value (ID == "") when nothing matches.
	GetOneEventRequest(ctx context.Context, opt GetOneEventRequestOptions) (eventrequest.EventRequest, error)
	ListEventRequests(ctx context.Context, opt ListEventRequestsOptions) ([]eventrequest.EventRequest, int, error)
	UpdateEventRequest(ctx context.Context, opt UpdateEventRequestOptions) (eventrequest.EventRequest, error)
	DeleteEventRequest(ctx context.Context, id string) error
	SetCalendarEventID(ctx context.Context, id, calendarEventID string) error
}

// DecisionRepository records approver decisions.
type DecisionRepository interface {
	// UpsertDecision locks the request, checks the user is one of its
	// approvers and records the decision in one transaction.
	UpsertDecision(ctx context.Context, opt UpsertDecisionOptions) (UpsertDecisionResult, error)
}
