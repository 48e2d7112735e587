package repository

import (
	"maps"
	"time"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	"event-approval/internal/form"
)

// CreateEventRequestOptions holds parameters for inserting a request and its
// approvers. Every approver starts pending.
type CreateEventRequestOptions struct {
	ID         string
	OwnerID    string
	Submission form.Submission
}

type GetOneEventRequestOptions struct {
	ID string
}

// ListEventRequestsOptions holds filter and pagination parameters.
// A zero Limit returns every matching row.
type ListEventRequestsOptions struct {
	// VisibleTo restricts results to requests owned by or awaiting this user.
	VisibleTo string
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateEventRequestOptions replaces the editable fields of a request.
// Approvers missing from the new list are dropped with their decisions;
// retained approvers keep theirs.
type UpdateEventRequestOptions struct {
	ID         string
	Submission form.Submission
}

type UpsertDecisionOptions struct {
	EventRequestID string
	UserID         string
	Decision       approval.Decision
	DecidedAt      time.Time
}

// UpsertDecisionResult holds the request as it was just before and just after
// the decision. Both are read under the same row lock, so concurrent deciders
// observe each other's writes. A zero Before.ID means the request was not found.
type UpsertDecisionResult struct {
	Before eventrequest.EventRequest
	After  eventrequest.EventRequest
}

// NewUpsertDecisionResult derives After from before with the decision applied.
func NewUpsertDecisionResult(before eventrequest.EventRequest, opt UpsertDecisionOptions) UpsertDecisionResult {
	after := before
	after.Decisions = maps.Clone(before.Decisions)
	if after.Decisions == nil {
		after.Decisions = map[string]approval.Decision{}
	}
	after.Decisions[opt.UserID] = opt.Decision
	return UpsertDecisionResult{Before: before, After: after}
}
