package eventrequest

import (
	"time"

	"event-approval/internal/approval"
	"event-approval/internal/form"
	"event-approval/internal/temporal"
)

// EventRequest is a proposed event routed to approvers.
type EventRequest struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	Location        string
	Notes           string
	Start           temporal.Value
	End             temporal.Value
	ImportanceLevel int
	Approvers       []approval.Approver
	// Decisions is keyed by approver user id. Missing entries are pending.
	Decisions       map[string]approval.Decision
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Summary derives the aggregate approval state. It is never stored.
func (e EventRequest) Summary() approval.Summary {
	return approval.Summarize(e.Approvers, e.Decisions)
}

// VisibleTo reports whether userID owns the request or is asked to approve it.
func (e EventRequest) VisibleTo(userID string) bool {
	return e.OwnerID == userID || approval.Contains(e.Approvers, userID)
}

// Submission returns the canonical form of the request's editable fields.
func (e EventRequest) Submission() form.Submission {
	return form.Submission{
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		Notes:           e.Notes,
		Start:           e.Start,
		End:             e.End,
		ImportanceLevel: e.ImportanceLevel,
		Approvers:       e.Approvers,
	}
}

// --- UseCase Inputs ---

type CreateInput struct {
	Form form.FormState
}

type ListInput struct {
	// ApprovalStatus filters on the derived status. Empty means all.
	ApprovalStatus approval.Status
	Limit          int
	Offset         int
}

type UpdateInput struct {
	ID   string
	Form form.FormState
}

type DecideInput struct {
	ID       string
	Decision approval.Decision
}

// --- UseCase Outputs ---

type CreateOutput struct {
	EventRequest EventRequest
	Summary      approval.Summary
}

type ListItem struct {
	EventRequest EventRequest
	Summary      approval.Summary
}

type ListOutput struct {
	Items  []ListItem
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	EventRequest EventRequest
	Summary      approval.Summary
	// EditForm is the request decomposed for editing.
	EditForm form.FormState
}

type UpdateOutput struct {
	EventRequest EventRequest
	Summary      approval.Summary
}

type DecideOutput struct {
	EventRequest EventRequest
	Summary      approval.Summary
}

type ExportICSOutput struct {
	FileName string
	Content  []byte
}
