package approval

import "strings"

// Approver is someone asked to accept an event request.
type Approver struct {
	UserID   string `json:"user_id"`
	Required bool   `json:"required"`
}

// Decision is one approver's answer.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Status is the aggregate label of an event request.
type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusNoApprovals Status = "no_approvals"
)

// Summary is the aggregate status plus the counters list views display.
type Summary struct {
	Status    Status
	Requested int
	Completed int
}

// ParseDecision maps free-form input to a Decision. Anything unrecognised is
// pending, because approval data is eventually consistent and partial.
func ParseDecision(s string) Decision {
	switch Decision(strings.ToLower(strings.TrimSpace(s))) {
	case DecisionApproved:
		return DecisionApproved
	case DecisionRejected:
		return DecisionRejected
	}
	return DecisionPending
}

// Valid reports whether d is one of the three known decisions.
func (d Decision) Valid() bool {
	return d == DecisionPending || d == DecisionApproved || d == DecisionRejected
}

// ParseStatus reports the Status named by s.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected, StatusNoApprovals:
		return st, true
	}
	return "", false
}
