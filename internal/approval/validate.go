package approval

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyApprover     = errors.New("approver user_id is empty")
	ErrDuplicateApprover = errors.New("approver listed more than once")
	ErrSelfApproval      = errors.New("owner cannot approve their own request")
)

// ValidateApprovers checks that every approver has an id, appears once, and is
// not the request owner.
func ValidateApprovers(approvers []Approver, ownerID string) error {
	seen := make(map[string]struct{}, len(approvers))
	for _, a := range approvers {
		id := strings.TrimSpace(a.UserID)
		if id == "" {
			return ErrEmptyApprover
		}
		if ownerID != "" && id == ownerID {
			return fmt.Errorf("%w: %s", ErrSelfApproval, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateApprover, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Contains reports whether userID is among approvers.
func Contains(approvers []Approver, userID string) bool {
	for _, a := range approvers {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// Retain returns the subset of decisions whose user is still an approver.
func Retain(approvers []Approver, decisions map[string]Decision) map[string]Decision {
	out := make(map[string]Decision, len(approvers))
	for _, a := range approvers {
		if d, ok := decisions[a.UserID]; ok {
			out[a.UserID] = d
		}
	}
	return out
}
