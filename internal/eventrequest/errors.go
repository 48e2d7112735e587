package eventrequest

import "errors"

var (
	ErrNotFound          = errors.New("event request not found")
	ErrForbidden         = errors.New("not allowed to access this event request")
	ErrMissingTitle      = errors.New("title is required")
	ErrInvalidApprovers  = errors.New("invalid approvers")
	ErrNotApprover       = errors.New("caller is not an approver of this event request")
	ErrInvalidDecision   = errors.New("decision must be pending, approved or rejected")
	ErrInvalidRange      = errors.New("end must not be before start")
	ErrInvalidImportance = errors.New("importance level must be between 1 and 5")
	ErrInvalidStatus     = errors.New("unknown approval status")
)
