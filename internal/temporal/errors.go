package temporal

import "fmt"

// Fields a ValidationError can point at.
const (
	FieldDate  = "date"
	FieldTime  = "time"
	FieldZone  = "time_zone"
	FieldValue = "value"
)

// Reasons a ValidationError can carry.
const (
	ReasonMissingDate   = "missing date"
	ReasonMissingTime   = "missing time"
	ReasonMalformedDate = "malformed date"
	ReasonMalformedTime = "malformed time"
	ReasonMissingZone   = "missing time zone"
	ReasonUnknownZone   = "unknown time zone"
	ReasonZoneOnAllDay  = "all-day value must not carry a time zone"
	ReasonBothSet       = "date and date_time are mutually exclusive"
	ReasonNeitherSet    = "one of date or date_time is required"
)

// ValidationError reports a recoverable problem with user- or wire-supplied
// temporal data. It is meant to be shown inline next to the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
