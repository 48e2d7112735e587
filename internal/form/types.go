package form

import (
	"event-approval/internal/approval"
	"event-approval/internal/temporal"
)

// FormState is the editable state of an event request form.
type FormState struct {
	Title           string
	Description     string
	Location        string
	Notes           string
	Start           temporal.LocalFormDate
	End             temporal.LocalFormDate
	ImportanceLevel int // 0 means not chosen yet
	Approvers       []approval.Approver
}

// Submission is a FormState converted to canonical values, ready to cross the
// boundary to persistence.
type Submission struct {
	Title           string
	Description     string
	Location        string
	Notes           string
	Start           temporal.Value
	End             temporal.Value
	ImportanceLevel int
	Approvers       []approval.Approver
}

// Optional is a value that may be absent.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// PartialEventRequest is what extraction produces: every field is optional.
type PartialEventRequest struct {
	Title           Optional[string]
	Description     Optional[string]
	Location        Optional[string]
	Notes           Optional[string]
	Start           Optional[temporal.Value]
	End             Optional[temporal.Value]
	ImportanceLevel Optional[int]
	Approvers       Optional[[]approval.Approver]
}

// Side selects one half of the start/end pair.
type Side int

const (
	Start Side = iota
	End
)

func (s Side) String() string {
	if s == End {
		return "end"
	}
	return "start"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Start {
		return End
	}
	return Start
}

// Importance bounds.
const (
	MinImportance = 1
	MaxImportance = 5
)

func (f *FormState) side(s Side) *temporal.LocalFormDate {
	if s == End {
		return &f.End
	}
	return &f.Start
}
