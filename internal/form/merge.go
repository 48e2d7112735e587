package form

import (
	"strings"

	"event-approval/internal/approval"
	"event-approval/internal/temporal"
)

// Merge fills the empty parts of current with extracted values. Whatever the user
// already entered wins. Merge is total: absent or invalid extracted fields are
// skipped.
func Merge(current FormState, extracted PartialEventRequest) FormState {
	next := cloneState(current)

	next.Title = fillString(next.Title, extracted.Title)
	next.Description = fillString(next.Description, extracted.Description)
	next.Location = fillString(next.Location, extracted.Location)
	next.Notes = fillString(next.Notes, extracted.Notes)

	next.Start = fillDate(next.Start, extracted.Start)
	next.End = fillDate(next.End, extracted.End)

	if lvl, ok := extracted.ImportanceLevel.Get(); ok && next.ImportanceLevel == 0 &&
		lvl >= MinImportance && lvl <= MaxImportance {
		next.ImportanceLevel = lvl
	}

	if approvers, ok := extracted.Approvers.Get(); ok && len(next.Approvers) == 0 &&
		len(approvers) > 0 && approval.ValidateApprovers(approvers, "") == nil {
		next.Approvers = append([]approval.Approver(nil), approvers...)
	}

	return next
}

func fillString(current string, extracted Optional[string]) string {
	if strings.TrimSpace(current) != "" {
		return current
	}
	if v, ok := extracted.Get(); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return current
}

// fillDate fills the date and time sub-fields independently, so extraction may
// complete a time the user left blank under a date they already chose.
func fillDate(current temporal.LocalFormDate, extracted Optional[temporal.Value]) temporal.LocalFormDate {
	v, ok := extracted.Get()
	if !ok || v.Validate() != nil {
		return current
	}
	ext := temporal.FromCanonical(v)

	wasEmpty := current.IsEmpty()
	if current.DateText == "" {
		current.DateText = ext.DateText
	}
	if current.TimeText == "" && ext.TimeText != "" {
		current.TimeText = ext.TimeText
	}
	if wasEmpty && ext.AllDay {
		current.AllDay = true
	}
	return current
}
