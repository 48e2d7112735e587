package form

import (
	"strings"

	"event-approval/internal/temporal"
)

// PairedTimeOffsetMinutes is the gap used when one time of the pair is derived
// from the other.
const PairedTimeOffsetMinutes = 15

// SetDate writes text into side's date. When the opposite date is still empty it
// is defaulted to the same day. An already chosen opposite date is never moved.
func SetDate(state FormState, side Side, text string) FormState {
	next := cloneState(state)
	next.side(side).DateText = text

	other := next.side(side.Other())
	if strings.TrimSpace(text) != "" && other.DateText == "" {
		other.DateText = text
	}
	return next
}

// SetTime writes text into side's time. When the opposite time is still empty it
// is derived: end = start + 15m, start = end - 15m. The arithmetic wraps inside
// the day and never changes a date, so 23:55 yields an end of 00:10.
func SetTime(state FormState, side Side, text string) FormState {
	next := cloneState(state)
	next.side(side).TimeText = text

	other := next.side(side.Other())
	if strings.TrimSpace(text) == "" || other.TimeText != "" {
		return next
	}

	t, err := temporal.ParseTime(text)
	if err != nil {
		return next
	}

	offset := PairedTimeOffsetMinutes
	if side == End {
		offset = -offset
	}
	other.TimeText = t.AddMinutes(offset).String()
	return next
}

// SetAllDay toggles the all-day flag. Both sides move together: a range cannot
// start all-day and end at a time of day.
func SetAllDay(state FormState, allDay bool) FormState {
	next := cloneState(state)
	next.Start.AllDay = allDay
	next.End.AllDay = allDay
	return next
}

func cloneState(s FormState) FormState {
	if s.Approvers != nil {
		s.Approvers = append(s.Approvers[:0:0], s.Approvers...)
	}
	return s
}
