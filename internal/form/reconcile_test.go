package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"event-approval/internal/approval"
	"event-approval/internal/form"
)

func TestSetDate(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		side      form.Side
		text      string
		wantStart string
		wantEnd   string
	}{
		{name: "start defaults empty end", side: form.Start, text: "2025-01-05", wantStart: "2025-01-05", wantEnd: "2025-01-05"},
		{name: "end defaults empty start", side: form.End, text: "2025-01-07", wantStart: "2025-01-07", wantEnd: "2025-01-07"},
		{name: "chosen end is kept", end: "2025-03-10", side: form.Start, text: "2025-01-05", wantStart: "2025-01-05", wantEnd: "2025-03-10"},
		{name: "chosen start is kept", start: "2025-01-01", end: "2025-01-02", side: form.End, text: "2025-02-01", wantStart: "2025-01-01", wantEnd: "2025-02-01"},
		{name: "clearing does not derive", start: "2025-01-01", side: form.Start, text: "", wantStart: "", wantEnd: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := form.FormState{}
			state.Start.DateText = tt.start
			state.End.DateText = tt.end

			got := form.SetDate(state, tt.side, tt.text)
			assert.Equal(t, tt.wantStart, got.Start.DateText)
			assert.Equal(t, tt.wantEnd, got.End.DateText)
		})
	}
}

func TestSetTime(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		side      form.Side
		text      string
		wantStart string
		wantEnd   string
	}{
		{name: "end derived from start", side: form.Start, text: "09:00", wantStart: "09:00", wantEnd: "09:15"},
		{name: "start derived from end", side: form.End, text: "17:00", wantStart: "16:45", wantEnd: "17:00"},
		{name: "chosen end is kept", end: "18:00", side: form.Start, text: "09:00", wantStart: "09:00", wantEnd: "18:00"},
		{name: "wraps past midnight without rollover", side: form.Start, text: "23:55", wantStart: "23:55", wantEnd: "00:10"},
		{name: "wraps before midnight", side: form.End, text: "00:05", wantStart: "23:50", wantEnd: "00:05"},
		{name: "seconds are carried", side: form.Start, text: "09:00:30", wantStart: "09:00:30", wantEnd: "09:15:30"},
		{name: "unparseable input is stored but derives nothing", side: form.Start, text: "9am", wantStart: "9am", wantEnd: ""},
		{name: "empty input derives nothing", side: form.Start, text: "", wantStart: "", wantEnd: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := form.FormState{}
			state.Start.TimeText = tt.start
			state.End.TimeText = tt.end

			got := form.SetTime(state, tt.side, tt.text)
			assert.Equal(t, tt.wantStart, got.Start.TimeText)
			assert.Equal(t, tt.wantEnd, got.End.TimeText)
		})
	}
}

func TestPairingFiresOnce(t *testing.T) {
	state := form.SetTime(form.FormState{}, form.Start, "09:00")
	assert.Equal(t, "09:15", state.End.TimeText)

	// A second edit of the source must not drag the derived field along.
	state = form.SetTime(state, form.Start, "10:00")
	assert.Equal(t, "10:00", state.Start.TimeText)
	assert.Equal(t, "09:15", state.End.TimeText)

	state = form.SetDate(form.FormState{}, form.Start, "2025-01-05")
	state = form.SetDate(state, form.Start, "2025-01-06")
	assert.Equal(t, "2025-01-05", state.End.DateText)
}

func TestPairingAxesAreIndependent(t *testing.T) {
	state := form.FormState{}
	state.End.DateText = "2025-03-10"

	state = form.SetTime(state, form.Start, "09:00")
	assert.Equal(t, "2025-03-10", state.End.DateText)
	assert.Equal(t, "", state.Start.DateText)
	assert.Equal(t, "09:15", state.End.TimeText)
}

func TestSetAllDay(t *testing.T) {
	state := form.SetAllDay(form.FormState{}, true)
	assert.True(t, state.Start.AllDay)
	assert.True(t, state.End.AllDay)

	state = form.SetAllDay(state, false)
	assert.False(t, state.Start.AllDay)
	assert.False(t, state.End.AllDay)
}

func TestReconcilerDoesNotAliasApprovers(t *testing.T) {
	original := form.FormState{Approvers: []approval.Approver{{UserID: "a"}}}
	next := form.SetDate(original, form.Start, "2025-01-01")
	next.Approvers[0].UserID = "mutated"

	assert.Equal(t, "a", original.Approvers[0].UserID)
}
