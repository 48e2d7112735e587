package form_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"event-approval/internal/approval"
	"event-approval/internal/form"
	"event-approval/internal/temporal"
)

var april1 = temporal.CalendarDate{Year: 2025, Month: time.April, Day: 1}

func TestMergeScalars(t *testing.T) {
	tests := []struct {
		name    string
		current string
		extract form.Optional[string]
		want    string
	}{
		{name: "user text wins", current: "Team Sync", extract: form.Some("Lunch"), want: "Team Sync"},
		{name: "empty is filled", current: "", extract: form.Some("Lunch"), want: "Lunch"},
		{name: "whitespace counts as empty", current: "  ", extract: form.Some("Lunch"), want: "Lunch"},
		{name: "absent extraction skipped", current: "", extract: form.Optional[string]{}, want: ""},
		{name: "blank extraction skipped", current: "", extract: form.Some(" "), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := form.FormState{Title: tt.current, Description: tt.current, Location: tt.current, Notes: tt.current}
			ext := form.PartialEventRequest{Title: tt.extract, Description: tt.extract, Location: tt.extract, Notes: tt.extract}

			got := form.Merge(cur, ext)
			assert.Equal(t, tt.want, got.Title)
			assert.Equal(t, tt.want, got.Description)
			assert.Equal(t, tt.want, got.Location)
			assert.Equal(t, tt.want, got.Notes)
		})
	}
}

func TestMergeFillsOnlyEmptyTimeUnderChosenDate(t *testing.T) {
	cur := form.FormState{}
	cur.Start = temporal.LocalFormDate{DateText: "2025-04-01"}

	ext := form.PartialEventRequest{
		Start: form.Some(temporal.Timed(april1, temporal.TimeOfDay{Hour: 14}, "Europe/Madrid")),
	}

	got := form.Merge(cur, ext)
	assert.Equal(t, "2025-04-01", got.Start.DateText)
	assert.Equal(t, "14:00", got.Start.TimeText)
	assert.False(t, got.Start.AllDay)
}

func TestMergeKeepsUserDate(t *testing.T) {
	cur := form.FormState{}
	cur.Start = temporal.LocalFormDate{DateText: "2025-05-20"}

	ext := form.PartialEventRequest{
		Start: form.Some(temporal.Timed(april1, temporal.TimeOfDay{Hour: 9, Minute: 30}, "UTC")),
		End:   form.Some(temporal.Timed(april1, temporal.TimeOfDay{Hour: 10}, "UTC")),
	}

	got := form.Merge(cur, ext)
	assert.Equal(t, "2025-05-20", got.Start.DateText)
	assert.Equal(t, "09:30", got.Start.TimeText)
	assert.Equal(t, temporal.LocalFormDate{DateText: "2025-04-01", TimeText: "10:00"}, got.End)
}

func TestMergeAllDayAdoption(t *testing.T) {
	ext := form.PartialEventRequest{Start: form.Some(temporal.AllDay(april1))}

	got := form.Merge(form.FormState{}, ext)
	assert.Equal(t, temporal.LocalFormDate{DateText: "2025-04-01", AllDay: true}, got.Start)

	// A side the user already touched keeps its flag.
	cur := form.FormState{}
	cur.Start = temporal.LocalFormDate{TimeText: "08:00"}
	got = form.Merge(cur, ext)
	assert.Equal(t, temporal.LocalFormDate{DateText: "2025-04-01", TimeText: "08:00"}, got.Start)
}

func TestMergeSkipsInvalidTemporal(t *testing.T) {
	broken := temporal.Value{Instant: &temporal.Instant{Date: april1}} // no zone
	got := form.Merge(form.FormState{}, form.PartialEventRequest{Start: form.Some(broken)})
	assert.Equal(t, temporal.LocalFormDate{}, got.Start)
}

func TestMergeApprovers(t *testing.T) {
	extracted := []approval.Approver{{UserID: "x", Required: true}}

	got := form.Merge(form.FormState{}, form.PartialEventRequest{Approvers: form.Some(extracted)})
	assert.Equal(t, extracted, got.Approvers)

	chosen := []approval.Approver{{UserID: "me-picked"}}
	got = form.Merge(form.FormState{Approvers: chosen}, form.PartialEventRequest{Approvers: form.Some(extracted)})
	assert.Equal(t, chosen, got.Approvers)

	dupes := []approval.Approver{{UserID: "x"}, {UserID: "x"}}
	got = form.Merge(form.FormState{}, form.PartialEventRequest{Approvers: form.Some(dupes)})
	assert.Empty(t, got.Approvers)
}

func TestMergeImportance(t *testing.T) {
	got := form.Merge(form.FormState{}, form.PartialEventRequest{ImportanceLevel: form.Some(4)})
	assert.Equal(t, 4, got.ImportanceLevel)

	got = form.Merge(form.FormState{ImportanceLevel: 2}, form.PartialEventRequest{ImportanceLevel: form.Some(4)})
	assert.Equal(t, 2, got.ImportanceLevel)

	got = form.Merge(form.FormState{}, form.PartialEventRequest{ImportanceLevel: form.Some(9)})
	assert.Equal(t, 0, got.ImportanceLevel)
}

func TestMergeIsPure(t *testing.T) {
	cur := form.FormState{Title: ""}
	_ = form.Merge(cur, form.PartialEventRequest{Title: form.Some("Lunch")})
	assert.Equal(t, "", cur.Title)

	// Empty extraction is the identity.
	full := form.FormState{Title: "a", ImportanceLevel: 3, Approvers: []approval.Approver{{UserID: "u"}}}
	full.Start = temporal.LocalFormDate{DateText: "2025-01-01", TimeText: "10:00"}
	assert.Equal(t, full, form.Merge(full, form.PartialEventRequest{}))
}
