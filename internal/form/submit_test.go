package form_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-approval/internal/approval"
	"event-approval/internal/form"
	"event-approval/internal/temporal"
)

func validForm() form.FormState {
	return form.FormState{
		Title:           "Quarterly review",
		ImportanceLevel: 3,
		Start:           temporal.LocalFormDate{DateText: "2025-06-02", TimeText: "09:00"},
		End:             temporal.LocalFormDate{DateText: "2025-06-02", TimeText: "10:30"},
		Approvers:       []approval.Approver{{UserID: "boss", Required: true}},
	}
}

func TestSubmit(t *testing.T) {
	zones := temporal.FixedZone("Europe/Oslo")

	sub, err := validForm().Submit(zones)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly review", sub.Title)
	assert.Equal(t, "Europe/Oslo", sub.Start.Zone)
	assert.Equal(t, temporal.TimeOfDay{Hour: 10, Minute: 30}, sub.End.Instant.Time)

	// Load is the inverse.
	assert.Equal(t, validForm(), form.Load(sub))
}

func TestSubmitErrors(t *testing.T) {
	zones := temporal.FixedZone("UTC")

	f := validForm()
	f.Title = " "
	_, err := f.Submit(zones)
	assert.ErrorIs(t, err, form.ErrMissingTitle)

	f = validForm()
	f.ImportanceLevel = 0
	_, err = f.Submit(zones)
	assert.ErrorIs(t, err, form.ErrInvalidImportance)

	f = validForm()
	f.End.TimeText = "08:00"
	_, err = f.Submit(zones)
	assert.ErrorIs(t, err, form.ErrInvalidRange)

	f = validForm()
	f.End.TimeText = ""
	_, err = f.Submit(zones)
	var ve *temporal.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "end.time", ve.Field)
	assert.Equal(t, temporal.ReasonMissingTime, ve.Reason)

	f = validForm()
	f.Start.DateText = ""
	_, err = f.Submit(zones)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "start.date", ve.Field)
}

func TestSubmitAllDay(t *testing.T) {
	f := validForm()
	f = form.SetAllDay(f, true)
	f.End.DateText = "2025-06-04"

	sub, err := f.Submit(temporal.FixedZone("UTC"))
	require.NoError(t, err)
	assert.True(t, sub.Start.IsAllDay())
	assert.Equal(t, temporal.CalendarDate{Year: 2025, Month: time.June, Day: 4}, *sub.End.AllDayDate)
	assert.Empty(t, sub.End.Zone)
}
