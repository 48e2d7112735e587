package temporal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-approval/internal/temporal"
)

func TestToCanonical(t *testing.T) {
	zones := temporal.FixedZone("Europe/Berlin")

	tests := []struct {
		name       string
		local      temporal.LocalFormDate
		want       temporal.Value
		wantReason string
	}{
		{
			name:  "all day ignores time text",
			local: temporal.LocalFormDate{DateText: "2025-03-10", TimeText: "09:00", AllDay: true},
			want:  temporal.AllDay(temporal.CalendarDate{Year: 2025, Month: time.March, Day: 10}),
		},
		{
			name:  "timed captures zone",
			local: temporal.LocalFormDate{DateText: "2025-03-10", TimeText: "09:30"},
			want: temporal.Timed(
				temporal.CalendarDate{Year: 2025, Month: time.March, Day: 10},
				temporal.TimeOfDay{Hour: 9, Minute: 30},
				"Europe/Berlin",
			),
		},
		{
			name:  "timed with seconds",
			local: temporal.LocalFormDate{DateText: "2025-03-10", TimeText: "09:30:15"},
			want: temporal.Timed(
				temporal.CalendarDate{Year: 2025, Month: time.March, Day: 10},
				temporal.TimeOfDay{Hour: 9, Minute: 30, Second: 15},
				"Europe/Berlin",
			),
		},
		{
			name:       "missing date on all day",
			local:      temporal.LocalFormDate{AllDay: true},
			wantReason: temporal.ReasonMissingDate,
		},
		{
			name:       "missing date on timed",
			local:      temporal.LocalFormDate{TimeText: "09:00"},
			wantReason: temporal.ReasonMissingDate,
		},
		{
			name:       "missing time when not all day",
			local:      temporal.LocalFormDate{DateText: "2025-03-10"},
			wantReason: temporal.ReasonMissingTime,
		},
		{
			name:       "impossible date",
			local:      temporal.LocalFormDate{DateText: "2025-02-30", AllDay: true},
			wantReason: temporal.ReasonMalformedDate,
		},
		{
			name:       "malformed time",
			local:      temporal.LocalFormDate{DateText: "2025-03-10", TimeText: "25:00"},
			wantReason: temporal.ReasonMalformedTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := temporal.ToCanonical(tt.local, zones)
			if tt.wantReason != "" {
				var ve *temporal.ValidationError
				require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
				assert.Equal(t, tt.wantReason, ve.Reason)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %+v want %+v", got, tt.want)
		})
	}
}

func TestToCanonicalRequiresZone(t *testing.T) {
	_, err := temporal.ToCanonical(temporal.LocalFormDate{DateText: "2025-03-10", TimeText: "09:00"}, temporal.FixedZone(""))

	var ve *temporal.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, temporal.ReasonMissingZone, ve.Reason)
}

func TestFromCanonical(t *testing.T) {
	d := temporal.CalendarDate{Year: 2025, Month: time.April, Day: 1}

	assert.Equal(t,
		temporal.LocalFormDate{DateText: "2025-04-01", AllDay: true},
		temporal.FromCanonical(temporal.AllDay(d)),
	)
	assert.Equal(t,
		temporal.LocalFormDate{DateText: "2025-04-01", TimeText: "14:00"},
		temporal.FromCanonical(temporal.Timed(d, temporal.TimeOfDay{Hour: 14}, "Asia/Tokyo")),
	)

	// Invariant violations decompose to the zero triple instead of failing.
	broken := temporal.Value{AllDayDate: &d, Instant: &temporal.Instant{Date: d}}
	assert.Equal(t, temporal.LocalFormDate{}, temporal.FromCanonical(broken))
	assert.Equal(t, temporal.LocalFormDate{}, temporal.FromCanonical(temporal.Value{}))
}

func TestFromCanonicalKeepsStoredWallClock(t *testing.T) {
	// A value stored in Tokyo must decompose to Tokyo wall-clock time no matter
	// which zone the process runs in.
	v := temporal.Timed(
		temporal.CalendarDate{Year: 2025, Month: time.January, Day: 1},
		temporal.TimeOfDay{Hour: 23, Minute: 45},
		"Asia/Tokyo",
	)
	assert.Equal(t, "23:45", temporal.FromCanonical(v).TimeText)
	assert.Equal(t, "2025-01-01", temporal.FromCanonical(v).DateText)
}

func TestValidate(t *testing.T) {
	d := temporal.CalendarDate{Year: 2025, Month: time.January, Day: 5}

	tests := []struct {
		name   string
		v      temporal.Value
		reason string
	}{
		{name: "all day ok", v: temporal.AllDay(d)},
		{name: "timed ok", v: temporal.Timed(d, temporal.TimeOfDay{Hour: 8}, "UTC")},
		{name: "neither", v: temporal.Value{}, reason: temporal.ReasonNeitherSet},
		{name: "both", v: temporal.Value{AllDayDate: &d, Instant: &temporal.Instant{Date: d}, Zone: "UTC"}, reason: temporal.ReasonBothSet},
		{name: "zone on all day", v: temporal.Value{AllDayDate: &d, Zone: "UTC"}, reason: temporal.ReasonZoneOnAllDay},
		{name: "timed without zone", v: temporal.Value{Instant: &temporal.Instant{Date: d}}, reason: temporal.ReasonMissingZone},
		{name: "bad clock", v: temporal.Timed(d, temporal.TimeOfDay{Hour: 24}, "UTC"), reason: temporal.ReasonMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			var ve *temporal.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}

func TestCompare(t *testing.T) {
	d1 := temporal.CalendarDate{Year: 2025, Month: time.May, Day: 1}
	d2 := d1.AddDays(1)

	cmp, ok := temporal.Compare(temporal.AllDay(d1), temporal.AllDay(d2))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = temporal.Compare(
		temporal.Timed(d1, temporal.TimeOfDay{Hour: 10}, "UTC"),
		temporal.Timed(d1, temporal.TimeOfDay{Hour: 9, Minute: 45}, "UTC"),
	)
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	_, ok = temporal.Compare(
		temporal.Timed(d1, temporal.TimeOfDay{Hour: 10}, "UTC"),
		temporal.Timed(d1, temporal.TimeOfDay{Hour: 10}, "Asia/Tokyo"),
	)
	assert.False(t, ok)

	_, ok = temporal.Compare(temporal.AllDay(d1), temporal.Timed(d1, temporal.TimeOfDay{}, "UTC"))
	assert.False(t, ok)
}

func TestTimeOfDayAddMinutesWraps(t *testing.T) {
	tests := []struct {
		in   temporal.TimeOfDay
		n    int
		want temporal.TimeOfDay
	}{
		{temporal.TimeOfDay{Hour: 9}, 15, temporal.TimeOfDay{Hour: 9, Minute: 15}},
		{temporal.TimeOfDay{Hour: 17}, -15, temporal.TimeOfDay{Hour: 16, Minute: 45}},
		{temporal.TimeOfDay{Hour: 23, Minute: 55}, 15, temporal.TimeOfDay{Hour: 0, Minute: 10}},
		{temporal.TimeOfDay{Hour: 0, Minute: 5}, -15, temporal.TimeOfDay{Hour: 23, Minute: 50}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.AddMinutes(tt.n), "%s %+d", tt.in, tt.n)
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   temporal.Instant
		reason string
	}{
		{name: "with seconds", in: "2025-06-02T09:00:30", want: temporal.Instant{
			Date: temporal.CalendarDate{Year: 2025, Month: time.June, Day: 2},
			Time: temporal.TimeOfDay{Hour: 9, Second: 30},
		}},
		{name: "without seconds", in: "2025-06-02T09:00", want: temporal.Instant{
			Date: temporal.CalendarDate{Year: 2025, Month: time.June, Day: 2},
			Time: temporal.TimeOfDay{Hour: 9},
		}},
		{name: "bad date part", in: "2025-13-02T09:00", reason: temporal.ReasonMalformedDate},
		{name: "garbage", in: "next week", reason: temporal.ReasonMalformedDate},
		{name: "bad time part", in: "2025-06-02T25:00", reason: temporal.ReasonMalformedTime},
		{name: "date only", in: "2025-06-02", reason: temporal.ReasonMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := temporal.ParseDateTime(tt.in)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var ve *temporal.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, temporal.FieldValue, ve.Field)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}
