package temporal_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"event-approval/internal/temporal"
)

func dateText(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// Property: FromCanonical(ToCanonical(x)) == x for all-day input.
func TestRoundTripAllDayLocal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("all-day local survives canonical round trip", prop.ForAll(
		func(y, m, d int) bool {
			local := temporal.LocalFormDate{DateText: dateText(y, m, d), AllDay: true}
			v, err := temporal.ToCanonical(local, temporal.FixedZone("UTC"))
			if err != nil {
				return false
			}
			return temporal.FromCanonical(v) == local
		},
		gen.IntRange(1900, 2200),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	properties.TestingRun(t)
}

// Property: FromCanonical(ToCanonical(x)) == x for timed input, whatever the zone.
func TestRoundTripTimedLocal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	zoneGen := gen.OneConstOf("UTC", "America/New_York", "Asia/Kolkata", "Australia/Lord_Howe")

	properties.Property("timed local survives canonical round trip", prop.ForAll(
		func(y, m, d, hh, mm int, zone string) bool {
			local := temporal.LocalFormDate{
				DateText: dateText(y, m, d),
				TimeText: fmt.Sprintf("%02d:%02d", hh, mm),
			}
			v, err := temporal.ToCanonical(local, temporal.FixedZone(zone))
			if err != nil || v.Zone != zone {
				return false
			}
			return temporal.FromCanonical(v) == local
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		zoneGen,
	))

	properties.TestingRun(t)
}

// Property: ToCanonical(FromCanonical(v)) == v for well-formed canonical values.
func TestRoundTripCanonical(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("timed canonical survives local round trip", prop.ForAll(
		func(y, m, d, hh, mm, ss int) bool {
			v := temporal.Timed(
				temporal.CalendarDate{Year: y, Month: time.Month(m), Day: d},
				temporal.TimeOfDay{Hour: hh, Minute: mm, Second: ss},
				"Europe/Lisbon",
			)
			back, err := temporal.ToCanonical(temporal.FromCanonical(v), temporal.FixedZone("Europe/Lisbon"))
			return err == nil && back.Equal(v)
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.IntRange(0, 59),
	))

	properties.Property("all-day canonical survives local round trip in any zone", prop.ForAll(
		func(y, m, d int, zone string) bool {
			v := temporal.AllDay(temporal.CalendarDate{Year: y, Month: time.Month(m), Day: d})
			back, err := temporal.ToCanonical(temporal.FromCanonical(v), temporal.FixedZone(zone))
			return err == nil && back.Equal(v)
		},
		gen.IntRange(1900, 2200),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.OneConstOf("UTC", "Pacific/Kiritimati", "Pacific/Pago_Pago"),
	))

	properties.TestingRun(t)
}

// Property: the wire codec is lossless for well-formed values.
func TestWireRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("json encode/decode is identity", prop.ForAll(
		func(y, m, d, hh, mm int, allDay bool) bool {
			date := temporal.CalendarDate{Year: y, Month: time.Month(m), Day: d}
			v := temporal.Timed(date, temporal.TimeOfDay{Hour: hh, Minute: mm}, "America/Sao_Paulo")
			if allDay {
				v = temporal.AllDay(date)
			}
			raw, err := v.MarshalJSON()
			if err != nil {
				return false
			}
			var back temporal.Value
			if err := back.UnmarshalJSON(raw); err != nil {
				return false
			}
			return back.Equal(v)
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
