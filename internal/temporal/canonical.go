package temporal

import "strings"

// ToCanonical converts the editable form triple into a canonical Value.
//
// All-day input ignores TimeText. Timed input is anchored to the zone reported by
// zones at the moment of conversion.
func ToCanonical(local LocalFormDate, zones ZoneProvider) (Value, error) {
	if strings.TrimSpace(local.DateText) == "" {
		return Value{}, newValidationError(FieldDate, ReasonMissingDate)
	}
	date, err := ParseDate(local.DateText)
	if err != nil {
		return Value{}, err
	}

	if local.AllDay {
		return AllDay(date), nil
	}

	if strings.TrimSpace(local.TimeText) == "" {
		return Value{}, newValidationError(FieldTime, ReasonMissingTime)
	}
	tod, err := ParseTime(local.TimeText)
	if err != nil {
		return Value{}, err
	}

	zone := ""
	if zones != nil {
		zone = zones.Zone()
	}
	if zone == "" {
		return Value{}, newValidationError(FieldZone, ReasonMissingZone)
	}

	return Timed(date, tod, zone), nil
}

// FromCanonical decomposes v into the editable form triple. The wall-clock time
// is the one stored in v's own zone; no conversion happens. Values that violate
// the Value invariant decompose to the zero LocalFormDate.
func FromCanonical(v Value) LocalFormDate {
	if v.Validate() != nil {
		return LocalFormDate{}
	}
	if v.AllDayDate != nil {
		return LocalFormDate{DateText: v.AllDayDate.String(), AllDay: true}
	}
	return LocalFormDate{
		DateText: v.Instant.Date.String(),
		TimeText: v.Instant.Time.String(),
	}
}

// IsEmpty reports whether neither text field has been filled in.
func (l LocalFormDate) IsEmpty() bool {
	return l.DateText == "" && l.TimeText == ""
}
