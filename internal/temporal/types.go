package temporal

import "time"

// Text layouts used by the editable form and the wire format.
const (
	DateLayout        = "2006-01-02"
	TimeLayout        = "15:04"
	TimeLayoutSeconds = "15:04:05"
	DateTimeLayout    = DateLayout + "T" + TimeLayoutSeconds
	dateTimeShort     = DateLayout + "T" + TimeLayout
)

// CalendarDate is a zone-less calendar date.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// TimeOfDay is a wall-clock time with no date and no zone.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Instant is a local date and wall-clock time. It is only meaningful together
// with the zone stored next to it in a Value.
type Instant struct {
	Date CalendarDate
	Time TimeOfDay
}

// Value is the canonical representation of one side of an event's time range.
//
// Exactly one of AllDayDate and Instant is set. Zone is an IANA identifier and is
// set if and only if Instant is set.
type Value struct {
	AllDayDate *CalendarDate
	Instant    *Instant
	Zone       string
}

// LocalFormDate is the editable triple a form holds while it is open.
type LocalFormDate struct {
	DateText string
	TimeText string
	AllDay   bool
}

// AllDay returns an all-day Value for d.
func AllDay(d CalendarDate) Value {
	return Value{AllDayDate: &d}
}

// Timed returns a timed Value anchored at d and t in zone.
func Timed(d CalendarDate, t TimeOfDay, zone string) Value {
	return Value{Instant: &Instant{Date: d, Time: t}, Zone: zone}
}

// IsZero reports whether v carries no temporal data at all.
func (v Value) IsZero() bool {
	return v.AllDayDate == nil && v.Instant == nil && v.Zone == ""
}

// IsAllDay reports whether v is a well-formed all-day value.
func (v Value) IsAllDay() bool {
	return v.AllDayDate != nil && v.Instant == nil
}

// Date returns the calendar date of v regardless of its kind.
func (v Value) Date() (CalendarDate, bool) {
	switch {
	case v.AllDayDate != nil:
		return *v.AllDayDate, true
	case v.Instant != nil:
		return v.Instant.Date, true
	}
	return CalendarDate{}, false
}

// Equal reports whether a and b hold the same canonical value.
func (v Value) Equal(o Value) bool {
	if (v.AllDayDate == nil) != (o.AllDayDate == nil) || (v.Instant == nil) != (o.Instant == nil) {
		return false
	}
	if v.AllDayDate != nil && *v.AllDayDate != *o.AllDayDate {
		return false
	}
	if v.Instant != nil && *v.Instant != *o.Instant {
		return false
	}
	return v.Zone == o.Zone
}

// Validate checks the mutual-exclusion invariant of v.
func (v Value) Validate() error {
	switch {
	case v.AllDayDate != nil && v.Instant != nil:
		return newValidationError(FieldValue, ReasonBothSet)
	case v.AllDayDate == nil && v.Instant == nil:
		return newValidationError(FieldValue, ReasonNeitherSet)
	case v.AllDayDate != nil && v.Zone != "":
		return newValidationError(FieldZone, ReasonZoneOnAllDay)
	case v.Instant != nil && v.Zone == "":
		return newValidationError(FieldZone, ReasonMissingZone)
	}
	if v.AllDayDate != nil && !v.AllDayDate.Valid() {
		return newValidationError(FieldDate, ReasonMalformedDate)
	}
	if v.Instant != nil {
		if !v.Instant.Date.Valid() {
			return newValidationError(FieldDate, ReasonMalformedDate)
		}
		if !v.Instant.Time.Valid() {
			return newValidationError(FieldTime, ReasonMalformedTime)
		}
	}
	return nil
}

// Compare orders a and b. ok is false when the two values cannot be ordered
// without zone resolution (different kinds, or instants in different zones).
func Compare(a, b Value) (cmp int, ok bool) {
	switch {
	case a.AllDayDate != nil && b.AllDayDate != nil:
		return a.AllDayDate.Compare(*b.AllDayDate), true
	case a.Instant != nil && b.Instant != nil && a.Zone == b.Zone:
		if c := a.Instant.Date.Compare(b.Instant.Date); c != 0 {
			return c, true
		}
		return a.Instant.Time.Compare(b.Instant.Time), true
	}
	return 0, false
}
