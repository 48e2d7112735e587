package temporal

import (
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ParseDate parses "YYYY-MM-DD". Impossible dates such as 2025-02-30 are rejected.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, newValidationError(FieldDate, ReasonMalformedDate)
	}
	return DateOf(t), nil
}

// ParseTime parses "HH:MM" or "HH:MM:SS" on a 24h clock.
func ParseTime(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, TimeLayoutSeconds} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, newValidationError(FieldTime, ReasonMalformedTime)
}

// ParseDateTime parses the wire "YYYY-MM-DDTHH:MM[:SS]" form. The reason of a
// failure names the part that did not parse.
func ParseDateTime(s string) (Instant, error) {
	s = strings.TrimSpace(s)
	datePart, _, _ := strings.Cut(s, "T")
	if _, err := time.Parse(DateLayout, datePart); err != nil {
		return Instant{}, newValidationError(FieldValue, ReasonMalformedDate)
	}
	for _, layout := range []string{DateTimeLayout, dateTimeShort} {
		if t, err := time.Parse(layout, s); err == nil {
			return Instant{Date: DateOf(t), Time: TimeOf(t)}, nil
		}
	}
	return Instant{}, newValidationError(FieldValue, ReasonMalformedTime)
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// TimeOf returns the wall-clock time of t in t's own location.
func TimeOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (d CalendarDate) String() string {
	return d.Time().Format(DateLayout)
}

// Time returns midnight UTC on d.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether d names a real calendar day.
func (d CalendarDate) Valid() bool {
	return d.Month >= time.January && d.Month <= time.December && DateOf(d.Time()) == d
}

// AddDays returns d shifted by n days.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	return d.Time().Compare(o.Time())
}

// String formats t as "HH:MM", or "HH:MM:SS" when seconds are present.
func (t TimeOfDay) String() string {
	layout := TimeLayout
	if t.Second != 0 {
		layout = TimeLayoutSeconds
	}
	return time.Date(0, 1, 1, t.Hour, t.Minute, t.Second, 0, time.UTC).Format(layout)
}

// Valid reports whether t is a real 24h clock reading.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60 && t.Second >= 0 && t.Second < 60
}

// AddMinutes shifts t by n minutes, wrapping around midnight. The date is never
// touched: 23:55 + 15m is 00:10 on the same day.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	total := ((t.Hour*60+t.Minute+n)%minutesPerDay + minutesPerDay) % minutesPerDay
	return TimeOfDay{Hour: total / 60, Minute: total % 60, Second: t.Second}
}

// Compare returns -1, 0 or +1.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	a := t.Hour*3600 + t.Minute*60 + t.Second
	b := o.Hour*3600 + o.Minute*60 + o.Second
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String formats i as the wire date_time form with seconds.
func (i Instant) String() string {
	return i.In(time.UTC).Format(DateTimeLayout)
}

// In returns the absolute time at which the wall clock in loc reads i.
func (i Instant) In(loc *time.Location) time.Time {
	return time.Date(i.Date.Year, i.Date.Month, i.Date.Day, i.Time.Hour, i.Time.Minute, i.Time.Second, 0, loc)
}
