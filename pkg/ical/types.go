package ical

import "time"

// PartStat is the participation status of an attendee.
type PartStat string

const (
	PartStatNeedsAction PartStat = "NEEDS-ACTION"
	PartStatAccepted    PartStat = "ACCEPTED"
	PartStatDeclined    PartStat = "DECLINED"
)

// Time is one end of an event. For all-day events only the date of Value is
// used. For timed events Value is the wall clock in TimeZone.
type Time struct {
	AllDay   bool
	Value    time.Time
	TimeZone string
}

type Attendee struct {
	Address  string
	Required bool
	Status   PartStat
}

// Event describes a single VEVENT. End is inclusive for all-day events; Build
// converts it to the exclusive DTEND the format expects.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Confirmed   bool
	Start       Time
	End         Time
	Attendees   []Attendee
	Stamp       time.Time
	Modified    time.Time
}
