package gcalendar

import "time"

// EventTime is one end of an event. Set Date ("YYYY-MM-DD") for all-day events,
// or DateTime plus TimeZone for timed ones.
type EventTime struct {
	Date     string
	DateTime time.Time
	TimeZone string // e.g. "Asia/Ho_Chi_Minh"
}

// Attendee is an invited participant.
type Attendee struct {
	Email    string
	Optional bool
}

// InsertEventRequest is the input for creating a Google Calendar event.
type InsertEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Start       EventTime
	End         EventTime
	Attendees   []Attendee
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
