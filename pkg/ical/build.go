package ical

import (
	"errors"
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	productID     = "-//event-approval//event requests//EN"
	localDateTime = "20060102T150405"
)

var ErrMissingUID = errors.New("ical: event uid is required")

// Build renders ev as a standalone iCalendar document.
func Build(ev Event) ([]byte, error) {
	if ev.UID == "" {
		return nil, ErrMissingUID
	}

	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)

	vev := cal.AddEvent(ev.UID)
	stamp := ev.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	vev.SetDtStampTime(stamp.UTC())
	if !ev.Modified.IsZero() {
		vev.SetModifiedAt(ev.Modified.UTC())
	}

	if ev.Summary != "" {
		vev.SetSummary(ev.Summary)
	}
	if ev.Description != "" {
		vev.SetDescription(ev.Description)
	}
	if ev.Location != "" {
		vev.SetLocation(ev.Location)
	}
	if ev.Confirmed {
		vev.SetProperty(ics.ComponentPropertyStatus, "CONFIRMED")
	} else {
		vev.SetProperty(ics.ComponentPropertyStatus, "TENTATIVE")
	}

	setTime(vev, ics.ComponentPropertyDtStart, ev.Start, false)
	setTime(vev, ics.ComponentPropertyDtEnd, ev.End, true)

	for _, a := range ev.Attendees {
		role := ics.ParticipationRoleOptParticipant
		if a.Required {
			role = ics.ParticipationRoleReqParticipant
		}
		vev.AddAttendee(a.Address, role, partStat(a.Status))
	}

	return []byte(cal.Serialize()), nil
}

func setTime(vev *ics.VEvent, prop ics.ComponentProperty, t Time, end bool) {
	switch {
	case t.AllDay:
		day := time.Date(t.Value.Year(), t.Value.Month(), t.Value.Day(), 0, 0, 0, 0, time.UTC)
		if end {
			day = day.AddDate(0, 0, 1)
		}
		if prop == ics.ComponentPropertyDtEnd {
			vev.SetAllDayEndAt(day)
		} else {
			vev.SetAllDayStartAt(day)
		}
	case t.TimeZone == "" || t.TimeZone == "UTC":
		vev.SetProperty(prop, t.Value.UTC().Format(localDateTime+"Z"))
	default:
		vev.SetProperty(prop, t.Value.Format(localDateTime), &ics.KeyValues{Key: "TZID", Value: []string{t.TimeZone}})
	}
}

func partStat(s PartStat) ics.ParticipationStatus {
	switch s {
	case PartStatAccepted:
		return ics.ParticipationStatusAccepted
	case PartStatDeclined:
		return ics.ParticipationStatusDeclined
	default:
		return ics.ParticipationStatusNeedsAction
	}
}
