package usecase

import (
	"context"
	"strings"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	"event-approval/internal/temporal"
	"event-approval/pkg/gcalendar"
)

// syncCalendar publishes er when it has just become approved and withdraws it
// when it stopped being approved. Calendar failures are logged, never returned.
func (uc *implUseCase) syncCalendar(ctx context.Context, er *eventrequest.EventRequest, wasApproved bool) {
	if uc.calendar == nil {
		return
	}
	approved := er.Summary().Status == approval.StatusApproved

	switch {
	case approved && !wasApproved:
		uc.publish(ctx, er)
	case !approved && wasApproved:
		uc.unpublish(ctx, er)
	}
}

// publish inserts er into the calendar unless a copy is already published.
func (uc *implUseCase) publish(ctx context.Context, er *eventrequest.EventRequest) {
	if er.CalendarEventID != "" {
		uc.l.Warnf(ctx, "uc.publish %s: already published as %s", er.ID, er.CalendarEventID)
		return
	}

	req, err := uc.toCalendarEvent(*er)
	if err != nil {
		uc.l.Warnf(ctx, "uc.publish toCalendarEvent %s: %v", er.ID, err)
		return
	}

	ev, err := uc.calendar.InsertEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "uc.publish InsertEvent %s: %v", er.ID, err)
		return
	}

	if err := uc.repo.SetCalendarEventID(ctx, er.ID, ev.ID); err != nil {
		uc.l.Errorf(ctx, "uc.publish SetCalendarEventID %s: %v", er.ID, err)
		return
	}
	er.CalendarEventID = ev.ID
	uc.l.Infof(ctx, "uc.publish: event request %s published as %s", er.ID, ev.ID)
}

// unpublish withdraws the published copy of er. It reports whether er is left
// without one; on false the stored calendar event id is kept.
func (uc *implUseCase) unpublish(ctx context.Context, er *eventrequest.EventRequest) bool {
	if uc.calendar == nil || er.CalendarEventID == "" {
		return true
	}

	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, er.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "uc.unpublish DeleteEvent %s: %v", er.ID, err)
		return false
	}
	if err := uc.repo.SetCalendarEventID(ctx, er.ID, ""); err != nil {
		uc.l.Errorf(ctx, "uc.unpublish SetCalendarEventID %s: %v", er.ID, err)
	}
	er.CalendarEventID = ""
	return true
}

func (uc *implUseCase) toCalendarEvent(er eventrequest.EventRequest) (gcalendar.InsertEventRequest, error) {
	start, err := uc.calendarTime(er.Start, false)
	if err != nil {
		return gcalendar.InsertEventRequest{}, err
	}
	end, err := uc.calendarTime(er.End, true)
	if err != nil {
		return gcalendar.InsertEventRequest{}, err
	}

	var attendees []gcalendar.Attendee
	for _, a := range er.Approvers {
		// Only approvers identified by email can be invited.
		if strings.Contains(a.UserID, "@") {
			attendees = append(attendees, gcalendar.Attendee{Email: a.UserID, Optional: !a.Required})
		}
	}

	return gcalendar.InsertEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     er.Title,
		Description: joinNonEmpty(er.Description, er.Notes),
		Location:    er.Location,
		Start:       start,
		End:         end,
		Attendees:   attendees,
	}, nil
}

// calendarTime maps a value onto Google's representation. All-day end dates are
// exclusive there.
func (uc *implUseCase) calendarTime(v temporal.Value, end bool) (gcalendar.EventTime, error) {
	if err := v.Validate(); err != nil {
		return gcalendar.EventTime{}, err
	}
	if v.AllDayDate != nil {
		d := *v.AllDayDate
		if end {
			d = d.AddDays(1)
		}
		return gcalendar.EventTime{Date: d.String()}, nil
	}

	t, err := uc.zones.Resolve(v)
	if err != nil {
		return gcalendar.EventTime{}, err
	}
	return gcalendar.EventTime{DateTime: t, TimeZone: v.Zone}, nil
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
