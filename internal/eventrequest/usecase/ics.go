package usecase

import (
	"context"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	"event-approval/internal/model"
	"event-approval/internal/temporal"
	"event-approval/pkg/ical"
)

const icsUIDDomain = "event-approval"

// ExportICS renders a request visible to the caller as an iCalendar file.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope, id string) (eventrequest.ExportICSOutput, error) {
	er, err := uc.getVisible(ctx, sc, id, "ExportICS")
	if err != nil {
		return eventrequest.ExportICSOutput{}, err
	}

	start, err := uc.icsTime(er.Start)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS start %s: %v", id, err)
		return eventrequest.ExportICSOutput{}, err
	}
	end, err := uc.icsTime(er.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS end %s: %v", id, err)
		return eventrequest.ExportICSOutput{}, err
	}

	attendees := make([]ical.Attendee, len(er.Approvers))
	for i, a := range er.Approvers {
		attendees[i] = ical.Attendee{
			Address:  a.UserID,
			Required: a.Required,
			Status:   partStat(er.Decisions[a.UserID]),
		}
	}

	content, err := ical.Build(ical.Event{
		UID:         er.ID + "@" + icsUIDDomain,
		Summary:     er.Title,
		Description: joinNonEmpty(er.Description, er.Notes),
		Location:    er.Location,
		Confirmed:   er.Summary().Status == approval.StatusApproved,
		Start:       start,
		End:         end,
		Attendees:   attendees,
		Stamp:       uc.now(),
		Modified:    er.UpdatedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS Build %s: %v", id, err)
		return eventrequest.ExportICSOutput{}, err
	}

	return eventrequest.ExportICSOutput{FileName: er.ID + ".ics", Content: content}, nil
}

func (uc *implUseCase) icsTime(v temporal.Value) (ical.Time, error) {
	if err := v.Validate(); err != nil {
		return ical.Time{}, err
	}
	if v.AllDayDate != nil {
		return ical.Time{AllDay: true, Value: v.AllDayDate.Time()}, nil
	}
	t, err := uc.zones.Resolve(v)
	if err != nil {
		return ical.Time{}, err
	}
	return ical.Time{Value: t, TimeZone: v.Zone}, nil
}

func partStat(d approval.Decision) ical.PartStat {
	switch d {
	case approval.DecisionApproved:
		return ical.PartStatAccepted
	case approval.DecisionRejected:
		return ical.PartStatDeclined
	}
	return ical.PartStatNeedsAction
}
