package usecase

import (
	"context"

	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
	"event-approval/internal/form"
	"event-approval/internal/model"
)

// Detail returns a request visible to the caller plus its editable form.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (eventrequest.DetailOutput, error) {
	er, err := uc.getVisible(ctx, sc, id, "Detail")
	if err != nil {
		return eventrequest.DetailOutput{}, err
	}
	return eventrequest.DetailOutput{
		EventRequest: er,
		Summary:      er.Summary(),
		EditForm:     form.Load(er.Submission()),
	}, nil
}

// Update replaces the request with a full form submission. Only the owner may
// edit. Approvers removed from the list lose their decisions.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input eventrequest.UpdateInput) (eventrequest.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID, "Update")
	if err != nil {
		return eventrequest.UpdateOutput{}, err
	}

	sub, err := uc.submit(input.Form, sc.UserID)
	if err != nil {
		return eventrequest.UpdateOutput{}, err
	}

	er, err := uc.repo.UpdateEventRequest(ctx, repo.UpdateEventRequestOptions{
		ID:         input.ID,
		Submission: sub,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEventRequest: %v", err)
		return eventrequest.UpdateOutput{}, err
	}
	if er.ID == "" {
		return eventrequest.UpdateOutput{}, eventrequest.ErrNotFound
	}

	// The published copy describes the old times, so it is always replaced.
	// If it cannot be withdrawn it stays the only copy.
	er.CalendarEventID = existing.CalendarEventID
	if uc.unpublish(ctx, &er) {
		uc.syncCalendar(ctx, &er, false)
	}

	return eventrequest.UpdateOutput{EventRequest: er, Summary: er.Summary()}, nil
}

// Delete removes a request owned by the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	er, err := uc.getOwned(ctx, sc, id, "Delete")
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteEventRequest(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEventRequest: %v", err)
		return err
	}

	if uc.calendar != nil && er.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, er.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteEvent %s: %v", id, err)
		}
	}
	return nil
}
