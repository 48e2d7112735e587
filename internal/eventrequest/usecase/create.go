package usecase

import (
	"context"

	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
	"event-approval/internal/model"
)

// Create converts the submitted form and stores a new request owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input eventrequest.CreateInput) (eventrequest.CreateOutput, error) {
	sub, err := uc.submit(input.Form, sc.UserID)
	if err != nil {
		return eventrequest.CreateOutput{}, err
	}

	er, err := uc.repo.CreateEventRequest(ctx, repo.CreateEventRequestOptions{
		ID:         uc.newID(),
		OwnerID:    sc.UserID,
		Submission: sub,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEventRequest: %v", err)
		return eventrequest.CreateOutput{}, err
	}

	// A request whose approvers are all optional is approved at once.
	uc.syncCalendar(ctx, &er, false)

	return eventrequest.CreateOutput{EventRequest: er, Summary: er.Summary()}, nil
}
