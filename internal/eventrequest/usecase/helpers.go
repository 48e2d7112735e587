package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
	"event-approval/internal/form"
	"event-approval/internal/model"
)

func newRequestID() string {
	return uuid.NewString()
}

// submit converts a form to canonical values and checks the approver list.
// Temporal validation errors are returned as-is for inline display.
func (uc *implUseCase) submit(f form.FormState, ownerID string) (form.Submission, error) {
	sub, err := f.Submit(uc.zones)
	if err != nil {
		return form.Submission{}, mapFormError(err)
	}
	if err := uc.zones.CheckZone(sub.Start); err != nil {
		return form.Submission{}, fmt.Errorf("start: %w", err)
	}
	if err := uc.zones.CheckZone(sub.End); err != nil {
		return form.Submission{}, fmt.Errorf("end: %w", err)
	}
	if err := approval.ValidateApprovers(sub.Approvers, ownerID); err != nil {
		return form.Submission{}, fmt.Errorf("%w: %v", eventrequest.ErrInvalidApprovers, err)
	}
	return sub, nil
}

func mapFormError(err error) error {
	switch {
	case errors.Is(err, form.ErrMissingTitle):
		return eventrequest.ErrMissingTitle
	case errors.Is(err, form.ErrInvalidRange):
		return eventrequest.ErrInvalidRange
	case errors.Is(err, form.ErrInvalidImportance):
		return eventrequest.ErrInvalidImportance
	}
	return err
}

// getVisible loads a request the caller may see.
func (uc *implUseCase) getVisible(ctx context.Context, sc model.Scope, id, method string) (eventrequest.EventRequest, error) {
	er, err := uc.repo.GetOneEventRequest(ctx, repo.GetOneEventRequestOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneEventRequest: %v", method, err)
		return eventrequest.EventRequest{}, err
	}
	if er.ID == "" {
		return eventrequest.EventRequest{}, eventrequest.ErrNotFound
	}
	if !er.VisibleTo(sc.UserID) {
		return eventrequest.EventRequest{}, eventrequest.ErrForbidden
	}
	return er, nil
}

// getOwned loads a request the caller owns.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id, method string) (eventrequest.EventRequest, error) {
	er, err := uc.getVisible(ctx, sc, id, method)
	if err != nil {
		return eventrequest.EventRequest{}, err
	}
	if er.OwnerID != sc.UserID {
		return eventrequest.EventRequest{}, eventrequest.ErrForbidden
	}
	return er, nil
}
