package usecase

import (
	"context"
	"errors"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
	"event-approval/internal/model"
)

// Decide records the caller's decision and recomputes the aggregate.
func (uc *implUseCase) Decide(ctx context.Context, sc model.Scope, input eventrequest.DecideInput) (eventrequest.DecideOutput, error) {
	if !input.Decision.Valid() {
		return eventrequest.DecideOutput{}, eventrequest.ErrInvalidDecision
	}

	er, err := uc.getVisible(ctx, sc, input.ID, "Decide")
	if err != nil {
		return eventrequest.DecideOutput{}, err
	}
	if !approval.Contains(er.Approvers, sc.UserID) {
		return eventrequest.DecideOutput{}, eventrequest.ErrNotApprover
	}

	res, err := uc.repo.UpsertDecision(ctx, repo.UpsertDecisionOptions{
		EventRequestID: er.ID,
		UserID:         sc.UserID,
		Decision:       input.Decision,
		DecidedAt:      uc.now(),
	})
	switch {
	case errors.Is(err, repo.ErrApproverNotFound):
		return eventrequest.DecideOutput{}, eventrequest.ErrNotApprover
	case err != nil:
		uc.l.Errorf(ctx, "uc.Decide UpsertDecision: %v", err)
		return eventrequest.DecideOutput{}, err
	case res.After.ID == "":
		return eventrequest.DecideOutput{}, eventrequest.ErrNotFound
	}

	// Transitions are judged on the locked snapshot, not on the read above, so
	// concurrent deciders cannot both miss the approval.
	er = res.After
	wasApproved := res.Before.Summary().Status == approval.StatusApproved
	uc.syncCalendar(ctx, &er, wasApproved)

	return eventrequest.DecideOutput{EventRequest: er, Summary: er.Summary()}, nil
}
