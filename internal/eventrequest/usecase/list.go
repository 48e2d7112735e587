package usecase

import (
	"context"

	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
	"event-approval/internal/model"
)

// List returns the requests visible to the caller. The status filter runs on the
// derived aggregate, so filtered pages are cut after filtering.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input eventrequest.ListInput) (eventrequest.ListOutput, error) {
	opt := repo.ListEventRequestsOptions{VisibleTo: sc.UserID}
	if input.ApprovalStatus == "" {
		opt.Limit = input.Limit
		opt.Offset = input.Offset
	}

	ers, total, err := uc.repo.ListEventRequests(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEventRequests: %v", err)
		return eventrequest.ListOutput{}, err
	}

	items := make([]eventrequest.ListItem, 0, len(ers))
	for _, er := range ers {
		summary := er.Summary()
		if input.ApprovalStatus != "" && summary.Status != input.ApprovalStatus {
			continue
		}
		items = append(items, eventrequest.ListItem{EventRequest: er, Summary: summary})
	}

	if input.ApprovalStatus != "" {
		total = len(items)
		items = paginate(items, input.Limit, input.Offset)
	}

	return eventrequest.ListOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
