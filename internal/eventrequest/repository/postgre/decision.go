package postgre

import (
	"context"
	"database/sql"
	"errors"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
)

// UpsertDecision records an approver's decision. A pending decision clears
// decided_at. The request row stays locked from the read to the commit, so two
// approvers deciding at once are serialized and the second sees the first.
func (r *implRepository) UpsertDecision(ctx context.Context, opt repo.UpsertDecisionOptions) (repo.UpsertDecisionResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertDecision"), err)
		return repo.UpsertDecisionResult{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	before, err := scanEventRequest(tx.QueryRowContext(ctx, lockEventRequestQuery, opt.EventRequestID))
	if errors.Is(err, sql.ErrNoRows) {
		return repo.UpsertDecisionResult{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s lock: %v", r.dsn("UpsertDecision"), err)
		return repo.UpsertDecisionResult{}, repo.ErrFailedToUpdate
	}

	items := []eventrequest.EventRequest{before}
	if err := r.loadApprovers(ctx, tx, items); err != nil {
		r.l.Errorf(ctx, "%s approvers: %v", r.dsn("UpsertDecision"), err)
		return repo.UpsertDecisionResult{}, repo.ErrFailedToUpdate
	}
	before = items[0]
	if !approval.Contains(before.Approvers, opt.UserID) {
		return repo.UpsertDecisionResult{}, repo.ErrApproverNotFound
	}

	var decidedAt any
	if opt.Decision != approval.DecisionPending {
		decidedAt = opt.DecidedAt
	}

	res, err := tx.ExecContext(ctx, upsertDecisionQuery, string(opt.Decision), decidedAt, opt.EventRequestID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertDecision"), err)
		return repo.UpsertDecisionResult{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.l.Warnf(ctx, "%s: no approver row for %s on %s", r.dsn("UpsertDecision"), opt.UserID, opt.EventRequestID)
		return repo.UpsertDecisionResult{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertDecision"), err)
		return repo.UpsertDecisionResult{}, repo.ErrFailedToUpdate
	}
	return repo.NewUpsertDecisionResult(before, opt), nil
}
