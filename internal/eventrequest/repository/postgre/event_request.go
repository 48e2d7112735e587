package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
	"event-approval/internal/form"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scanEventRequest(row rowScanner) (eventrequest.EventRequest, error) {
	var (
		er                             eventrequest.EventRequest
		startDate, startDT             sql.NullTime
		endDate, endDT                 sql.NullTime
		startZone, endZone, calendarID sql.NullString
	)
	err := row.Scan(
		&er.ID, &er.OwnerID, &er.Title, &er.Description, &er.Location, &er.Notes,
		&startDate, &startDT, &startZone,
		&endDate, &endDT, &endZone,
		&er.ImportanceLevel, &calendarID, &er.CreatedAt, &er.UpdatedAt,
	)
	if err != nil {
		return eventrequest.EventRequest{}, err
	}
	er.Start = temporalFromColumns(startDate, startDT, startZone)
	er.End = temporalFromColumns(endDate, endDT, endZone)
	er.CalendarEventID = calendarID.String
	return er, nil
}

// CreateEventRequest inserts the request and its approvers in one transaction.
func (r *implRepository) CreateEventRequest(ctx context.Context, opt repo.CreateEventRequestOptions) (eventrequest.EventRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	sub := opt.Submission
	startDate, startDT, startZone := temporalArgs(sub.Start)
	endDate, endDT, endZone := temporalArgs(sub.End)

	er := newEventRequest(opt.ID, opt.OwnerID, sub)
	err = tx.QueryRowContext(ctx, insertEventRequestQuery,
		opt.ID, opt.OwnerID, sub.Title, sub.Description, sub.Location, sub.Notes,
		startDate, startDT, startZone,
		endDate, endDT, endZone,
		sub.ImportanceLevel,
	).Scan(&er.CreatedAt, &er.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToInsert
	}

	if err := r.upsertApprovers(ctx, tx, opt.ID, sub.Approvers); err != nil {
		r.l.Errorf(ctx, "%s approvers: %v", r.dsn("CreateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToInsert
	}
	return er, nil
}

// GetOneEventRequest returns the zero value (ID == "") when not found.
func (r *implRepository) GetOneEventRequest(ctx context.Context, opt repo.GetOneEventRequestOptions) (eventrequest.EventRequest, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM event_requests WHERE %s LIMIT 1", eventRequestColumns, mods)

	er, err := scanEventRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return eventrequest.EventRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToGet
	}

	items := []eventrequest.EventRequest{er}
	if err := r.loadApprovers(ctx, r.db, items); err != nil {
		r.l.Errorf(ctx, "%s approvers: %v", r.dsn("GetOneEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToGet
	}
	return items[0], nil
}

// ListEventRequests returns a page of requests and the total count.
func (r *implRepository) ListEventRequests(ctx context.Context, opt repo.ListEventRequestsOptions) ([]eventrequest.EventRequest, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM event_requests WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEventRequests"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM event_requests %s", eventRequestColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEventRequests"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []eventrequest.EventRequest
	for rows.Next() {
		er, err := scanEventRequest(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEventRequests"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, er)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEventRequests"), err)
		return nil, 0, repo.ErrFailedToList
	}

	if err := r.loadApprovers(ctx, r.db, items); err != nil {
		r.l.Errorf(ctx, "%s approvers: %v", r.dsn("ListEventRequests"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateEventRequest replaces the editable fields and the approver list.
// Retained approvers keep their decisions. Returns the zero value when the
// request does not exist.
func (r *implRepository) UpdateEventRequest(ctx context.Context, opt repo.UpdateEventRequestOptions) (eventrequest.EventRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	sub := opt.Submission
	startDate, startDT, startZone := temporalArgs(sub.Start)
	endDate, endDT, endZone := temporalArgs(sub.End)

	res, err := tx.ExecContext(ctx, updateEventRequestQuery,
		sub.Title, sub.Description, sub.Location, sub.Notes,
		startDate, startDT, startZone,
		endDate, endDT, endZone,
		sub.ImportanceLevel, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return eventrequest.EventRequest{}, nil
	}

	userIDs := make([]string, len(sub.Approvers))
	for i, a := range sub.Approvers {
		userIDs[i] = a.UserID
	}
	if _, err := tx.ExecContext(ctx, deleteStaleApproversQuery, opt.ID, pq.Array(userIDs)); err != nil {
		r.l.Errorf(ctx, "%s stale approvers: %v", r.dsn("UpdateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToUpdate
	}
	if err := r.upsertApprovers(ctx, tx, opt.ID, sub.Approvers); err != nil {
		r.l.Errorf(ctx, "%s approvers: %v", r.dsn("UpdateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateEventRequest"), err)
		return eventrequest.EventRequest{}, repo.ErrFailedToUpdate
	}

	return r.GetOneEventRequest(ctx, repo.GetOneEventRequestOptions{ID: opt.ID})
}

// DeleteEventRequest removes a request. Approver rows cascade.
func (r *implRepository) DeleteEventRequest(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteEventRequestQuery, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEventRequest"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) SetCalendarEventID(ctx context.Context, id, calendarEventID string) error {
	if _, err := r.db.ExecContext(ctx, setCalendarEventIDQuery, calendarEventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) upsertApprovers(ctx context.Context, tx *sql.Tx, id string, approvers []approval.Approver) error {
	for i, a := range approvers {
		if _, err := tx.ExecContext(ctx, upsertApproverQuery, id, a.UserID, a.Required, i); err != nil {
			return err
		}
	}
	return nil
}

// loadApprovers fills Approvers and Decisions for items with one query.
func (r *implRepository) loadApprovers(ctx context.Context, q querier, items []eventrequest.EventRequest) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, len(items))
	byID := make(map[string]*eventrequest.EventRequest, len(items))
	for i := range items {
		ids[i] = items[i].ID
		items[i].Decisions = map[string]approval.Decision{}
		byID[items[i].ID] = &items[i]
	}

	rows, err := q.QueryContext(ctx, selectApproversQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			requestID, userID, decision string
			required                    bool
		)
		if err := rows.Scan(&requestID, &userID, &required, &decision); err != nil {
			return err
		}
		er, ok := byID[requestID]
		if !ok {
			continue
		}
		er.Approvers = append(er.Approvers, approval.Approver{UserID: userID, Required: required})
		er.Decisions[userID] = approval.ParseDecision(decision)
	}
	return rows.Err()
}

func newEventRequest(id, ownerID string, sub form.Submission) eventrequest.EventRequest {
	decisions := make(map[string]approval.Decision, len(sub.Approvers))
	for _, a := range sub.Approvers {
		decisions[a.UserID] = approval.DecisionPending
	}
	return eventrequest.EventRequest{
		ID:              id,
		OwnerID:         ownerID,
		Title:           sub.Title,
		Description:     sub.Description,
		Location:        sub.Location,
		Notes:           sub.Notes,
		Start:           sub.Start,
		End:             sub.End,
		ImportanceLevel: sub.ImportanceLevel,
		Approvers:       append([]approval.Approver(nil), sub.Approvers...),
		Decisions:       decisions,
	}
}
