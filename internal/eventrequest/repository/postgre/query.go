package postgre

import (
	"fmt"
	"strings"

	repo "event-approval/internal/eventrequest/repository"
)

const eventRequestColumns = `id, owner_id, title, description, location, notes,
	start_date, start_date_time, start_time_zone,
	end_date, end_date_time, end_time_zone,
	importance_level, calendar_event_id, created_at, updated_at`

const (
	insertEventRequestQuery = `
		INSERT INTO event_requests (id, owner_id, title, description, location, notes,
			start_date, start_date_time, start_time_zone,
			end_date, end_date_time, end_time_zone,
			importance_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at`

	updateEventRequestQuery = `
		UPDATE event_requests
		SET title = $1, description = $2, location = $3, notes = $4,
			start_date = $5, start_date_time = $6, start_time_zone = $7,
			end_date = $8, end_date_time = $9, end_time_zone = $10,
			importance_level = $11, updated_at = NOW()
		WHERE id = $12`

	deleteEventRequestQuery = `DELETE FROM event_requests WHERE id = $1`

	setCalendarEventIDQuery = `UPDATE event_requests SET calendar_event_id = $1 WHERE id = $2`

	upsertApproverQuery = `
		INSERT INTO event_request_approvers (event_request_id, user_id, required, position, decision)
		VALUES ($1, $2, $3, $4, 'pending')
		ON CONFLICT (event_request_id, user_id)
		DO UPDATE SET required = EXCLUDED.required, position = EXCLUDED.position`

	deleteStaleApproversQuery = `
		DELETE FROM event_request_approvers
		WHERE event_request_id = $1 AND NOT (user_id = ANY($2))`

	selectApproversQuery = `
		SELECT event_request_id, user_id, required, decision
		FROM event_request_approvers
		WHERE event_request_id = ANY($1)
		ORDER BY event_request_id, position`

	lockEventRequestQuery = `SELECT ` + eventRequestColumns + ` FROM event_requests WHERE id = $1 FOR UPDATE`

	upsertDecisionQuery = `
		UPDATE event_request_approvers
		SET decision = $1, decided_at = $2
		WHERE event_request_id = $3 AND user_id = $4`
)

// buildGetOneQuery builds the WHERE clause + args for GetOneEventRequest.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEventRequestOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// visibleCondition matches requests the user owns or is asked to approve.
func visibleCondition(idx int) string {
	return fmt.Sprintf(`(owner_id = $%[1]d OR EXISTS (
		SELECT 1 FROM event_request_approvers a
		WHERE a.event_request_id = event_requests.id AND a.user_id = $%[1]d))`, idx)
}

// buildCountQuery builds the WHERE clause + args for counting (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListEventRequestsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.VisibleTo != "" {
		conditions = append(conditions, visibleCondition(1))
		args = append(args, opt.VisibleTo)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause.
func (r *implRepository) buildListQuery(opt repo.ListEventRequestsOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	if opt.VisibleTo != "" {
		parts = append(parts, "WHERE "+visibleCondition(idx))
		args = append(args, opt.VisibleTo)
		idx++
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
