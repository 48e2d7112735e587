package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"time"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	repo "event-approval/internal/eventrequest/repository"
	"event-approval/internal/temporal"
	"event-approval/pkg/gcalendar"
	"event-approval/pkg/log"
)

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	items     map[string]eventrequest.EventRequest
	getErr    error
	listOpts  repo.ListEventRequestsOptions
	decisions []repo.UpsertDecisionOptions
}

func newMemRepo(items ...eventrequest.EventRequest) *memRepo {
	r := &memRepo{items: map[string]eventrequest.EventRequest{}}
	for _, er := range items {
		r.items[er.ID] = er
	}
	return r
}

func (r *memRepo) CreateEventRequest(ctx context.Context, opt repo.CreateEventRequestOptions) (eventrequest.EventRequest, error) {
	decisions := map[string]approval.Decision{}
	for _, a := range opt.Submission.Approvers {
		decisions[a.UserID] = approval.DecisionPending
	}
	er := fromSubmission(opt.ID, opt.OwnerID, opt.Submission.Approvers, decisions)
	er.Title = opt.Submission.Title
	er.Start, er.End = opt.Submission.Start, opt.Submission.End
	er.ImportanceLevel = opt.Submission.ImportanceLevel
	r.items[er.ID] = er
	return er, nil
}

func (r *memRepo) GetOneEventRequest(ctx context.Context, opt repo.GetOneEventRequestOptions) (eventrequest.EventRequest, error) {
	if r.getErr != nil {
		return eventrequest.EventRequest{}, r.getErr
	}
	er := r.items[opt.ID]
	er.Decisions = maps.Clone(er.Decisions)
	return er, nil
}

func (r *memRepo) ListEventRequests(ctx context.Context, opt repo.ListEventRequestsOptions) ([]eventrequest.EventRequest, int, error) {
	r.listOpts = opt
	var out []eventrequest.EventRequest
	for _, er := range r.items {
		if opt.VisibleTo == "" || er.VisibleTo(opt.VisibleTo) {
			out = append(out, er)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := len(out)
	return paginate(out, opt.Limit, opt.Offset), total, nil
}

func (r *memRepo) UpdateEventRequest(ctx context.Context, opt repo.UpdateEventRequestOptions) (eventrequest.EventRequest, error) {
	existing, ok := r.items[opt.ID]
	if !ok {
		return eventrequest.EventRequest{}, nil
	}
	retained := approval.Retain(opt.Submission.Approvers, existing.Decisions)
	er := fromSubmission(opt.ID, existing.OwnerID, opt.Submission.Approvers, retained)
	er.Title = opt.Submission.Title
	er.Start, er.End = opt.Submission.Start, opt.Submission.End
	er.ImportanceLevel = opt.Submission.ImportanceLevel
	er.CalendarEventID = existing.CalendarEventID
	r.items[er.ID] = er
	return er, nil
}

func (r *memRepo) DeleteEventRequest(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memRepo) SetCalendarEventID(ctx context.Context, id, calendarEventID string) error {
	er, ok := r.items[id]
	if !ok {
		return repo.ErrFailedToUpdate
	}
	er.CalendarEventID = calendarEventID
	r.items[id] = er
	return nil
}

func (r *memRepo) UpsertDecision(ctx context.Context, opt repo.UpsertDecisionOptions) (repo.UpsertDecisionResult, error) {
	before, ok := r.items[opt.EventRequestID]
	if !ok {
		return repo.UpsertDecisionResult{}, nil
	}
	if !approval.Contains(before.Approvers, opt.UserID) {
		return repo.UpsertDecisionResult{}, repo.ErrApproverNotFound
	}
	before.Decisions = maps.Clone(before.Decisions)
	res := repo.NewUpsertDecisionResult(before, opt)
	r.items[before.ID] = res.After
	r.decisions = append(r.decisions, opt)
	return res, nil
}

func fromSubmission(id, owner string, approvers []approval.Approver, decisions map[string]approval.Decision) eventrequest.EventRequest {
	return eventrequest.EventRequest{
		ID:        id,
		OwnerID:   owner,
		Approvers: append([]approval.Approver(nil), approvers...),
		Decisions: decisions,
	}
}

// mockCalendar records calendar calls. Inserted events get sequential ids.
type mockCalendar struct {
	inserted  []gcalendar.InsertEventRequest
	deleted   []string
	insertErr error
	deleteErr error
}

func (m *mockCalendar) InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.inserted = append(m.inserted, req)
	return &gcalendar.Event{ID: fmt.Sprintf("gcal-%d", len(m.inserted)), Summary: req.Summary}, nil
}

// DeleteEvent records the attempt even when it fails.
func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return m.deleteErr
}

var errBoom = errors.New("boom")

var fixedNow = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestUseCase(r repo.Repository, cal CalendarPublisher) *implUseCase {
	zones, err := temporal.NewZoneRegistry("Asia/Ho_Chi_Minh")
	if err != nil {
		panic(err)
	}
	uc := New(r, log.NewNop(), zones, Config{CalendarID: "team"})
	if cal != nil {
		uc.calendar = cal
	}
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "er-new" }
	return uc
}
