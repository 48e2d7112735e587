package http

import (
	"strings"
	"time"

	"event-approval/internal/approval"
	"event-approval/internal/eventrequest"
	"event-approval/internal/form"
	"event-approval/internal/temporal"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// --- Request DTOs ---

// localDateReq is one side of the form as the user typed it.
type localDateReq struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	AllDay bool   `json:"all_day"`
}

func (r localDateReq) toLocal() temporal.LocalFormDate {
	return temporal.LocalFormDate{DateText: r.Date, TimeText: r.Time, AllDay: r.AllDay}
}

type approverReq struct {
	UserID   string `json:"user_id" binding:"required"`
	Required bool   `json:"required"`
}

type formReq struct {
	Title           string        `json:"title"`
	Description     string        `json:"description" binding:"max=5000"`
	Location        string        `json:"location"    binding:"max=500"`
	Notes           string        `json:"notes"       binding:"max=5000"`
	Start           localDateReq  `json:"start"`
	End             localDateReq  `json:"end"`
	ImportanceLevel int           `json:"importance_level"`
	Approvers       []approverReq `json:"approvers"   binding:"dive"`
}

func (r formReq) toForm() form.FormState {
	approvers := make([]approval.Approver, len(r.Approvers))
	for i, a := range r.Approvers {
		approvers[i] = approval.Approver{UserID: strings.TrimSpace(a.UserID), Required: a.Required}
	}
	return form.FormState{
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		Notes:           r.Notes,
		Start:           r.Start.toLocal(),
		End:             r.End.toLocal(),
		ImportanceLevel: r.ImportanceLevel,
		Approvers:       approvers,
	}
}

type createReq struct {
	formReq
}

func (r createReq) toInput() eventrequest.CreateInput {
	return eventrequest.CreateInput{Form: r.toForm()}
}

// ---

type listReq struct {
	Status string `form:"approval_status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error {
	if r.Status != "" {
		if _, ok := approval.ParseStatus(r.Status); !ok {
			return errInvalidStatus
		}
	}
	if r.Limit < 0 || r.Offset < 0 {
		return errInvalidPageArg
	}
	return nil
}

func (r listReq) toInput() eventrequest.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	status, _ := approval.ParseStatus(r.Status)
	return eventrequest.ListInput{
		ApprovalStatus: status,
		Limit:          limit,
		Offset:         r.Offset,
	}
}

// ---

type updateReq struct {
	ID string `json:"-"` // populated from URI param
	formReq
}

func (r updateReq) toInput() eventrequest.UpdateInput {
	return eventrequest.UpdateInput{ID: r.ID, Form: r.toForm()}
}

// ---

type decideReq struct {
	ID       string `json:"-"`
	Decision string `json:"decision" binding:"required"`
}

func (r decideReq) toInput() eventrequest.DecideInput {
	return eventrequest.DecideInput{
		ID:       r.ID,
		Decision: approval.Decision(strings.ToLower(strings.TrimSpace(r.Decision))),
	}
}

// --- Response DTOs ---

type approverResp struct {
	UserID   string            `json:"user_id"`
	Required bool              `json:"required"`
	Decision approval.Decision `json:"decision"`
}

type eventRequestResp struct {
	ID                 string          `json:"id"`
	OwnerID            string          `json:"owner_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	Notes              string          `json:"notes"`
	Start              temporal.Value  `json:"start"`
	End                temporal.Value  `json:"end"`
	ImportanceLevel    int             `json:"importance_level"`
	Approvers          []approverResp  `json:"approvers"`
	ApprovalStatus     approval.Status `json:"approval_status"`
	RequestedApprovals int             `json:"requested_approvals"`
	CompletedCount     int             `json:"completed_count"`
	CalendarEventID    string          `json:"calendar_event_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func newEventRequestResp(er eventrequest.EventRequest, s approval.Summary) eventRequestResp {
	approvers := make([]approverResp, len(er.Approvers))
	for i, a := range er.Approvers {
		d, ok := er.Decisions[a.UserID]
		if !ok {
			d = approval.DecisionPending
		}
		approvers[i] = approverResp{UserID: a.UserID, Required: a.Required, Decision: d}
	}
	return eventRequestResp{
		ID:                 er.ID,
		OwnerID:            er.OwnerID,
		Title:              er.Title,
		Description:        er.Description,
		Location:           er.Location,
		Notes:              er.Notes,
		Start:              er.Start,
		End:                er.End,
		ImportanceLevel:    er.ImportanceLevel,
		Approvers:          approvers,
		ApprovalStatus:     s.Status,
		RequestedApprovals: s.Requested,
		CompletedCount:     s.Completed,
		CalendarEventID:    er.CalendarEventID,
		CreatedAt:          er.CreatedAt,
		UpdatedAt:          er.UpdatedAt,
	}
}

// formResp mirrors formReq so a client can feed it straight back into an update.
type formResp struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Location        string        `json:"location"`
	Notes           string        `json:"notes"`
	Start           localDateReq  `json:"start"`
	End             localDateReq  `json:"end"`
	ImportanceLevel int           `json:"importance_level"`
	Approvers       []approverReq `json:"approvers"`
}

func newLocalDateResp(l temporal.LocalFormDate) localDateReq {
	return localDateReq{Date: l.DateText, Time: l.TimeText, AllDay: l.AllDay}
}

func newFormResp(f form.FormState) formResp {
	approvers := make([]approverReq, len(f.Approvers))
	for i, a := range f.Approvers {
		approvers[i] = approverReq{UserID: a.UserID, Required: a.Required}
	}
	return formResp{
		Title:           f.Title,
		Description:     f.Description,
		Location:        f.Location,
		Notes:           f.Notes,
		Start:           newLocalDateResp(f.Start),
		End:             newLocalDateResp(f.End),
		ImportanceLevel: f.ImportanceLevel,
		Approvers:       approvers,
	}
}

type createResp struct {
	EventRequest eventRequestResp `json:"event_request"`
}

func (h *handler) newCreateResp(out eventrequest.CreateOutput) createResp {
	return createResp{EventRequest: newEventRequestResp(out.EventRequest, out.Summary)}
}

type listResp struct {
	Items  []eventRequestResp `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

func (h *handler) newListResp(out eventrequest.ListOutput) listResp {
	items := make([]eventRequestResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newEventRequestResp(item.EventRequest, item.Summary)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	EventRequest eventRequestResp `json:"event_request"`
	EditForm     formResp         `json:"edit_form"`
}

func (h *handler) newDetailResp(out eventrequest.DetailOutput) detailResp {
	return detailResp{
		EventRequest: newEventRequestResp(out.EventRequest, out.Summary),
		EditForm:     newFormResp(out.EditForm),
	}
}

type updateResp struct {
	EventRequest eventRequestResp `json:"event_request"`
}

func (h *handler) newUpdateResp(out eventrequest.UpdateOutput) updateResp {
	return updateResp{EventRequest: newEventRequestResp(out.EventRequest, out.Summary)}
}

type decideResp struct {
	EventRequest eventRequestResp `json:"event_request"`
}

func (h *handler) newDecideResp(out eventrequest.DecideOutput) decideResp {
	return decideResp{EventRequest: newEventRequestResp(out.EventRequest, out.Summary)}
}
