package http

import (
	"event-approval/internal/approval"
	"event-approval/internal/form"
	"event-approval/internal/smartfill"
	"event-approval/internal/temporal"
)

// --- Request DTOs ---

type localDate struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	AllDay bool   `json:"all_day"`
}

type approverDTO struct {
	UserID   string `json:"user_id"`
	Required bool   `json:"required"`
}

// formDTO is the editable form, shared by request and response.
type formDTO struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Location        string        `json:"location"`
	Notes           string        `json:"notes"`
	Start           localDate     `json:"start"`
	End             localDate     `json:"end"`
	ImportanceLevel int           `json:"importance_level"`
	Approvers       []approverDTO `json:"approvers"`
}

func (d formDTO) toForm() form.FormState {
	approvers := make([]approval.Approver, len(d.Approvers))
	for i, a := range d.Approvers {
		approvers[i] = approval.Approver{UserID: a.UserID, Required: a.Required}
	}
	return form.FormState{
		Title:           d.Title,
		Description:     d.Description,
		Location:        d.Location,
		Notes:           d.Notes,
		Start:           temporal.LocalFormDate{DateText: d.Start.Date, TimeText: d.Start.Time, AllDay: d.Start.AllDay},
		End:             temporal.LocalFormDate{DateText: d.End.Date, TimeText: d.End.Time, AllDay: d.End.AllDay},
		ImportanceLevel: d.ImportanceLevel,
		Approvers:       approvers,
	}
}

func newFormDTO(f form.FormState) formDTO {
	approvers := make([]approverDTO, len(f.Approvers))
	for i, a := range f.Approvers {
		approvers[i] = approverDTO{UserID: a.UserID, Required: a.Required}
	}
	return formDTO{
		Title:           f.Title,
		Description:     f.Description,
		Location:        f.Location,
		Notes:           f.Notes,
		Start:           localDate{Date: f.Start.DateText, Time: f.Start.TimeText, AllDay: f.Start.AllDay},
		End:             localDate{Date: f.End.DateText, Time: f.End.TimeText, AllDay: f.End.AllDay},
		ImportanceLevel: f.ImportanceLevel,
		Approvers:       approvers,
	}
}

type fillReq struct {
	Text    string  `json:"text" binding:"required"`
	Current formDTO `json:"current"`
}

func (r fillReq) toInput() smartfill.FillInput {
	return smartfill.FillInput{Text: r.Text, Current: r.Current.toForm()}
}

// --- Response DTOs ---

// extractedResp lists only what the extractor found.
type extractedResp struct {
	Title           *string         `json:"title,omitempty"`
	Description     *string         `json:"description,omitempty"`
	Location        *string         `json:"location,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	Start           *temporal.Value `json:"start,omitempty"`
	End             *temporal.Value `json:"end,omitempty"`
	ImportanceLevel *int            `json:"importance_level,omitempty"`
	Approvers       []approverDTO   `json:"approvers,omitempty"`
}

func ptr[T any](o form.Optional[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

func newExtractedResp(p form.PartialEventRequest) extractedResp {
	resp := extractedResp{
		Title:           ptr(p.Title),
		Description:     ptr(p.Description),
		Location:        ptr(p.Location),
		Notes:           ptr(p.Notes),
		Start:           ptr(p.Start),
		End:             ptr(p.End),
		ImportanceLevel: ptr(p.ImportanceLevel),
	}
	if approvers, ok := p.Approvers.Get(); ok {
		for _, a := range approvers {
			resp.Approvers = append(resp.Approvers, approverDTO{UserID: a.UserID, Required: a.Required})
		}
	}
	return resp
}

type fillResp struct {
	Form      formDTO       `json:"form"`
	Extracted extractedResp `json:"extracted"`
}

func (h *handler) newFillResp(out smartfill.FillOutput) fillResp {
	return fillResp{
		Form:      newFormDTO(out.Form),
		Extracted: newExtractedResp(out.Extracted),
	}
}
