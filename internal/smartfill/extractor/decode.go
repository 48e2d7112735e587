package extractor

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"event-approval/internal/approval"
	"event-approval/internal/form"
	"event-approval/internal/temporal"
	"event-approval/pkg/datemath"
)

// rawExtraction keeps every field raw so one bad field does not sink the rest.
type rawExtraction struct {
	Title           json.RawMessage `json:"title"`
	Description     json.RawMessage `json:"description"`
	Location        json.RawMessage `json:"location"`
	Notes           json.RawMessage `json:"notes"`
	Start           json.RawMessage `json:"start"`
	End             json.RawMessage `json:"end"`
	ImportanceLevel json.RawMessage `json:"importance_level"`
	Approvers       json.RawMessage `json:"approvers"`
}

// rawSide accepts both the form shape {date, time, all_day} and the canonical
// wire shape {date, date_time, time_zone}.
type rawSide struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	AllDay   bool   `json:"all_day"`
	DateTime string `json:"date_time"`
	TimeZone string `json:"time_zone"`
}

type rawApprover struct {
	UserID   string `json:"user_id"`
	Required *bool  `json:"required"`
}

// decode fails only when the payload is not a JSON object. Malformed fields are
// returned as absent.
func (e *implExtractor) decode(data []byte, now time.Time) (form.PartialEventRequest, error) {
	var raw rawExtraction
	if err := json.Unmarshal(data, &raw); err != nil {
		return form.PartialEventRequest{}, err
	}

	return form.PartialEventRequest{
		Title:           optString(raw.Title),
		Description:     optString(raw.Description),
		Location:        optString(raw.Location),
		Notes:           optString(raw.Notes),
		Start:           e.optValue(raw.Start, now),
		End:             e.optValue(raw.End, now),
		ImportanceLevel: optInt(raw.ImportanceLevel),
		Approvers:       optApprovers(raw.Approvers),
	}, nil
}

func absent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func optString(raw json.RawMessage) form.Optional[string] {
	if absent(raw) {
		return form.Optional[string]{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || strings.TrimSpace(s) == "" {
		return form.Optional[string]{}
	}
	return form.Some(strings.TrimSpace(s))
}

// optInt accepts a JSON integer or a numeric string.
func optInt(raw json.RawMessage) form.Optional[int] {
	if absent(raw) {
		return form.Optional[int]{}
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f != math.Trunc(f) {
			return form.Optional[int]{}
		}
		return form.Some(int(f))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return form.Some(n)
		}
	}
	return form.Optional[int]{}
}

// optApprovers accepts objects or bare user id strings. Unreadable entries are
// skipped; approvers are required unless stated otherwise.
func optApprovers(raw json.RawMessage) form.Optional[[]approval.Approver] {
	if absent(raw) {
		return form.Optional[[]approval.Approver]{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return form.Optional[[]approval.Approver]{}
	}

	var out []approval.Approver
	for _, item := range items {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, approval.Approver{UserID: id, Required: true})
			}
			continue
		}
		var a rawApprover
		if err := json.Unmarshal(item, &a); err != nil || strings.TrimSpace(a.UserID) == "" {
			continue
		}
		out = append(out, approval.Approver{
			UserID:   strings.TrimSpace(a.UserID),
			Required: a.Required == nil || *a.Required,
		})
	}
	if len(out) == 0 {
		return form.Optional[[]approval.Approver]{}
	}
	return form.Some(out)
}

// optValue reads one side. Timed values without a usable zone are anchored to
// the configured zone. A date with no time is all-day.
func (e *implExtractor) optValue(raw json.RawMessage, now time.Time) form.Optional[temporal.Value] {
	if absent(raw) {
		return form.Optional[temporal.Value]{}
	}
	var s rawSide
	if err := json.Unmarshal(raw, &s); err != nil {
		return form.Optional[temporal.Value]{}
	}

	if strings.TrimSpace(s.DateTime) != "" {
		if v, ok := temporal.DecodeLenient(raw); ok && v.Instant != nil && e.zones.CheckZone(v) == nil {
			return form.Some(v)
		}
		inst, err := temporal.ParseDateTime(s.DateTime)
		if err != nil {
			return form.Optional[temporal.Value]{}
		}
		return form.Some(temporal.Timed(inst.Date, inst.Time, e.zones.Zone()))
	}

	date, ok := e.resolveDate(s.Date, now)
	if !ok {
		return form.Optional[temporal.Value]{}
	}
	if s.AllDay || strings.TrimSpace(s.Time) == "" {
		return form.Some(temporal.AllDay(date))
	}
	tod, err := temporal.ParseTime(s.Time)
	if err != nil {
		return form.Some(temporal.AllDay(date))
	}
	return form.Some(temporal.Timed(date, tod, e.zones.Zone()))
}

// resolveDate reads an ISO date or a relative day phrase in the configured zone.
func (e *implExtractor) resolveDate(phrase string, now time.Time) (temporal.CalendarDate, bool) {
	if strings.TrimSpace(phrase) == "" {
		return temporal.CalendarDate{}, false
	}
	if d, err := temporal.ParseDate(phrase); err == nil {
		return d, true
	}
	p, err := datemath.NewParser(e.zones.Zone())
	if err != nil {
		return temporal.CalendarDate{}, false
	}
	res, err := p.Resolve(phrase, now)
	if err != nil {
		return temporal.CalendarDate{}, false
	}
	return temporal.DateOf(res.Day), true
}
