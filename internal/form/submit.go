package form

import (
	"errors"
	"strings"

	"event-approval/internal/approval"
	"event-approval/internal/temporal"
)

var (
	ErrMissingTitle      = errors.New("title is required")
	ErrInvalidRange      = errors.New("end must not be before start")
	ErrInvalidImportance = errors.New("importance level must be between 1 and 5")
)

// Submit converts the form to canonical values. Temporal problems come back as
// *temporal.ValidationError with the field prefixed by the side ("start.time").
func (f FormState) Submit(zones temporal.ZoneProvider) (Submission, error) {
	if strings.TrimSpace(f.Title) == "" {
		return Submission{}, ErrMissingTitle
	}
	if f.ImportanceLevel < MinImportance || f.ImportanceLevel > MaxImportance {
		return Submission{}, ErrInvalidImportance
	}

	start, err := toCanonical(Start, f.Start, zones)
	if err != nil {
		return Submission{}, err
	}
	end, err := toCanonical(End, f.End, zones)
	if err != nil {
		return Submission{}, err
	}
	if cmp, ok := temporal.Compare(start, end); ok && cmp > 0 {
		return Submission{}, ErrInvalidRange
	}

	return Submission{
		Title:           strings.TrimSpace(f.Title),
		Description:     f.Description,
		Location:        f.Location,
		Notes:           f.Notes,
		Start:           start,
		End:             end,
		ImportanceLevel: f.ImportanceLevel,
		Approvers:       append([]approval.Approver(nil), f.Approvers...),
	}, nil
}

func toCanonical(side Side, local temporal.LocalFormDate, zones temporal.ZoneProvider) (temporal.Value, error) {
	v, err := temporal.ToCanonical(local, zones)
	if err != nil {
		var ve *temporal.ValidationError
		if errors.As(err, &ve) {
			return temporal.Value{}, &temporal.ValidationError{Field: side.String() + "." + ve.Field, Reason: ve.Reason}
		}
		return temporal.Value{}, err
	}
	return v, nil
}

// Load turns a stored submission back into editable form state.
func Load(s Submission) FormState {
	return FormState{
		Title:           s.Title,
		Description:     s.Description,
		Location:        s.Location,
		Notes:           s.Notes,
		Start:           temporal.FromCanonical(s.Start),
		End:             temporal.FromCanonical(s.End),
		ImportanceLevel: s.ImportanceLevel,
		Approvers:       append([]approval.Approver(nil), s.Approvers...),
	}
}
