package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"event-approval/internal/form"
	"event-approval/internal/model"
	"event-approval/internal/smartfill"
	"event-approval/internal/smartfill/usecase"
	"event-approval/internal/temporal"
	"event-approval/pkg/log"
)

type mockExtractor struct {
	extractFn func(ctx context.Context, input smartfill.ExtractInput) (form.PartialEventRequest, error)
	calls     int
}

func (m *mockExtractor) Extract(ctx context.Context, input smartfill.ExtractInput) (form.PartialEventRequest, error) {
	m.calls++
	return m.extractFn(ctx, input)
}

var sc = model.Scope{UserID: "u1"}

func TestFill(t *testing.T) {
	day := temporal.CalendarDate{Year: 2025, Month: 7, Day: 1}
	ext := &mockExtractor{
		extractFn: func(ctx context.Context, input smartfill.ExtractInput) (form.PartialEventRequest, error) {
			if input.Text != "lunch with the team at 12" {
				t.Errorf("text not trimmed: %q", input.Text)
			}
			return form.PartialEventRequest{
				Title: form.Some("Team lunch"),
				Notes: form.Some("Pho place"),
				Start: form.Some(temporal.Timed(day, temporal.TimeOfDay{Hour: 12}, "UTC")),
			}, nil
		},
	}
	uc := usecase.New(log.NewNop(), ext)

	current := form.FormState{Title: "Lunch"}
	current.Start.DateText = "2025-07-02"

	out, err := uc.Fill(context.Background(), sc, smartfill.FillInput{Text: "  lunch with the team at 12 ", Current: current})
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	if out.Form.Title != "Lunch" {
		t.Errorf("user title overwritten: %q", out.Form.Title)
	}
	if out.Form.Notes != "Pho place" {
		t.Errorf("Notes = %q", out.Form.Notes)
	}
	if out.Form.Start.DateText != "2025-07-02" || out.Form.Start.TimeText != "12:00" {
		t.Errorf("Start = %+v", out.Form.Start)
	}
	if v, _ := out.Extracted.Title.Get(); v != "Team lunch" {
		t.Errorf("Extracted.Title = %q", v)
	}
	if current.Notes != "" {
		t.Error("input form was mutated")
	}
}

func TestFillErrors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		extractFn func(ctx context.Context, input smartfill.ExtractInput) (form.PartialEventRequest, error)
		wantErr   error
		wantCalls int
	}{
		{name: "blank text", text: " \n ", wantErr: smartfill.ErrEmptyText},
		{name: "too long", text: strings.Repeat("a", usecase.MaxTextLength+1), wantErr: smartfill.ErrTextTooLong},
		{
			name: "extractor failure",
			text: "meeting",
			extractFn: func(ctx context.Context, input smartfill.ExtractInput) (form.PartialEventRequest, error) {
				return form.PartialEventRequest{}, errors.New("all providers failed")
			},
			wantErr:   smartfill.ErrExtractionFailed,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := &mockExtractor{extractFn: tt.extractFn}
			uc := usecase.New(log.NewNop(), ext)

			out, err := uc.Fill(context.Background(), sc, smartfill.FillInput{Text: tt.text, Current: form.FormState{Title: "keep"}})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Fill() error = %v, want %v", err, tt.wantErr)
			}
			if out.Form.Title != "" {
				t.Errorf("failed fill returned a form: %+v", out.Form)
			}
			if ext.calls != tt.wantCalls {
				t.Errorf("extractor calls = %d, want %d", ext.calls, tt.wantCalls)
			}
		})
	}
}
