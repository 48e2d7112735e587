package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-approval/internal/form"
	"event-approval/internal/smartfill"
	"event-approval/pkg/llmprovider"
)

var errEmptyResponse = errors.New(ErrMsgEmptyResponse)

// Extract asks the model for the event details in input.Text.
func (e *implExtractor) Extract(ctx context.Context, input smartfill.ExtractInput) (form.PartialEventRequest, error) {
	now := e.now()
	loc, err := e.zones.Location(e.zones.Zone())
	if err != nil {
		loc = time.UTC
	}

	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "user",
			Parts: []llmprovider.Part{{Text: SystemPromptExtract + buildTimeContext(now, loc)}},
		},
		Messages:    []llmprovider.Message{llmprovider.UserText(buildUserPrompt(input))},
		Temperature: ExtractTemperature,
		MaxTokens:   ExtractMaxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		return form.PartialEventRequest{}, fmt.Errorf("%s: %s: %w", LogPrefixExtract, ErrMsgLLMCallFailed, err)
	}

	text := stripCodeFence(resp.Text())
	if text == "" {
		e.l.Warnf(ctx, "%s: %s", LogPrefixExtract, ErrMsgEmptyResponse)
		return form.PartialEventRequest{}, errEmptyResponse
	}

	out, err := e.decode([]byte(text), now)
	if err != nil {
		e.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgJSONParseFailed, err)
		return form.PartialEventRequest{}, fmt.Errorf("%s: %w", ErrMsgJSONParseFailed, err)
	}

	e.l.Debugf(ctx, "%s: extracted via %s/%s", LogPrefixExtract, resp.ProviderName, resp.ModelName)
	return out, nil
}

func buildUserPrompt(input smartfill.ExtractInput) string {
	var sb strings.Builder
	sb.WriteString("Text:\n\"\"\"\n")
	sb.WriteString(strings.TrimSpace(input.Text))
	sb.WriteString("\n\"\"\"\n")

	if current := describeCurrent(input.Current); current != "" {
		sb.WriteString("\n")
		sb.WriteString(PromptCurrentValuesHeader)
		sb.WriteString(current)
	}
	return sb.String()
}

// describeCurrent lists the non-empty fields of f, one per line.
func describeCurrent(f form.FormState) string {
	var sb strings.Builder
	line := func(name, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", name, value)
		}
	}

	line("title", f.Title)
	line("description", f.Description)
	line("location", f.Location)
	line("notes", f.Notes)
	line("start.date", f.Start.DateText)
	line("start.time", f.Start.TimeText)
	line("end.date", f.End.DateText)
	line("end.time", f.End.TimeText)
	if f.Start.AllDay {
		line("all_day", "true")
	}
	if f.ImportanceLevel != 0 {
		line("importance_level", fmt.Sprint(f.ImportanceLevel))
	}
	if len(f.Approvers) > 0 {
		ids := make([]string, len(f.Approvers))
		for i, a := range f.Approvers {
			ids[i] = a.UserID
		}
		line("approvers", strings.Join(ids, ", "))
	}
	return sb.String()
}

// stripCodeFence removes a surrounding markdown code block (```json ... ```).
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	for _, fence := range []string{"```json", "```"} {
		if strings.HasPrefix(s, fence) {
			s = strings.TrimPrefix(s, fence)
			s = strings.TrimSuffix(s, "```")
			return strings.TrimSpace(s)
		}
	}
	return s
}
