package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"event-approval/internal/form"
	"event-approval/internal/model"
	"event-approval/internal/smartfill"
)

// Fill extracts event details from free text and merges them into the current
// form. The user's own entries always win. On failure the form is untouched.
func (uc *implUseCase) Fill(ctx context.Context, sc model.Scope, input smartfill.FillInput) (smartfill.FillOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return smartfill.FillOutput{}, smartfill.ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return smartfill.FillOutput{}, smartfill.ErrTextTooLong
	}

	extracted, err := uc.extractor.Extract(ctx, smartfill.ExtractInput{Text: text, Current: input.Current})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Fill Extract user=%s: %v", sc.UserID, err)
		return smartfill.FillOutput{}, fmt.Errorf("%w: %v", smartfill.ErrExtractionFailed, err)
	}

	return smartfill.FillOutput{
		Form:      form.Merge(input.Current, extracted),
		Extracted: extracted,
	}, nil
}
