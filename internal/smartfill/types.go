package smartfill

import "event-approval/internal/form"

// ExtractInput is the free text to interpret plus the form it will be merged into.
type ExtractInput struct {
	Text    string
	Current form.FormState
}

// --- UseCase Inputs ---

type FillInput struct {
	Text string
	// Current is the form as the client holds it when the result arrives.
	Current form.FormState
}

// --- UseCase Outputs ---

type FillOutput struct {
	Form      form.FormState
	Extracted form.PartialEventRequest
}
