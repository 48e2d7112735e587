package smartfill

import (
	"context"

	"event-approval/internal/form"
	"event-approval/internal/model"
)

// Extractor turns free text into a partial event request. Fields it cannot read
// are left absent.
type Extractor interface {
	Extract(ctx context.Context, input ExtractInput) (form.PartialEventRequest, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Fill(ctx context.Context, sc model.Scope, input FillInput) (FillOutput, error)
}
