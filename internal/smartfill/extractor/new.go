package extractor

import (
	"context"
	"time"

	"event-approval/internal/smartfill"
	"event-approval/internal/temporal"
	"event-approval/pkg/llmprovider"
	"event-approval/pkg/log"
)

// Generator is the slice of the LLM layer the extractor needs.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implExtractor struct {
	l     log.Logger
	llm   Generator
	zones *temporal.ZoneRegistry
	now   func() time.Time
}

// New creates an LLM-backed smartfill.Extractor. Timed values it returns are
// anchored to zones.Zone().
func New(l log.Logger, llm Generator, zones *temporal.ZoneRegistry) smartfill.Extractor {
	return &implExtractor{
		l:     l,
		llm:   llm,
		zones: zones,
		now:   time.Now,
	}
}
