package usecase

import (
	"event-approval/internal/smartfill"
	"event-approval/pkg/log"
)

// MaxTextLength bounds the free text sent to the model, in runes.
const MaxTextLength = 4000

type implUseCase struct {
	l         log.Logger
	extractor smartfill.Extractor
}

// New creates a new smartfill UseCase implementation.
func New(l log.Logger, extractor smartfill.Extractor) smartfill.UseCase {
	return &implUseCase{
		l:         l,
		extractor: extractor,
	}
}
