package smartfill

import "errors"

var (
	ErrEmptyText        = errors.New("text is required")
	ErrTextTooLong      = errors.New("text is too long")
	ErrExtractionFailed = errors.New("could not extract event details")
)
