package http

import (
	"errors"
	"net/http"

	"event-approval/internal/smartfill"
	pkgErrors "event-approval/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates smart fill errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, smartfill.ErrEmptyText),
		errors.Is(err, smartfill.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, smartfill.ErrExtractionFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, smartfill.ErrExtractionFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
