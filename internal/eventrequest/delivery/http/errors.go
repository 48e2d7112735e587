package http

import (
	"errors"
	"net/http"

	"event-approval/internal/eventrequest"
	"event-approval/internal/temporal"
	pkgErrors "event-approval/pkg/errors"
)

var (
	errInvalidID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event request id")
	errInvalidBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errInvalidStatus  = pkgErrors.NewHTTPError(http.StatusBadRequest, eventrequest.ErrInvalidStatus.Error())
	errInvalidPageArg = pkgErrors.NewHTTPError(http.StatusBadRequest, "limit and offset must not be negative")
)

// fieldError is the detail payload of a temporal validation failure.
type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything not listed is an internal error.
func (h *handler) mapError(err error) error {
	var ve *temporal.ValidationError
	if errors.As(err, &ve) {
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, ve.Error()).
			WithDetails([]fieldError{{Field: ve.Field, Reason: ve.Reason}})
	}

	switch {
	case errors.Is(err, eventrequest.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, eventrequest.ErrForbidden),
		errors.Is(err, eventrequest.ErrNotApprover):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, eventrequest.ErrMissingTitle),
		errors.Is(err, eventrequest.ErrInvalidRange),
		errors.Is(err, eventrequest.ErrInvalidImportance),
		errors.Is(err, eventrequest.ErrInvalidApprovers):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, eventrequest.ErrInvalidDecision),
		errors.Is(err, eventrequest.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
