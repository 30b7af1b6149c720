package http

import (
	"errors"
	"net/http"

	"task-intent/internal/intent"
	pkgErrors "task-intent/pkg/errors"
)

var errInvalidNow = pkgErrors.NewHTTPError(http.StatusBadRequest, "now must be an RFC 3339 timestamp")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything not listed here is reported as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrEmptyInput),
		errors.Is(err, intent.ErrInputTooLong),
		errors.Is(err, intent.ErrTooManyInputs):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
