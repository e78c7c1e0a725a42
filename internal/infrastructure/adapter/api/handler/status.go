package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/parkspot-io/parkspot-api/internal/domain/error"
)

// statusCodeFor maps domain errors to HTTP status codes. A reserved slot is a
// plain client error; only duplicate registration surfaces as a conflict.
func statusCodeFor(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrSlotAlreadyReserved):
		return http.StatusBadRequest
	case domainerr.IsInsufficientBalanceError(err):
		return http.StatusBadRequest
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
