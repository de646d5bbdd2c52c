package http

import (
	"errors"

	"scheduling-intelligence/internal/prediction"
	pkgErrors "scheduling-intelligence/pkg/errors"
)

// mapError translates use case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, prediction.ErrLoadTasks):
		return pkgErrors.NewHTTPError(503, "task store unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
