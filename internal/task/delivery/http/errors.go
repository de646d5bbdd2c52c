package http

import (
	"errors"

	"scheduling-intelligence/internal/task"
	pkgErrors "scheduling-intelligence/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidRange):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, task.ErrLoadTasks):
		return pkgErrors.NewHTTPError(503, "task store unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
