package http

import (
	"errors"

	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/task"
	pkgErrors "scheduling-intelligence/pkg/errors"
)

var errInvalidType = pkgErrors.NewHTTPError(400, "type must be one of reschedule, reassign, extend_time, merge, priority_change")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, recommendation.ErrLoadTasks), errors.Is(err, task.ErrLoadTasks), errors.Is(err, task.ErrUpdateTask):
		return pkgErrors.NewHTTPError(503, "task store unavailable")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, task.ErrUnsupportedChange), errors.Is(err, task.ErrInvalidChange):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
