package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUnsupportedChange = errors.New("unsupported change")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrLoadTasks         = errors.New("failed to load tasks")
	ErrUpdateTask        = errors.New("failed to update task")
	ErrInvalidChange     = errors.New("invalid suggested change")
)
