package prediction

import "errors"

var (
	ErrLoadTasks         = errors.New("failed to load tasks")
	ErrRemoteUnavailable = errors.New("prediction service unavailable")
)
