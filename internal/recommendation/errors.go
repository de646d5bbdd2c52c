package recommendation

import "errors"

var ErrLoadTasks = errors.New("failed to load tasks")
