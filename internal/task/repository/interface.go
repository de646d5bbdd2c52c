package repository

import (
	"context"

	"scheduling-intelligence/internal/model"
)

// Repository is the task store.
type Repository interface {
	// ListTasks returns the owner's tasks matching every non-empty filter.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// GetTask returns the task or a zero Task (ID == "") when it does not exist.
	GetTask(ctx context.Context, opt GetTaskOptions) (model.Task, error)

	// UpdateTasks writes the non-nil fields of every option in one transaction
	// and returns the updated tasks in order. Nothing is written when any task
	// is missing (ErrNotFound) or any write fails.
	UpdateTasks(ctx context.Context, opts []UpdateTaskOptions) ([]model.Task, error)
}
