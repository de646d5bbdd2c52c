package repository

import (
	"time"

	"scheduling-intelligence/internal/model"
)

// ListTasksOptions filters a task listing. Ranges are half-open [From, To).
type ListTasksOptions struct {
	OwnerID       string
	Status        model.TaskStatus
	Type          string
	DueFrom       *time.Time
	DueTo         *time.Time
	ScheduledFrom *time.Time // COALESCE(start_at, due_date)
	ScheduledTo   *time.Time
	CompletedOnly bool // completed_at IS NOT NULL
	OrderBy       string
}

// GetTaskOptions identifies one task of one owner.
type GetTaskOptions struct {
	ID      string
	OwnerID string
}

// UpdateTaskOptions holds the fields to change. Nil fields are left untouched.
type UpdateTaskOptions struct {
	ID               string
	OwnerID          string
	Title            *string
	StartAt          *time.Time
	EndAt            *time.Time
	DueDate          *time.Time
	AssignedTo       *string
	Priority         *model.ManualPriority
	EstimatedMinutes *int
}

// IsEmpty reports whether no field would change.
func (o UpdateTaskOptions) IsEmpty() bool {
	return o.Title == nil && o.StartAt == nil && o.EndAt == nil && o.DueDate == nil &&
		o.AssignedTo == nil && o.Priority == nil && o.EstimatedMinutes == nil
}
