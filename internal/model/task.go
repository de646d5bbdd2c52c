package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// ManualPriority is the priority a user set by hand, distinct from the computed one.
type ManualPriority string

const (
	ManualPriorityLow    ManualPriority = "LOW"
	ManualPriorityMedium ManualPriority = "MEDIUM"
	ManualPriorityHigh   ManualPriority = "HIGH"
)

// IsValid reports whether p is one of the known manual priorities.
func (p ManualPriority) IsValid() bool {
	switch p {
	case ManualPriorityLow, ManualPriorityMedium, ManualPriorityHigh:
		return true
	}
	return false
}

// Well-known task types and source modules that the scoring rules look at.
const (
	TaskTypeCall    = "CALL"
	TaskTypeMeeting = "MEETING"

	SourceModuleSale = "SALE"
)

// Task is a task record as read from the task store.
// Optional instants are nil when absent; empty strings mean "not set".
type Task struct {
	ID               string
	OwnerID          string
	Title            string
	Status           TaskStatus
	Type             string
	DueDate          *time.Time
	StartAt          *time.Time
	EndAt            *time.Time
	EstimatedMinutes *int
	AssignedTo       string
	ClientID         string
	ClientName       string
	LeadName         string
	SLAMinutes       *int
	SourceModule     string
	Priority         ManualPriority
	CreatedAt        time.Time
	CompletedAt      *time.Time
	StartedAt        *time.Time
}

// RealDuration is completedAt - (startedAt ?? createdAt). ok is false when the
// task is not completed or the duration is negative.
func (t Task) RealDuration() (d time.Duration, ok bool) {
	if t.CompletedAt == nil || t.CompletedAt.IsZero() {
		return 0, false
	}
	from := t.CreatedAt
	if t.StartedAt != nil && !t.StartedAt.IsZero() {
		from = *t.StartedAt
	}
	d = t.CompletedAt.Sub(from)
	if d < 0 {
		return 0, false
	}
	return d, true
}

// Estimate returns the estimated minutes, or fallback when unset or not positive.
func (t Task) Estimate(fallback int) int {
	if t.EstimatedMinutes != nil && *t.EstimatedMinutes > 0 {
		return *t.EstimatedMinutes
	}
	return fallback
}

// IsAssigned reports whether the task has an assignee.
func (t Task) IsAssigned() bool {
	return t.AssignedTo != ""
}
