package calsync

import (
	"context"
	"time"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/task/repository"
	"scheduling-intelligence/pkg/gcalendar"
)

// Dispatcher mirrors task changes to an external calendar in the background.
type Dispatcher interface {
	// EnqueueSync schedules a sync and returns immediately. It never fails:
	// a full queue drops the job with a warning.
	EnqueueSync(ctx context.Context, taskID, ownerID string, op model.SyncOperation)

	// Start launches the workers. They stop when ctx is done or Stop is called.
	Start(ctx context.Context)

	// Stop signals the workers and waits for in-flight jobs to finish.
	Stop()
}

// CalendarWriter is the calendar API surface the workers use. *gcalendar.Client implements it.
type CalendarWriter interface {
	InsertEvent(ctx context.Context, in gcalendar.EventInput) (*gcalendar.Event, error)
	PatchEvent(ctx context.Context, in gcalendar.EventInput) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// TaskReader loads the current task state for a job.
type TaskReader interface {
	GetTask(ctx context.Context, opt repository.GetTaskOptions) (model.Task, error)
}

// Normalizer resolves a task to calendar times.
type Normalizer interface {
	Normalize(task model.Task, now time.Time) model.CalendarEvent
}
