package calsync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/task/repository"
	"scheduling-intelligence/pkg/gcalendar"
)

// eventNamespace is the RFC 4122 URL namespace.
var eventNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

// EventID derives the calendar event id of a task. Hex digits are valid
// base32hex, so the id is accepted by Google Calendar as is.
func EventID(taskID string) string {
	return strings.ReplaceAll(uuid.NewSHA1(eventNamespace, []byte("task:"+taskID)).String(), "-", "")
}

// EnqueueSync never blocks.
func (d *implDispatcher) EnqueueSync(ctx context.Context, taskID, ownerID string, op model.SyncOperation) {
	job := Job{TaskID: taskID, OwnerID: ownerID, Op: op, EnqueuedAt: d.now()}
	select {
	case d.queue <- job:
		d.l.Debugf(ctx, "calsync.EnqueueSync: queued %s task=%s", op, taskID)
	default:
		d.l.Warnf(ctx, "calsync.EnqueueSync: queue full, dropping %s task=%s owner=%s", op, taskID, ownerID)
	}
}

// Start launches cfg.Workers workers.
func (d *implDispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	d.l.Infof(ctx, "calsync.Start: %d workers, queue=%d, rate=%d/min", d.cfg.Workers, d.cfg.QueueSize, d.cfg.RateLimitPerMin)
}

// Stop cancels the workers and waits for them.
func (d *implDispatcher) Stop() {
	d.stopOnce.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
		d.wg.Wait()
	})
}

func (d *implDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-d.queue:
			d.syncWithRetry(ctx, job)
		}
	}
}

// syncWithRetry retries with linear backoff and logs the final failure.
func (d *implDispatcher) syncWithRetry(ctx context.Context, job Job) {
	for attempt := 1; attempt <= d.cfg.RetryAttempts; attempt++ {
		if err := d.limiter.Wait(ctx); err != nil {
			return
		}
		if err := d.owners.Wait(ctx, job.OwnerID); err != nil {
			return
		}

		err := d.sync(ctx, job)
		if err == nil {
			d.l.Infof(ctx, "calsync: %s task=%s synced", job.Op, job.TaskID)
			return
		}

		d.l.Warnf(ctx, "calsync: %s task=%s failed (attempt %d/%d): %v", job.Op, job.TaskID, attempt, d.cfg.RetryAttempts, err)
		if attempt == d.cfg.RetryAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.cfg.RetryDelay * time.Duration(attempt)):
		}
	}

	d.l.Errorf(ctx, "calsync: giving up on %s task=%s owner=%s after %d attempts", job.Op, job.TaskID, job.OwnerID, d.cfg.RetryAttempts)
}

func (d *implDispatcher) sync(ctx context.Context, job Job) error {
	eventID := EventID(job.TaskID)

	if job.Op == model.SyncDelete {
		return d.deleteEvent(ctx, eventID)
	}

	t, err := d.tasks.GetTask(ctx, repository.GetTaskOptions{ID: job.TaskID, OwnerID: job.OwnerID})
	if err != nil {
		return fmt.Errorf("load task: %w", err)
	}
	if t.ID == "" || t.Status == model.TaskStatusCancelled {
		return d.deleteEvent(ctx, eventID)
	}

	in := d.eventInput(eventID, t)
	switch job.Op {
	case model.SyncCreate:
		_, err = d.calendar.InsertEvent(ctx, in)
		if gcalendar.IsConflict(err) {
			_, err = d.calendar.PatchEvent(ctx, in)
		}
	case model.SyncUpdate:
		_, err = d.calendar.PatchEvent(ctx, in)
		if gcalendar.IsNotFound(err) {
			_, err = d.calendar.InsertEvent(ctx, in)
		}
	default:
		return fmt.Errorf("unknown sync operation %q", job.Op)
	}
	return err
}

func (d *implDispatcher) deleteEvent(ctx context.Context, eventID string) error {
	err := d.calendar.DeleteEvent(ctx, d.cfg.CalendarID, eventID)
	if err != nil && !gcalendar.IsNotFound(err) {
		return err
	}
	return nil
}

func (d *implDispatcher) eventInput(eventID string, t model.Task) gcalendar.EventInput {
	ev := d.norm.Normalize(t, d.now())
	return gcalendar.EventInput{
		CalendarID:  d.cfg.CalendarID,
		ID:          eventID,
		Summary:     t.Title,
		Description: describe(t),
		StartTime:   ev.Start,
		EndTime:     ev.End,
		Timezone:    d.cfg.Timezone,
	}
}

func describe(t model.Task) string {
	var b strings.Builder
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	line("Type", t.Type)
	line("Priority", string(t.Priority))
	line("Client", t.ClientName)
	line("Lead", t.LeadName)
	line("Assignee", t.AssignedTo)
	if t.DueDate != nil {
		line("Due", t.DueDate.Format(time.RFC3339))
	}
	return strings.TrimSpace(b.String())
}
