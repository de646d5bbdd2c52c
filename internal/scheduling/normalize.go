package scheduling

import (
	"time"

	"scheduling-intelligence/internal/model"
)

// Normalize resolves a task onto the calendar.
// start = startAt ?? dueDate ?? top of the current hour.
// end = endAt ?? start+estimate ?? start+fallback, forced to start+fallback unless end > start.
func (e Engine) Normalize(task model.Task, now time.Time) model.CalendarEvent {
	var start time.Time
	switch {
	case validInstant(task.StartAt):
		start = *task.StartAt
	case validInstant(task.DueDate):
		start = *task.DueDate
	default:
		start = e.days.TopOfHour(now)
	}

	var end time.Time
	switch {
	case validInstant(task.EndAt):
		end = *task.EndAt
	case task.EstimatedMinutes != nil:
		end = start.Add(time.Duration(*task.EstimatedMinutes) * time.Minute)
	default:
		end = start.Add(e.cfg.FallbackDuration)
	}
	if end.IsZero() || !end.After(start) {
		end = start.Add(e.cfg.FallbackDuration)
	}

	event := model.CalendarEvent{
		ID:           task.ID,
		Title:        task.Title,
		Start:        start,
		End:          end,
		Status:       task.Status,
		Type:         task.Type,
		SourceModule: task.SourceModule,
		SLAMinutes:   task.SLAMinutes,
		Priority:     task.Priority,
		AssignedTo:   task.AssignedTo,
		ClientID:     task.ClientID,
		ClientName:   task.ClientName,
		LeadName:     task.LeadName,
	}
	if validInstant(task.DueDate) {
		due := *task.DueDate
		event.DueDate = &due
	}
	return event
}

// NormalizeAll normalizes tasks in order.
func (e Engine) NormalizeAll(tasks []model.Task, now time.Time) []model.CalendarEvent {
	events := make([]model.CalendarEvent, 0, len(tasks))
	for _, t := range tasks {
		events = append(events, e.Normalize(t, now))
	}
	return events
}
