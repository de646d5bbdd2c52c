package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scheduling-intelligence/internal/calendarcache"
	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/task"
	"scheduling-intelligence/internal/task/repository"
)

// ApplyRecommendation checks every referenced task exists, writes all task
// changes in one transaction, then refreshes the owner's cache and queues a
// calendar sync per task.
func (uc *implUseCase) ApplyRecommendation(ctx context.Context, sc model.Scope, input task.ApplyInput) (task.ApplyOutput, error) {
	if !input.Type.IsValid() {
		return task.ApplyOutput{}, fmt.Errorf("%w: %q", task.ErrUnsupportedChange, input.Type)
	}
	ids := taskIDs(input)
	if len(ids) == 0 {
		return task.ApplyOutput{}, fmt.Errorf("%w: no task ids", task.ErrInvalidChange)
	}

	current := make([]model.Task, 0, len(ids))
	for _, id := range ids {
		t, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: id, OwnerID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "task.ApplyRecommendation GetTask %s: %v", id, err)
			return task.ApplyOutput{}, fmt.Errorf("%w: %v", task.ErrLoadTasks, err)
		}
		if t.ID == "" {
			return task.ApplyOutput{}, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
		}
		current = append(current, t)
	}

	now := uc.now()
	updates, err := uc.buildUpdates(input, current, now)
	if err != nil {
		return task.ApplyOutput{}, err
	}

	for i := range updates {
		updates[i].OwnerID = sc.UserID
	}
	updated, err := uc.repo.UpdateTasks(ctx, updates)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ApplyOutput{}, fmt.Errorf("%w: %v", task.ErrTaskNotFound, err)
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.ApplyRecommendation UpdateTasks: %v", err)
		return task.ApplyOutput{}, fmt.Errorf("%w: %v", task.ErrUpdateTask, err)
	}

	out := task.ApplyOutput{Tasks: updated}
	session := uc.sessions.Get(sc.UserID)
	for _, t := range updated {
		ev := uc.engine.Normalize(t, now)
		session.Do(func(store *calendarcache.Store) {
			store.UpdateEvent(ev)
		})
		uc.dispatcher.EnqueueSync(ctx, t.ID, sc.UserID, model.SyncUpdate)
	}

	uc.l.Infof(ctx, "task.ApplyRecommendation: owner=%s type=%s tasks=%d", sc.UserID, input.Type, len(out.Tasks))
	return out, nil
}

// buildUpdates translates the suggested change into one update per task.
// tasks holds the current state, in the order of taskIDs(input).
func (uc *implUseCase) buildUpdates(input task.ApplyInput, tasks []model.Task, now time.Time) ([]repository.UpdateTaskOptions, error) {
	change := input.Change
	target := tasks[0]

	switch input.Type {
	case recommendation.TypeReschedule:
		if change.NewStart == nil {
			return nil, fmt.Errorf("%w: reschedule needs new_start", task.ErrInvalidChange)
		}
		start := *change.NewStart
		end := start.Add(time.Duration(target.Estimate(mergeFallbackMin)) * time.Minute)
		if change.NewEnd != nil {
			end = *change.NewEnd
		}
		if !end.After(start) {
			return nil, fmt.Errorf("%w: new_end must be after new_start", task.ErrInvalidChange)
		}
		return []repository.UpdateTaskOptions{{ID: target.ID, StartAt: &start, EndAt: &end}}, nil

	case recommendation.TypeReassign:
		if change.NewAssignee == "" {
			return nil, fmt.Errorf("%w: reassign needs new_assignee", task.ErrInvalidChange)
		}
		assignee := change.NewAssignee
		return []repository.UpdateTaskOptions{{ID: target.ID, AssignedTo: &assignee}}, nil

	case recommendation.TypeExtendTime:
		if change.NewEstimateMinutes <= 0 {
			return nil, fmt.Errorf("%w: extend_time needs a positive new_estimate_minutes", task.ErrInvalidChange)
		}
		estimate := change.NewEstimateMinutes
		return []repository.UpdateTaskOptions{{ID: target.ID, EstimatedMinutes: &estimate}}, nil

	case recommendation.TypePriorityChange:
		priority := change.NewPriority
		if !priority.IsValid() {
			return nil, fmt.Errorf("%w: unknown priority %q", task.ErrInvalidChange, priority)
		}
		return []repository.UpdateTaskOptions{{ID: target.ID, Priority: &priority}}, nil

	case recommendation.TypeMerge:
		cursor := uc.engine.Normalize(target, now).Start
		if change.Slot != nil && !change.Slot.Start.IsZero() {
			cursor = change.Slot.Start
		}
		updates := make([]repository.UpdateTaskOptions, 0, len(tasks))
		for _, t := range tasks {
			start := cursor
			end := start.Add(time.Duration(t.Estimate(mergeFallbackMin)) * time.Minute)
			updates = append(updates, repository.UpdateTaskOptions{ID: t.ID, StartAt: &start, EndAt: &end})
			cursor = end
		}
		return updates, nil

	default:
		return nil, fmt.Errorf("%w: %q", task.ErrUnsupportedChange, input.Type)
	}
}

// taskIDs prefers the ids inside the suggested change.
func taskIDs(input task.ApplyInput) []string {
	if input.Type == recommendation.TypeMerge {
		if len(input.Change.TaskIDs) > 0 {
			return input.Change.TaskIDs
		}
		return input.TaskIDs
	}
	if input.Change.TaskID != "" {
		return []string{input.Change.TaskID}
	}
	if len(input.TaskIDs) > 0 {
		return input.TaskIDs[:1]
	}
	return nil
}
