package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"scheduling-intelligence/internal/model"
	repo "scheduling-intelligence/internal/task/repository"
)

const taskColumns = `t.id, t.owner_id, t.title, t.status, t.type, t.due_date, t.start_at, t.end_at,
	t.estimated_minutes, t.assigned_to, t.client_id, c.name, t.lead_name, t.sla_minutes,
	t.source_module, t.priority, t.created_at, t.completed_at, t.started_at`

const taskFrom = `tasks t LEFT JOIN clients c ON c.id = t.client_id`

type rowScanner interface {
	Scan(dest ...any) error
}

// ListTasks returns the owner's tasks matching the filters.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM %s %s`, taskColumns, taskFrom, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// GetTask returns a zero Task when not found.
func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.Task, error) {
	mods, args := r.buildGetQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIMIT 1`, taskColumns, taskFrom, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// UpdateTasks applies every update inside one transaction, then re-reads the rows.
func (r *implRepository) UpdateTasks(ctx context.Context, opts []repo.UpdateTaskOptions) ([]model.Task, error) {
	for _, opt := range opts {
		if opt.IsEmpty() {
			return nil, repo.ErrNothingToUpdate
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("UpdateTasks"), err)
		return nil, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	now := time.Now()
	for _, opt := range opts {
		sets, args := r.buildUpdateQuery(opt, now)
		query := fmt.Sprintf(`UPDATE tasks t SET %s RETURNING t.id`, sets)

		var id string
		err := tx.QueryRowContext(ctx, query, args...).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", repo.ErrNotFound, opt.ID)
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %s: %v", r.dsn("UpdateTasks"), opt.ID, err)
			return nil, repo.ErrFailedToUpdate
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("UpdateTasks"), err)
		return nil, repo.ErrFailedToUpdate
	}

	out := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		t, err := r.GetTask(ctx, repo.GetTaskOptions{ID: opt.ID, OwnerID: opt.OwnerID})
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                                model.Task
		status, priority                 string
		dueDate, startAt, endAt          sql.NullTime
		completedAt, startedAt           sql.NullTime
		estimated, sla                   sql.NullInt64
		assignedTo, clientID, clientName sql.NullString
		leadName, sourceModule, taskType sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &status, &taskType, &dueDate, &startAt, &endAt,
		&estimated, &assignedTo, &clientID, &clientName, &leadName, &sla,
		&sourceModule, &priority, &t.CreatedAt, &completedAt, &startedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Status = model.TaskStatus(status)
	t.Priority = model.ManualPriority(priority)
	t.Type = taskType.String
	t.DueDate = nullTime(dueDate)
	t.StartAt = nullTime(startAt)
	t.EndAt = nullTime(endAt)
	t.CompletedAt = nullTime(completedAt)
	t.StartedAt = nullTime(startedAt)
	t.EstimatedMinutes = nullInt(estimated)
	t.SLAMinutes = nullInt(sla)
	t.AssignedTo = assignedTo.String
	t.ClientID = clientID.String
	t.ClientName = clientName.String
	t.LeadName = leadName.String
	t.SourceModule = sourceModule.String
	return t, nil
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
