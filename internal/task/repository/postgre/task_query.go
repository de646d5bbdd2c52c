package postgre

import (
	"fmt"
	"strings"
	"time"

	repo "scheduling-intelligence/internal/task/repository"
)

// buildGetQuery builds the WHERE clause for GetTask.
func (r *implRepository) buildGetQuery(opt repo.GetTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("t.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.OwnerID != "" {
		conditions = append(conditions, fmt.Sprintf("t.owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE + ORDER BY for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	add := func(cond string, arg any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, arg)
		idx++
	}

	if opt.OwnerID != "" {
		add("t.owner_id = $%d", opt.OwnerID)
	}
	if opt.Status != "" {
		add("t.status = $%d", string(opt.Status))
	}
	if opt.Type != "" {
		add("t.type = $%d", opt.Type)
	}
	if opt.DueFrom != nil {
		add("t.due_date >= $%d", *opt.DueFrom)
	}
	if opt.DueTo != nil {
		add("t.due_date < $%d", *opt.DueTo)
	}
	if opt.ScheduledFrom != nil {
		add("COALESCE(t.start_at, t.due_date) >= $%d", *opt.ScheduledFrom)
	}
	if opt.ScheduledTo != nil {
		add("COALESCE(t.start_at, t.due_date) < $%d", *opt.ScheduledTo)
	}
	if opt.CompletedOnly {
		conditions = append(conditions, "t.completed_at IS NOT NULL")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "t.due_date ASC NULLS LAST, t.id ASC"
	}
	parts = append(parts, "ORDER BY "+orderBy)

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds "SET ... WHERE ..." for UpdateTasks; only non-nil fields are written.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions, now time.Time) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	set := func(column string, arg any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, arg)
		idx++
	}

	if opt.Title != nil {
		set("title", *opt.Title)
	}
	if opt.StartAt != nil {
		set("start_at", *opt.StartAt)
	}
	if opt.EndAt != nil {
		set("end_at", *opt.EndAt)
	}
	if opt.DueDate != nil {
		set("due_date", *opt.DueDate)
	}
	if opt.AssignedTo != nil {
		set("assigned_to", *opt.AssignedTo)
	}
	if opt.Priority != nil {
		set("priority", string(*opt.Priority))
	}
	if opt.EstimatedMinutes != nil {
		set("estimated_minutes", *opt.EstimatedMinutes)
	}
	set("updated_at", now)

	where := fmt.Sprintf("t.id = $%d", idx)
	args = append(args, opt.ID)
	idx++
	if opt.OwnerID != "" {
		where += fmt.Sprintf(" AND t.owner_id = $%d", idx)
		args = append(args, opt.OwnerID)
	}

	return strings.Join(sets, ", ") + " WHERE " + where, args
}
