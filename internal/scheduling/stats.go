package scheduling

import "scheduling-intelligence/internal/model"

// AverageRealMinutesByType is the mean real duration per task type over
// completed tasks with a usable (non-negative) duration.
func AverageRealMinutesByType(completed []model.Task) map[string]float64 {
	sum := make(map[string]float64)
	count := make(map[string]int)
	for _, t := range completed {
		d, ok := t.RealDuration()
		if !ok {
			continue
		}
		sum[t.Type] += d.Minutes()
		count[t.Type]++
	}

	avg := make(map[string]float64, len(sum))
	for typ, s := range sum {
		avg[typ] = s / float64(count[typ])
	}
	return avg
}

// AverageRealMinutesByAssignee groups AverageRealMinutesByType per assignee.
// Unassigned tasks are ignored.
func AverageRealMinutesByAssignee(completed []model.Task) map[string]map[string]float64 {
	byAssignee := make(map[string][]model.Task)
	for _, t := range completed {
		if t.IsAssigned() {
			byAssignee[t.AssignedTo] = append(byAssignee[t.AssignedTo], t)
		}
	}

	out := make(map[string]map[string]float64, len(byAssignee))
	for assignee, tasks := range byAssignee {
		if avg := AverageRealMinutesByType(tasks); len(avg) > 0 {
			out[assignee] = avg
		}
	}
	return out
}
