package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/scheduling"
)

const (
	extendPerPrediction   = 5
	extendFactor          = 1.2
	reassignCutoff        = 0.85
	rescheduleHour        = 9
	rescheduleFallback    = 60
	mergeConfidence       = 0.55
	maxReassignConfidence = 0.9
)

type engineInput struct {
	pending     []model.Task
	completed   []model.Task
	predictions []prediction.Prediction
	nextID      func() string
}

// compute runs every rule over already loaded data. It does no I/O.
func (uc *implUseCase) compute(in engineInput) []recommendation.Recommendation {
	byID := make(map[string]model.Task, len(in.pending))
	for _, t := range in.pending {
		byID[t.ID] = t
	}
	avgByType := scheduling.AverageRealMinutesByType(in.completed)

	var out []recommendation.Recommendation
	out = append(out, uc.extendTime(in.predictions, byID, avgByType)...)
	out = append(out, uc.priorityChange(in.predictions, byID)...)
	out = append(out, uc.reschedule(in.predictions, byID)...)
	out = append(out, uc.reassign(in.pending, scheduling.AverageRealMinutesByAssignee(in.completed))...)
	out = append(out, uc.merge(in.pending)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > uc.cfg.MaxRecommendations {
		out = out[:uc.cfg.MaxRecommendations]
	}
	for i := range out {
		out[i].ID = in.nextID()
	}
	return out
}

func (uc *implUseCase) extendTime(predictions []prediction.Prediction, byID map[string]model.Task, avgByType map[string]float64) []recommendation.Recommendation {
	seen := make(map[string]bool)
	var out []recommendation.Recommendation
	for _, p := range predictions {
		if p.ImpactLevel != prediction.ImpactHigh {
			continue
		}
		if p.Type != prediction.TypeDelayProbability && p.Type != prediction.TypeTypeOverrun {
			continue
		}

		affected := p.AffectedTasks
		if len(affected) > extendPerPrediction {
			affected = affected[:extendPerPrediction]
		}
		for _, a := range affected {
			t, ok := byID[a.ID]
			if !ok || seen[t.ID] {
				continue
			}
			avg, ok := avgByType[t.Type]
			current := t.Estimate(uc.cfg.FallbackMinutes)
			if !ok || avg <= float64(current) {
				continue
			}
			proposed := int(math.Ceil(avg * extendFactor))
			if proposed <= current {
				continue
			}
			seen[t.ID] = true

			out = append(out, recommendation.Recommendation{
				Type:  recommendation.TypeExtendTime,
				Title: fmt.Sprintf("Extend estimate for %q", t.Title),
				Explanation: fmt.Sprintf("%s tasks take %.0f min on average but this one is estimated at %d min.",
					typeLabel(t.Type), avg, current),
				ExpectedBenefit: fmt.Sprintf("A %d min estimate keeps the plan realistic and avoids knock-on delays.", proposed),
				Confidence:      p.Probability,
				Difficulty:      recommendation.DifficultyLow,
				SuggestedChange: recommendation.SuggestedChange{
					TaskID:             t.ID,
					NewEstimateMinutes: proposed,
				},
				AffectedTaskTitles: []string{t.Title},
			})
		}
	}
	return out
}

func (uc *implUseCase) priorityChange(predictions []prediction.Prediction, byID map[string]model.Task) []recommendation.Recommendation {
	seen := make(map[string]bool)
	var out []recommendation.Recommendation
	for _, p := range predictions {
		if p.Type != prediction.TypeDeadlineBreach || len(p.AffectedTasks) == 0 {
			continue
		}
		t, ok := byID[p.AffectedTasks[0].ID]
		if !ok || seen[t.ID] || t.Priority == model.ManualPriorityHigh {
			continue
		}
		seen[t.ID] = true

		out = append(out, recommendation.Recommendation{
			Type:            recommendation.TypePriorityChange,
			Title:           fmt.Sprintf("Raise priority of %q", t.Title),
			Explanation:     fmt.Sprintf("%q is due soon and tasks of its type tend to run late.", t.Title),
			ExpectedBenefit: "Handling it first lowers the chance of missing the deadline.",
			Confidence:      p.Probability,
			Difficulty:      recommendation.DifficultyLow,
			SuggestedChange: recommendation.SuggestedChange{
				TaskID:      t.ID,
				NewPriority: model.ManualPriorityHigh,
			},
			AffectedTaskTitles: []string{t.Title},
		})
	}
	return out
}

// reschedule moves the least critical, earliest due task of a saturated day
// to 09:00 on the following day.
func (uc *implUseCase) reschedule(predictions []prediction.Prediction, byID map[string]model.Task) []recommendation.Recommendation {
	var out []recommendation.Recommendation
	for _, p := range predictions {
		if p.Type != prediction.TypeDaySaturation {
			continue
		}
		excess := p.TotalMinutes - float64(uc.cfg.DayCapacityMin)
		if excess <= 0 {
			continue
		}
		day, err := uc.days.ParseDayKey(p.Day)
		if err != nil {
			continue
		}

		var candidates []model.Task
		for _, a := range p.AffectedTasks {
			if t, ok := byID[a.ID]; ok {
				candidates = append(candidates, t)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			hi, hj := candidates[i].Priority == model.ManualPriorityHigh, candidates[j].Priority == model.ManualPriorityHigh
			if hi != hj {
				return !hi
			}
			return dueBefore(candidates[i], candidates[j])
		})
		t := candidates[0]

		start := uc.days.AtHour(uc.days.NextDay(day), rescheduleHour)
		end := start.Add(time.Duration(t.Estimate(rescheduleFallback)) * time.Minute)

		out = append(out, recommendation.Recommendation{
			Type:            recommendation.TypeReschedule,
			Title:           fmt.Sprintf("Move %q to %s", t.Title, uc.days.DayKey(start)),
			Explanation:     fmt.Sprintf("%s is booked for %.0f min, %.0f min over capacity.", p.Day, math.Ceil(p.TotalMinutes), math.Ceil(excess)),
			ExpectedBenefit: fmt.Sprintf("Frees up to %d min on %s.", t.Estimate(rescheduleFallback), p.Day),
			Confidence:      p.Probability,
			Difficulty:      recommendation.DifficultyMedium,
			SuggestedChange: recommendation.SuggestedChange{
				TaskID:   t.ID,
				NewStart: &start,
				NewEnd:   &end,
			},
			AffectedTaskTitles: []string{t.Title},
		})
	}
	return out
}

// reassign proposes the fastest other assignee for the task's type when their
// average is below 85% of the current assignee's.
func (uc *implUseCase) reassign(pending []model.Task, byAssignee map[string]map[string]float64) []recommendation.Recommendation {
	var out []recommendation.Recommendation
	for _, t := range pending {
		if !t.IsAssigned() {
			continue
		}
		current, ok := byAssignee[t.AssignedTo][t.Type]
		if !ok || current <= 0 {
			continue
		}

		best, bestAvg := "", math.Inf(1)
		for _, assignee := range sortedKeys(byAssignee) {
			if assignee == t.AssignedTo {
				continue
			}
			avg, ok := byAssignee[assignee][t.Type]
			if ok && avg < bestAvg {
				best, bestAvg = assignee, avg
			}
		}
		if best == "" || bestAvg >= current*reassignCutoff {
			continue
		}

		saving := 1 - bestAvg/current
		out = append(out, recommendation.Recommendation{
			Type:  recommendation.TypeReassign,
			Title: fmt.Sprintf("Reassign %q to %s", t.Title, best),
			Explanation: fmt.Sprintf("%s finishes %s tasks in %.0f min on average, %s takes %.0f min.",
				best, typeLabel(t.Type), bestAvg, t.AssignedTo, current),
			ExpectedBenefit:    fmt.Sprintf("About %.0f%% faster completion.", saving*100),
			Confidence:         math.Min(maxReassignConfidence, 0.5+saving),
			Difficulty:         recommendation.DifficultyMedium,
			SuggestedChange:    recommendation.SuggestedChange{TaskID: t.ID, NewAssignee: best},
			AffectedTaskTitles: []string{t.Title},
		})
	}
	return out
}

// merge batches same-type tasks due on the same day.
func (uc *implUseCase) merge(pending []model.Task) []recommendation.Recommendation {
	groups := make(map[string]map[string][]model.Task)
	for _, t := range pending {
		if t.DueDate == nil || t.DueDate.IsZero() {
			continue
		}
		day := uc.days.DayKey(*t.DueDate)
		if groups[day] == nil {
			groups[day] = make(map[string][]model.Task)
		}
		groups[day][t.Type] = append(groups[day][t.Type], t)
	}

	var out []recommendation.Recommendation
	for _, day := range sortedKeys(groups) {
		for _, typ := range sortedKeys(groups[day]) {
			tasks := groups[day][typ]
			if len(tasks) < 2 {
				continue
			}
			sort.SliceStable(tasks, func(i, j int) bool {
				return plannedStart(tasks[i]).Before(plannedStart(tasks[j]))
			})

			ids := make([]string, 0, len(tasks))
			titles := make([]string, 0, len(tasks))
			var total int
			for _, t := range tasks {
				ids = append(ids, t.ID)
				titles = append(titles, t.Title)
				total += t.Estimate(uc.cfg.FallbackMinutes)
			}
			start := plannedStart(tasks[0])
			slot := &recommendation.Slot{Start: start, End: start.Add(time.Duration(total) * time.Minute)}

			out = append(out, recommendation.Recommendation{
				Type:            recommendation.TypeMerge,
				Title:           fmt.Sprintf("Batch %d %s tasks on %s", len(tasks), typeLabel(typ), day),
				Explanation:     fmt.Sprintf("%s are all %s tasks due on %s.", strings.Join(titles, ", "), typeLabel(typ), day),
				ExpectedBenefit: "Handling them back to back cuts context switching.",
				Confidence:      mergeConfidence,
				Difficulty:      recommendation.DifficultyLow,
				SuggestedChange: recommendation.SuggestedChange{
					TaskIDs: ids,
					Slot:    slot,
				},
				AffectedTaskTitles: titles,
			})
		}
	}
	return out
}

func plannedStart(t model.Task) time.Time {
	if t.StartAt != nil && !t.StartAt.IsZero() {
		return *t.StartAt
	}
	if t.DueDate != nil {
		return *t.DueDate
	}
	return time.Time{}
}

// dueBefore orders tasks without a due date last.
func dueBefore(a, b model.Task) bool {
	switch {
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	default:
		return a.DueDate.Before(*b.DueDate)
	}
}

func typeLabel(typ string) string {
	if typ == "" {
		return "untyped"
	}
	return strings.ToUpper(typ)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
