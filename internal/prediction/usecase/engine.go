package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/scheduling"
)

const (
	overrunRatio        = 1.2
	deadlineHorizon     = 48 * time.Hour
	deadlineThreshold   = 0.5
	delayThreshold      = 0.5
	clientCancellations = 2
	clientRiskP         = 0.6
)

type engineInput struct {
	now       time.Time
	pending   []model.Task
	completed []model.Task
	cancelled []model.Task
}

// compute runs every rule over already loaded tasks. It does no I/O.
func (uc *implUseCase) compute(in engineInput) []prediction.Prediction {
	avgByType := scheduling.AverageRealMinutesByType(in.completed)

	var out []prediction.Prediction
	if p, ok := uc.delayProbability(in, avgByType); ok {
		out = append(out, p)
	}
	out = append(out, uc.typeOverrun(in, avgByType)...)
	out = append(out, uc.daySaturation(in, avgByType)...)
	out = append(out, uc.clientRisk(in)...)
	out = append(out, uc.deadlineBreach(in, avgByType)...)

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].ImpactLevel.Rank(), out[j].ImpactLevel.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].Probability > out[j].Probability
	})
	return out
}

// taskRatio is the type's historical average over the task's own estimate.
func (uc *implUseCase) taskRatio(t model.Task, avgByType map[string]float64) (float64, bool) {
	avg, ok := avgByType[t.Type]
	if !ok {
		return 0, false
	}
	return avg / float64(t.Estimate(uc.cfg.FallbackMinutes)), true
}

func (uc *implUseCase) delayProbability(in engineInput, avgByType map[string]float64) (prediction.Prediction, bool) {
	var affected []prediction.AffectedTask
	var sum float64
	for _, t := range in.pending {
		ratio, ok := uc.taskRatio(t, avgByType)
		if !ok || ratio < overrunRatio {
			continue
		}
		p := math.Min(1, 0.3+(ratio-1)*0.4)
		if p < delayThreshold {
			continue
		}
		sum += p
		affected = append(affected, affectedTask(t))
	}
	if len(affected) == 0 {
		return prediction.Prediction{}, false
	}

	return prediction.Prediction{
		Type:          prediction.TypeDelayProbability,
		Title:         fmt.Sprintf("%d task(s) likely to run late", len(affected)),
		Description:   "Historical durations for these task types exceed their estimates by 50% or more.",
		Probability:   sum / float64(len(affected)),
		ImpactLevel:   prediction.ImpactHigh,
		AffectedTasks: affected,
	}, true
}

func (uc *implUseCase) typeOverrun(in engineInput, avgByType map[string]float64) []prediction.Prediction {
	byType := make(map[string][]model.Task)
	for _, t := range in.pending {
		if _, ok := avgByType[t.Type]; ok {
			byType[t.Type] = append(byType[t.Type], t)
		}
	}

	var out []prediction.Prediction
	for _, typ := range sortedKeys(byType) {
		tasks := byType[typ]
		var estimates float64
		for _, t := range tasks {
			estimates += float64(t.Estimate(uc.cfg.FallbackMinutes))
		}
		estimate := estimates / float64(len(tasks))
		avg := avgByType[typ]
		ratio := avg / estimate
		if ratio < overrunRatio {
			continue
		}

		p := math.Min(1, (ratio-1)*0.5+0.5)
		out = append(out, prediction.Prediction{
			Type:  prediction.TypeTypeOverrun,
			Title: fmt.Sprintf("%s tasks usually overrun", typeLabel(typ)),
			Description: fmt.Sprintf("Completed %s tasks took %.0f min on average against %.0f min estimated (%.1fx).",
				typeLabel(typ), avg, estimate, ratio),
			Probability:   p,
			ImpactLevel:   prediction.ImpactFor(p),
			AffectedTasks: affectedTasks(tasks),
			TaskType:      typ,
		})
	}
	return out
}

// daySaturation groups by due day, not start day.
func (uc *implUseCase) daySaturation(in engineInput, avgByType map[string]float64) []prediction.Prediction {
	minutes := make(map[string]float64)
	byDay := make(map[string][]model.Task)
	for _, t := range in.pending {
		if t.DueDate == nil || t.DueDate.IsZero() {
			continue
		}
		key := uc.days.DayKey(*t.DueDate)
		minutes[key] += uc.plannedMinutes(t, avgByType)
		byDay[key] = append(byDay[key], t)
	}

	capacity := float64(uc.cfg.DayCapacityMin)
	var out []prediction.Prediction
	for _, day := range sortedKeys(byDay) {
		total := minutes[day]
		if total <= capacity {
			continue
		}
		ratio := total / capacity
		p := math.Min(1, 0.5+(ratio-1)*0.5)
		out = append(out, prediction.Prediction{
			Type:          prediction.TypeDaySaturation,
			Title:         fmt.Sprintf("%s is overbooked", day),
			Description:   fmt.Sprintf("%.0f min planned against a %.0f min day.", total, capacity),
			Probability:   p,
			ImpactLevel:   prediction.ImpactFor(p),
			AffectedTasks: affectedTasks(byDay[day]),
			Day:           day,
			TotalMinutes:  total,
		})
	}
	return out
}

func (uc *implUseCase) plannedMinutes(t model.Task, avgByType map[string]float64) float64 {
	if t.EstimatedMinutes != nil && *t.EstimatedMinutes > 0 {
		return float64(*t.EstimatedMinutes)
	}
	if avg, ok := avgByType[t.Type]; ok {
		return avg
	}
	return float64(uc.cfg.FallbackMinutes)
}

// clientRisk only reports clients that still have pending work in the window.
func (uc *implUseCase) clientRisk(in engineInput) []prediction.Prediction {
	cancels := make(map[string]int)
	for _, t := range in.cancelled {
		if t.ClientID != "" {
			cancels[t.ClientID]++
		}
	}

	pendingByClient := make(map[string][]model.Task)
	for _, t := range in.pending {
		if cancels[t.ClientID] >= clientCancellations {
			pendingByClient[t.ClientID] = append(pendingByClient[t.ClientID], t)
		}
	}

	var out []prediction.Prediction
	for _, clientID := range sortedKeys(pendingByClient) {
		tasks := pendingByClient[clientID]
		name := clientID
		if tasks[0].ClientName != "" {
			name = tasks[0].ClientName
		}
		out = append(out, prediction.Prediction{
			Type:          prediction.TypeClientRisk,
			Title:         fmt.Sprintf("%s cancels often", name),
			Description:   fmt.Sprintf("%d cancelled tasks for this client; upcoming work may be cancelled too.", cancels[clientID]),
			Probability:   clientRiskP,
			ImpactLevel:   prediction.ImpactFor(clientRiskP),
			AffectedTasks: affectedTasks(tasks),
			ClientID:      clientID,
		})
	}
	return out
}

func (uc *implUseCase) deadlineBreach(in engineInput, avgByType map[string]float64) []prediction.Prediction {
	horizon := in.now.Add(deadlineHorizon)

	var out []prediction.Prediction
	for _, t := range in.pending {
		if t.DueDate == nil || t.DueDate.IsZero() || t.DueDate.After(horizon) {
			continue
		}
		ratio, ok := uc.taskRatio(t, avgByType)
		if !ok {
			continue
		}
		p := math.Min(1, 0.4+(ratio-1)*0.5)
		if p < deadlineThreshold {
			continue
		}
		out = append(out, prediction.Prediction{
			Type:  prediction.TypeDeadlineBreach,
			Title: fmt.Sprintf("%q may miss its deadline", t.Title),
			Description: fmt.Sprintf("Due %s; similar tasks take %.1fx their estimate.",
				t.DueDate.In(uc.days.Location()).Format("2006-01-02 15:04"), ratio),
			Probability:   p,
			ImpactLevel:   prediction.ImpactFor(p),
			AffectedTasks: []prediction.AffectedTask{affectedTask(t)},
		})
	}
	return out
}

func affectedTask(t model.Task) prediction.AffectedTask {
	return prediction.AffectedTask{ID: t.ID, Title: t.Title}
}

func affectedTasks(tasks []model.Task) []prediction.AffectedTask {
	out := make([]prediction.AffectedTask, len(tasks))
	for i, t := range tasks {
		out[i] = affectedTask(t)
	}
	return out
}

func typeLabel(typ string) string {
	if typ == "" {
		return "Untyped"
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
