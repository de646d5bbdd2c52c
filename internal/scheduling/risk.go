package scheduling

import (
	"sort"
	"time"

	"scheduling-intelligence/internal/model"
)

// RiskInput is the part of an event the risk detector looks at.
type RiskInput struct {
	ID      string
	Start   time.Time
	End     time.Time
	DueDate *time.Time
}

// RiskInputs projects events onto RiskInput.
func RiskInputs(events []model.CalendarEvent) []RiskInput {
	items := make([]RiskInput, len(events))
	for i, ev := range events {
		items[i] = RiskInput{ID: ev.ID, Start: ev.Start, End: ev.End, DueDate: ev.DueDate}
	}
	return items
}

// DetectRisks flags every item for overlap with any other item in the set,
// impossible timing, and membership of an over-capacity start day.
// Every input id is present in the result.
func (e Engine) DetectRisks(items []RiskInput) map[string]model.RiskFlags {
	flags := make([]model.RiskFlags, len(items))

	for i, hit := range e.overlapping(items) {
		flags[i].Overlap = hit
	}

	dayMinutes := make(map[string]float64)
	dayKeys := make([]string, len(items))
	for i, it := range items {
		if !it.End.After(it.Start) || (validInstant(it.DueDate) && it.Start.After(*it.DueDate)) {
			flags[i].ImpossibleTiming = true
		}
		dayKeys[i] = e.days.DayKey(it.Start)
		if d := it.End.Sub(it.Start); d > 0 {
			dayMinutes[dayKeys[i]] += d.Minutes()
		}
	}
	capacity := float64(e.cfg.DayCapacityMin)
	for i := range items {
		if dayMinutes[dayKeys[i]] > capacity {
			flags[i].Overload = true
		}
	}

	out := make(map[string]model.RiskFlags, len(items))
	for i, it := range items {
		prev := out[it.ID]
		out[it.ID] = model.RiskFlags{
			Overlap:          prev.Overlap || flags[i].Overlap,
			Overload:         prev.Overload || flags[i].Overload,
			ImpossibleTiming: prev.ImpossibleTiming || flags[i].ImpossibleTiming,
		}
	}
	return out
}

// overlapping sweeps items in start order. Once a later start reaches the
// current end no further item can satisfy a.Start < b.End && a.End > b.Start.
func (e Engine) overlapping(items []RiskInput) []bool {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].Start.Before(items[order[b]].Start)
	})

	hit := make([]bool, len(items))
	for x := 0; x < len(order); x++ {
		a := items[order[x]]
		for y := x + 1; y < len(order); y++ {
			b := items[order[y]]
			if !b.Start.Before(a.End) {
				break
			}
			if overlaps(a, b) {
				hit[order[x]] = true
				hit[order[y]] = true
			}
		}
	}
	return hit
}

func overlaps(a, b RiskInput) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}
