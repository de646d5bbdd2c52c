package scheduling

import (
	"strings"
	"time"

	"scheduling-intelligence/internal/model"
)

const (
	criticalAbove  = 80
	importantFloor = 40
)

// PriorityInput is everything the priority engine scores.
type PriorityInput struct {
	DueDate      *time.Time
	SourceModule string
	SLAMinutes   *int
	Type         string
	RiskDetected bool
	ClientIsVIP  bool
}

// PriorityInputFor builds a PriorityInput from a task and the two external flags.
func PriorityInputFor(task model.Task, riskDetected, clientIsVIP bool) PriorityInput {
	return PriorityInput{
		DueDate:      task.DueDate,
		SourceModule: task.SourceModule,
		SLAMinutes:   task.SLAMinutes,
		Type:         task.Type,
		RiskDetected: riskDetected,
		ClientIsVIP:  clientIsVIP,
	}
}

// PriorityInputForEvent is PriorityInputFor on an already normalized event.
func PriorityInputForEvent(ev model.CalendarEvent, riskDetected, clientIsVIP bool) PriorityInput {
	return PriorityInput{
		DueDate:      ev.DueDate,
		SourceModule: ev.SourceModule,
		SLAMinutes:   ev.SLAMinutes,
		Type:         ev.Type,
		RiskDetected: riskDetected,
		ClientIsVIP:  clientIsVIP,
	}
}

// Score sums five independent factors and classifies the total.
func (e Engine) Score(in PriorityInput, now time.Time) model.PriorityScore {
	factors := []func(PriorityInput) int{
		e.scoreTimePressure(now),
		scoreRevenueLinkage,
		scoreTypeAndSLA,
		scoreRisk,
		scoreClientImportance,
	}

	var score int
	for _, f := range factors {
		score += f(in)
	}
	return model.PriorityScore{Score: score, Priority: Classify(score)}
}

// Classify maps a score onto CRITICAL (>80), IMPORTANT (40..80) or NORMAL.
func Classify(score int) model.PriorityLevel {
	switch {
	case score > criticalAbove:
		return model.PriorityCritical
	case score >= importantFloor:
		return model.PriorityImportant
	default:
		return model.PriorityNormal
	}
}

// scoreTimePressure uses the local day for "today", so anything due before
// tomorrow's midnight (overdue included) gets the full weight.
func (e Engine) scoreTimePressure(now time.Time) func(PriorityInput) int {
	tomorrow := e.days.NextDay(now)
	return func(in PriorityInput) int {
		if !validInstant(in.DueDate) {
			return 0
		}
		due := *in.DueDate
		switch until := due.Sub(now); {
		case due.Before(tomorrow):
			return 40
		case until <= 24*time.Hour:
			return 30
		case until <= 72*time.Hour:
			return 15
		}
		return 0
	}
}

func scoreRevenueLinkage(in PriorityInput) int {
	if strings.EqualFold(in.SourceModule, model.SourceModuleSale) {
		return 20
	}
	return 0
}

func scoreTypeAndSLA(in PriorityInput) int {
	if in.SLAMinutes != nil && *in.SLAMinutes > 0 {
		return 20
	}
	switch strings.ToUpper(in.Type) {
	case model.TaskTypeCall, model.TaskTypeMeeting:
		return 10
	}
	return 5
}

func scoreRisk(in PriorityInput) int {
	if in.RiskDetected {
		return 20
	}
	return 0
}

func scoreClientImportance(in PriorityInput) int {
	if in.ClientIsVIP {
		return 20
	}
	return 0
}
