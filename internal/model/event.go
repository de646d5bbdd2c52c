package model

import "time"

// PriorityLevel is the computed three-tier classification.
type PriorityLevel string

const (
	PriorityCritical  PriorityLevel = "CRITICAL"
	PriorityImportant PriorityLevel = "IMPORTANT"
	PriorityNormal    PriorityLevel = "NORMAL"
)

// PriorityScore is the computed priority of a task. Never stored.
type PriorityScore struct {
	Score    int
	Priority PriorityLevel
}

// RiskFlags are the scheduling risks of one event relative to the set it was checked in.
type RiskFlags struct {
	Overlap          bool
	Overload         bool
	ImpossibleTiming bool
}

// Any reports whether at least one flag is raised.
func (r RiskFlags) Any() bool {
	return r.Overlap || r.Overload || r.ImpossibleTiming
}

// CalendarEvent is a task resolved onto the calendar. Start is always before End.
type CalendarEvent struct {
	ID           string
	Title        string
	Start        time.Time
	End          time.Time
	Status       TaskStatus
	Type         string
	SourceModule string
	SLAMinutes   *int
	Priority     ManualPriority
	AutoPriority *PriorityScore
	DueDate      *time.Time
	Risk         *RiskFlags
	AssignedTo   string
	ClientID     string
	ClientName   string
	LeadName     string
}

// Duration is End - Start.
func (e CalendarEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
