package recommendation

import (
	"time"

	"scheduling-intelligence/internal/model"
)

// Type discriminates the suggested change.
type Type string

const (
	TypeReschedule     Type = "reschedule"
	TypeReassign       Type = "reassign"
	TypeExtendTime     Type = "extend_time"
	TypeMerge          Type = "merge"
	TypePriorityChange Type = "priority_change"
)

// IsValid reports whether t is a known recommendation type.
func (t Type) IsValid() bool {
	switch t {
	case TypeReschedule, TypeReassign, TypeExtendTime, TypeMerge, TypePriorityChange:
		return true
	}
	return false
}

// Difficulty is how much effort applying a recommendation takes.
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// Slot is a time window proposed for merged tasks.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SuggestedChange holds the fields relevant to the recommendation type:
//   - reschedule: TaskID, NewStart, NewEnd
//   - reassign: TaskID, NewAssignee
//   - extend_time: TaskID, NewEstimateMinutes
//   - merge: TaskIDs, Slot
//   - priority_change: TaskID, NewPriority
type SuggestedChange struct {
	TaskID             string               `json:"task_id,omitempty"`
	NewStart           *time.Time           `json:"new_start,omitempty"`
	NewEnd             *time.Time           `json:"new_end,omitempty"`
	NewAssignee        string               `json:"new_assignee,omitempty"`
	NewEstimateMinutes int                  `json:"new_estimate_minutes,omitempty"`
	TaskIDs            []string             `json:"task_ids,omitempty"`
	Slot               *Slot                `json:"slot,omitempty"`
	NewPriority        model.ManualPriority `json:"new_priority,omitempty"`
}

// Recommendation is an advisory, typed suggestion. It is never applied
// automatically.
type Recommendation struct {
	ID                 string          `json:"id"`
	Type               Type            `json:"type"`
	Title              string          `json:"title"`
	Explanation        string          `json:"explanation"`
	ExpectedBenefit    string          `json:"expected_benefit"`
	Confidence         float64         `json:"confidence"`
	Difficulty         Difficulty      `json:"difficulty"`
	SuggestedChange    SuggestedChange `json:"suggested_change"`
	AffectedTaskTitles []string        `json:"affected_task_titles"`
}

// RecommendInput selects the lookahead window. NextID, when set, supplies
// recommendation ids for this call only.
type RecommendInput struct {
	LookaheadDays int
	NextID        func() string
}

// RecommendOutput is the ranked, truncated recommendation set.
type RecommendOutput struct {
	Recommendations []Recommendation
}

const DefaultMaxRecommendations = 15
