package prediction

// Type is the kind of operational risk a prediction describes.
type Type string

const (
	TypeDelayProbability Type = "DELAY_PROBABILITY"
	TypeDaySaturation    Type = "DAY_SATURATION"
	TypeClientRisk       Type = "CLIENT_RISK"
	TypeTypeOverrun      Type = "TYPE_OVERRUN"
	TypeDeadlineBreach   Type = "DEADLINE_BREACH"
)

// Impact is derived from probability.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// ImpactFor maps a probability onto an impact level: >=0.7 high, >=0.4 medium.
func ImpactFor(probability float64) Impact {
	switch {
	case probability >= 0.7:
		return ImpactHigh
	case probability >= 0.4:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// Rank orders impacts high first.
func (i Impact) Rank() int {
	switch i {
	case ImpactHigh:
		return 0
	case ImpactMedium:
		return 1
	default:
		return 2
	}
}

// AffectedTask references a task covered by a prediction.
type AffectedTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Prediction is a probability-scored operational risk. The trailing fields
// carry the context recommendations need and are set per type.
type Prediction struct {
	Type          Type           `json:"type"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Probability   float64        `json:"probability"`
	ImpactLevel   Impact         `json:"impact_level"`
	AffectedTasks []AffectedTask `json:"affected_tasks"`

	TaskType     string  `json:"task_type,omitempty"`     // TYPE_OVERRUN
	Day          string  `json:"day,omitempty"`           // DAY_SATURATION, YYYY-MM-DD of the due day
	TotalMinutes float64 `json:"total_minutes,omitempty"` // DAY_SATURATION, unrounded
	ClientID     string  `json:"client_id,omitempty"`     // CLIENT_RISK
}

// PredictInput selects the lookahead window. Zero uses the configured default.
type PredictInput struct {
	LookaheadDays int
}

// PredictOutput is the ordered prediction set.
type PredictOutput struct {
	Predictions []Prediction
}

const (
	DefaultLookaheadDays = 14
	MaxLookaheadDays     = 60
)

// ClampLookahead returns days within [1, MaxLookaheadDays], or def when days is not set.
func ClampLookahead(days, def int) int {
	if days <= 0 {
		days = def
	}
	if days <= 0 {
		days = DefaultLookaheadDays
	}
	if days > MaxLookaheadDays {
		days = MaxLookaheadDays
	}
	return days
}
