package task

import (
	"time"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/recommendation"
)

// AgendaInput bounds the agenda. Both dates accept YYYY-MM-DD, RFC3339 or a
// relative expression; empty From means today, empty To means From+7 days.
// To is inclusive at day granularity.
type AgendaInput struct {
	From string
	To   string
}

// AgendaOutput is the enriched agenda for [From, To).
type AgendaOutput struct {
	From   time.Time
	To     time.Time
	Events []model.CalendarEvent
}

// WeekInput selects the week by any day inside it. Empty means today.
type WeekInput struct {
	Day string
}

// DayAgenda is one day of the week view.
type DayAgenda struct {
	Day    string
	Events []model.CalendarEvent
}

// WeekOutput is the week view, Monday first.
type WeekOutput struct {
	WeekStart time.Time
	Days      []DayAgenda
}

// InvalidateInput uses the same date forms as AgendaInput.
type InvalidateInput struct {
	From string
	To   string
}

// ApplyInput is a recommendation the caller confirmed.
type ApplyInput struct {
	Type    recommendation.Type
	TaskIDs []string
	Change  recommendation.SuggestedChange
}

// ApplyOutput lists the tasks as stored after the update.
type ApplyOutput struct {
	Tasks []model.Task
}
