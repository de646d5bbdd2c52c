// Package scheduling turns tasks into calendar events and scores them.
// Everything here is pure: callers fetch tasks, pass "now", and log.
package scheduling

import (
	"time"

	"scheduling-intelligence/pkg/datemath"
)

const (
	DefaultDayCapacityMin   = 480
	DefaultFallbackDuration = 30 * time.Minute
)

// Config tunes the engines. Zero values take the defaults.
type Config struct {
	DayCapacityMin   int
	FallbackDuration time.Duration
}

// Engine bundles the normalizer, risk detector and priority engine.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	days *datemath.Parser
	cfg  Config
}

// New creates an Engine whose day boundaries follow days' timezone.
func New(days *datemath.Parser, cfg Config) Engine {
	if cfg.DayCapacityMin <= 0 {
		cfg.DayCapacityMin = DefaultDayCapacityMin
	}
	if cfg.FallbackDuration <= 0 {
		cfg.FallbackDuration = DefaultFallbackDuration
	}
	return Engine{days: days, cfg: cfg}
}

// DayCapacityMin is the configured workable minutes per day.
func (e Engine) DayCapacityMin() int {
	return e.cfg.DayCapacityMin
}

func validInstant(t *time.Time) bool {
	return t != nil && !t.IsZero()
}
