package calsync

import (
	"time"

	"scheduling-intelligence/internal/model"
)

const (
	DefaultQueueSize       = 256
	DefaultWorkers         = 2
	DefaultRateLimitPerMin = 120
	DefaultRetryAttempts   = 3
	DefaultRetryDelay      = 2 * time.Second
)

// Config tunes the dispatcher. Zero values take the defaults.
type Config struct {
	QueueSize       int
	Workers         int
	RateLimitPerMin int
	RetryAttempts   int
	RetryDelay      time.Duration
	CalendarID      string
	Timezone        string
}

// Job is one queued sync request.
type Job struct {
	TaskID     string
	OwnerID    string
	Op         model.SyncOperation
	EnqueuedAt time.Time
}

func (c Config) withDefaults() Config {
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.RateLimitPerMin <= 0 {
		c.RateLimitPerMin = DefaultRateLimitPerMin
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = DefaultRetryAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}
