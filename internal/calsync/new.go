package calsync

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"scheduling-intelligence/internal/model"
	pkgLog "scheduling-intelligence/pkg/log"
)

type implDispatcher struct {
	l        pkgLog.Logger
	cfg      Config
	tasks    TaskReader
	calendar CalendarWriter
	norm     Normalizer
	now      func() time.Time

	queue    chan Job
	limiter  *rate.Limiter
	owners   *ownerLimiter
	wg       sync.WaitGroup
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// New creates a Google Calendar backed Dispatcher. Call Start to run it.
func New(l pkgLog.Logger, cfg Config, tasks TaskReader, calendar CalendarWriter, norm Normalizer) Dispatcher {
	cfg = cfg.withDefaults()
	perSecond := rate.Limit(float64(cfg.RateLimitPerMin) / 60.0)
	return &implDispatcher{
		l:        l,
		cfg:      cfg,
		tasks:    tasks,
		calendar: calendar,
		norm:     norm,
		now:      time.Now,
		queue:    make(chan Job, cfg.QueueSize),
		limiter:  rate.NewLimiter(perSecond, burst(cfg.RateLimitPerMin)),
		owners:   newOwnerLimiter(cfg.RateLimitPerMin),
	}
}

type noopDispatcher struct {
	l pkgLog.Logger
}

// NewNoop returns a Dispatcher that only logs. Used when calendar sync is disabled.
func NewNoop(l pkgLog.Logger) Dispatcher {
	return &noopDispatcher{l: l}
}

func (d *noopDispatcher) EnqueueSync(ctx context.Context, taskID, ownerID string, op model.SyncOperation) {
	d.l.Debugf(ctx, "calsync.EnqueueSync: disabled, skipping %s task=%s owner=%s", op, taskID, ownerID)
}

func (d *noopDispatcher) Start(ctx context.Context) {}

func (d *noopDispatcher) Stop() {}

func burst(perMin int) int {
	if b := perMin / 10; b > 0 {
		return b
	}
	return 1
}
