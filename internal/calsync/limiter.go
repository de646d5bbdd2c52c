package calsync

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// ownerLimiter gives each owner its own token bucket so one busy owner
// cannot starve the shared calendar quota. Idle owners expire.
type ownerLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newOwnerLimiter(perMin int) *ownerLimiter {
	return &ownerLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(perMin) / 60.0 / 2),
		burst:    burst(perMin),
	}
}

func (ol *ownerLimiter) Wait(ctx context.Context, owner string) error {
	ol.mu.Lock()
	limiter, ok := ol.limiters.Get(owner)
	if !ok {
		limiter = rate.NewLimiter(ol.rate, ol.burst)
		ol.limiters.Add(owner, limiter)
	}
	ol.mu.Unlock()

	return limiter.Wait(ctx)
}
