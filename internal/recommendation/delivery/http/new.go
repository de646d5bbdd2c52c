package http

import (
	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/task"
	"scheduling-intelligence/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            recommendation.UseCase
	tasks         task.UseCase
	lookaheadDays int
}

// New creates the recommendation HTTP handler. tasks applies confirmed recommendations.
func New(l log.Logger, uc recommendation.UseCase, tasks task.UseCase, lookaheadDays int) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		tasks:         tasks,
		lookaheadDays: lookaheadDays,
	}
}
