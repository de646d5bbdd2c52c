package http

import (
	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            prediction.UseCase
	lookaheadDays int
}

// New creates the prediction HTTP handler.
func New(l log.Logger, uc prediction.UseCase, lookaheadDays int) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		lookaheadDays: lookaheadDays,
	}
}
