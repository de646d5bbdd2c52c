package http

import (
	"scheduling-intelligence/internal/task"
	"scheduling-intelligence/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates the schedule HTTP handler.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
