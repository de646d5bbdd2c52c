package task

import (
	"context"

	"scheduling-intelligence/internal/model"
)

// UseCase serves the owner's agenda through the calendar cache and applies
// recommendation changes to the task store.
type UseCase interface {
	// Agenda returns normalized events in the range, enriched with risk flags and computed priority.
	Agenda(ctx context.Context, sc model.Scope, input AgendaInput) (AgendaOutput, error)

	// Week returns the Monday..Sunday buckets of the week containing the given day.
	Week(ctx context.Context, sc model.Scope, input WeekInput) (WeekOutput, error)

	// Invalidate drops the cached events and loaded intervals inside the range.
	Invalidate(ctx context.Context, sc model.Scope, input InvalidateInput) error

	// ApplyRecommendation writes a recommendation's suggested change to the affected tasks.
	ApplyRecommendation(ctx context.Context, sc model.Scope, input ApplyInput) (ApplyOutput, error)
}
