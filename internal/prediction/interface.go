package prediction

import (
	"context"

	"scheduling-intelligence/internal/model"
)

// UseCase computes predictions for one owner.
type UseCase interface {
	// Predict loads the owner's pending window and history and scores them.
	Predict(ctx context.Context, sc model.Scope, input PredictInput) (PredictOutput, error)
}
