package recommendation

import (
	"context"

	"scheduling-intelligence/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Recommend(ctx context.Context, sc model.Scope, input RecommendInput) (RecommendOutput, error)
}
