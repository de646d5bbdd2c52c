package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/task/repository"
)

// Recommend loads the pending agenda and completed history, fetches
// predictions for the same window and runs the rules. A prediction failure
// only removes the prediction-driven rules.
func (uc *implUseCase) Recommend(ctx context.Context, sc model.Scope, input recommendation.RecommendInput) (recommendation.RecommendOutput, error) {
	days := prediction.ClampLookahead(input.LookaheadDays, uc.cfg.LookaheadDays)
	now := uc.now()
	until := now.AddDate(0, 0, days)

	pending, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
		Status:  model.TaskStatusPending,
		DueFrom: &now,
		DueTo:   &until,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.Recommend ListTasks pending: %v", err)
		return recommendation.RecommendOutput{}, fmt.Errorf("%w: %v", recommendation.ErrLoadTasks, err)
	}

	completed, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID:       sc.UserID,
		Status:        model.TaskStatusDone,
		CompletedOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.Recommend ListTasks completed: %v", err)
		return recommendation.RecommendOutput{}, fmt.Errorf("%w: %v", recommendation.ErrLoadTasks, err)
	}

	var predictions []prediction.Prediction
	out, err := uc.source.Predict(ctx, sc, prediction.PredictInput{LookaheadDays: days})
	if err != nil {
		uc.l.Warnf(ctx, "recommendation.Recommend Predict: %v, continuing without predictions", err)
	} else {
		predictions = out.Predictions
	}

	nextID := input.NextID
	if nextID == nil {
		nextID = uuid.NewString
	}

	recs := uc.compute(engineInput{
		pending:     pending,
		completed:   completed,
		predictions: predictions,
		nextID:      nextID,
	})

	uc.l.Infof(ctx, "recommendation.Recommend: owner=%s window=%dd predictions=%d recommendations=%d",
		sc.UserID, days, len(predictions), len(recs))

	return recommendation.RecommendOutput{Recommendations: recs}, nil
}
