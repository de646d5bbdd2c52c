package usecase

import (
	"context"
	"fmt"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/task/repository"
)

// Predict loads pending tasks due in [now, now+lookahead) together with the
// owner's completed and cancelled history, then runs the rules.
func (uc *implUseCase) Predict(ctx context.Context, sc model.Scope, input prediction.PredictInput) (prediction.PredictOutput, error) {
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
		uc.l.Errorf(ctx, "prediction.Predict ListTasks pending: %v", err)
		return prediction.PredictOutput{}, fmt.Errorf("%w: %v", prediction.ErrLoadTasks, err)
	}

	completed, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID:       sc.UserID,
		Status:        model.TaskStatusDone,
		CompletedOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "prediction.Predict ListTasks completed: %v", err)
		return prediction.PredictOutput{}, fmt.Errorf("%w: %v", prediction.ErrLoadTasks, err)
	}

	cancelled, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
		Status:  model.TaskStatusCancelled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "prediction.Predict ListTasks cancelled: %v", err)
		return prediction.PredictOutput{}, fmt.Errorf("%w: %v", prediction.ErrLoadTasks, err)
	}

	predictions := uc.compute(engineInput{
		now:       now,
		pending:   pending,
		completed: completed,
		cancelled: cancelled,
	})

	uc.l.Infof(ctx, "prediction.Predict: owner=%s window=%dd pending=%d history=%d predictions=%d",
		sc.UserID, days, len(pending), len(completed), len(predictions))

	return prediction.PredictOutput{Predictions: predictions}, nil
}
