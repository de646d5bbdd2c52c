package usecase

import (
	"time"

	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/task/repository"
	"scheduling-intelligence/pkg/datemath"
	pkgLog "scheduling-intelligence/pkg/log"
)

// Config holds the prediction thresholds that vary per deployment.
type Config struct {
	LookaheadDays   int
	DayCapacityMin  int
	FallbackMinutes int
}

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	days *datemath.Parser
	cfg  Config
	now  func() time.Time
}

// New creates a prediction UseCase.
func New(l pkgLog.Logger, repo repository.Repository, days *datemath.Parser, cfg Config) prediction.UseCase {
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = prediction.DefaultLookaheadDays
	}
	if cfg.DayCapacityMin <= 0 {
		cfg.DayCapacityMin = 480
	}
	if cfg.FallbackMinutes <= 0 {
		cfg.FallbackMinutes = 30
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		days: days,
		cfg:  cfg,
		now:  time.Now,
	}
}
