package usecase

import (
	"time"

	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/task/repository"
	"scheduling-intelligence/pkg/datemath"
	pkgLog "scheduling-intelligence/pkg/log"
)

// Config holds the recommendation limits that vary per deployment.
type Config struct {
	LookaheadDays      int
	DayCapacityMin     int
	FallbackMinutes    int
	MaxRecommendations int
}

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	source prediction.UseCase
	days   *datemath.Parser
	cfg    Config
	now    func() time.Time
}

// New creates a recommendation UseCase. source may be the in-process
// prediction use case or the remote prediction client.
func New(l pkgLog.Logger, repo repository.Repository, source prediction.UseCase, days *datemath.Parser, cfg Config) recommendation.UseCase {
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = prediction.DefaultLookaheadDays
	}
	if cfg.DayCapacityMin <= 0 {
		cfg.DayCapacityMin = 480
	}
	if cfg.FallbackMinutes <= 0 {
		cfg.FallbackMinutes = 30
	}
	if cfg.MaxRecommendations <= 0 {
		cfg.MaxRecommendations = recommendation.DefaultMaxRecommendations
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		source: source,
		days:   days,
		cfg:    cfg,
		now:    time.Now,
	}
}
