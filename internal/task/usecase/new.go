package usecase

import (
	"time"

	"scheduling-intelligence/internal/calendarcache"
	"scheduling-intelligence/internal/calsync"
	"scheduling-intelligence/internal/client"
	"scheduling-intelligence/internal/scheduling"
	"scheduling-intelligence/internal/task"
	"scheduling-intelligence/internal/task/repository"
	"scheduling-intelligence/pkg/datemath"
	pkgLog "scheduling-intelligence/pkg/log"
)

const (
	defaultAgendaDays = 7
	mergeFallbackMin  = 30
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	engine     scheduling.Engine
	sessions   *calendarcache.Sessions
	clients    client.Directory
	dispatcher calsync.Dispatcher
	days       *datemath.Parser
	now        func() time.Time
}

// New creates a task UseCase.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	engine scheduling.Engine,
	sessions *calendarcache.Sessions,
	clients client.Directory,
	dispatcher calsync.Dispatcher,
	days *datemath.Parser,
) task.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		engine:     engine,
		sessions:   sessions,
		clients:    clients,
		dispatcher: dispatcher,
		days:       days,
		now:        time.Now,
	}
}
