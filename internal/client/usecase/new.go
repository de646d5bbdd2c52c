package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"scheduling-intelligence/internal/client"
	"scheduling-intelligence/internal/client/repository"
	pkgLog "scheduling-intelligence/pkg/log"
)

const (
	DefaultCacheSize = 5000
	DefaultCacheTTL  = 10 * time.Minute
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache *expirable.LRU[string, bool]
}

// New creates a client Directory that memoizes VIP flags, negatives included.
func New(l pkgLog.Logger, repo repository.Repository, cacheSize int, ttl time.Duration) client.Directory {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: expirable.NewLRU[string, bool](cacheSize, nil, ttl),
	}
}
