package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/calendarcache"
	clientRepo "scheduling-intelligence/internal/client/repository/postgre"
	clientUC "scheduling-intelligence/internal/client/usecase"
	"scheduling-intelligence/internal/middleware"
	"scheduling-intelligence/internal/prediction"
	predictionClient "scheduling-intelligence/internal/prediction/client"
	predictionHTTP "scheduling-intelligence/internal/prediction/delivery/http"
	predictionUC "scheduling-intelligence/internal/prediction/usecase"
	recommendationHTTP "scheduling-intelligence/internal/recommendation/delivery/http"
	recommendationUC "scheduling-intelligence/internal/recommendation/usecase"
	"scheduling-intelligence/internal/scheduling"
	taskHTTP "scheduling-intelligence/internal/task/delivery/http"
	taskRepo "scheduling-intelligence/internal/task/repository/postgre"
	taskUC "scheduling-intelligence/internal/task/usecase"
)

// setupDomains wires repositories, use cases and handlers for every domain.
//
// Order per domain:
//  1. Repository
//  2. UseCase
//  3. HTTP Handler
//  4. Routes
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	cfg := srv.scheduling

	// 1. Repositories
	tasks := taskRepo.New(srv.postgresDB, srv.l)
	clients := clientRepo.New(srv.postgresDB, srv.l)

	// 2. UseCases
	engine := scheduling.New(srv.days, scheduling.Config{
		DayCapacityMin:   cfg.DayCapacityMin,
		FallbackDuration: time.Duration(cfg.FallbackDurationMin) * time.Minute,
	})
	sessions := calendarcache.NewSessions(srv.days, cfg.CacheMaxSessions, cfg.CacheSessionTTL)
	directory := clientUC.New(srv.l, clients, cfg.ClientCacheSize, cfg.ClientCacheTTL)
	taskUseCase := taskUC.New(srv.l, tasks, engine, sessions, directory, srv.dispatcher, srv.days)

	predictionUseCase := predictionUC.New(srv.l, tasks, srv.days, predictionUC.Config{
		LookaheadDays:   cfg.LookaheadDays,
		DayCapacityMin:  cfg.DayCapacityMin,
		FallbackMinutes: cfg.FallbackDurationMin,
	})

	var source prediction.UseCase = predictionUseCase
	if cfg.PredictionRemoteURL != "" {
		source = predictionClient.New(cfg.PredictionRemoteURL, srv.ownerHeaderName(), cfg.PredictionTimeout)
		srv.l.Infof(ctx, "Recommendations read predictions from %s", cfg.PredictionRemoteURL)
	}

	recommendationUseCase := recommendationUC.New(srv.l, tasks, source, srv.days, recommendationUC.Config{
		LookaheadDays:      cfg.LookaheadDays,
		DayCapacityMin:     cfg.DayCapacityMin,
		FallbackMinutes:    cfg.FallbackDurationMin,
		MaxRecommendations: cfg.MaxRecommendations,
	})

	// 3-4. Handlers and routes
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, taskUseCase), mw)
	predictionHTTP.RegisterRoutes(api, predictionHTTP.New(srv.l, predictionUseCase, cfg.LookaheadDays), mw)
	recommendationHTTP.RegisterRoutes(api, recommendationHTTP.New(srv.l, recommendationUseCase, taskUseCase, cfg.LookaheadDays), mw)

	srv.l.Infof(ctx, "Domains registered: schedule, predictions, recommendations")
	return nil
}
