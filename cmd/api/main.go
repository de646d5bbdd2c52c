package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduling-intelligence/config"
	_ "scheduling-intelligence/docs" // Swagger docs
	"scheduling-intelligence/internal/calsync"
	"scheduling-intelligence/internal/httpserver"
	"scheduling-intelligence/internal/scheduling"
	taskRepo "scheduling-intelligence/internal/task/repository/postgre"
	"scheduling-intelligence/pkg/datemath"
	"scheduling-intelligence/pkg/gcalendar"
	"scheduling-intelligence/pkg/log"
	"scheduling-intelligence/pkg/postgres"
)

// @title       Scheduling Intelligence API
// @description Agenda, risk, priority, predictions and recommendations over an owner's tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Scheduling Intelligence...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar day arithmetic
	days, err := datemath.NewParser(cfg.Scheduling.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Scheduling.Timezone, err)
		return
	}

	// 4. Task store
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer db.Close()
	logger.Info(ctx, "Postgres connected")

	// 5. Calendar sync (optional)
	dispatcher := calsync.NewNoop(logger)
	if cfg.CalendarSync.Enabled {
		calendarClient, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available, sync disabled: %v", gErr)
		} else {
			engine := scheduling.New(days, scheduling.Config{
				DayCapacityMin:   cfg.Scheduling.DayCapacityMin,
				FallbackDuration: time.Duration(cfg.Scheduling.FallbackDurationMin) * time.Minute,
			})
			dispatcher = calsync.New(logger, calsync.Config{
				QueueSize:       cfg.CalendarSync.QueueSize,
				Workers:         cfg.CalendarSync.Workers,
				RateLimitPerMin: cfg.CalendarSync.RateLimitPerMin,
				RetryAttempts:   cfg.CalendarSync.RetryAttempts,
				RetryDelay:      cfg.CalendarSync.RetryDelay,
				CalendarID:      cfg.CalendarSync.CalendarID,
				Timezone:        cfg.Scheduling.Timezone,
			}, taskRepo.New(db, logger), calendarClient, engine)
			logger.Info(ctx, "Google Calendar sync enabled")
		}
	}
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		OwnerHeader:    cfg.HTTPServer.OwnerHeader,
		PostgresDB:     db,
		Days:           days,
		Scheduling: httpserver.SchedulingConfig{
			DayCapacityMin:      cfg.Scheduling.DayCapacityMin,
			LookaheadDays:       cfg.Scheduling.LookaheadDays,
			FallbackDurationMin: cfg.Scheduling.FallbackDurationMin,
			MaxRecommendations:  cfg.Scheduling.MaxRecommendations,
			CacheMaxSessions:    cfg.CalendarCache.MaxSessions,
			CacheSessionTTL:     cfg.CalendarCache.SessionTTL,
			ClientCacheSize:     cfg.ClientDirectory.CacheSize,
			ClientCacheTTL:      cfg.ClientDirectory.CacheTTL,
			PredictionRemoteURL: cfg.Prediction.RemoteURL,
			PredictionTimeout:   cfg.Prediction.Timeout,
		},
		Dispatcher: dispatcher,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
