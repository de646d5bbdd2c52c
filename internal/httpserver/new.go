package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/calsync"
	"scheduling-intelligence/pkg/datemath"
	"scheduling-intelligence/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	ownerHeader    string

	// Storage
	postgresDB *sql.DB

	// Scheduling core
	days       *datemath.Parser
	scheduling SchedulingConfig
	dispatcher calsync.Dispatcher
}

// SchedulingConfig carries the tunables of the scheduling domains.
type SchedulingConfig struct {
	DayCapacityMin      int
	LookaheadDays       int
	FallbackDurationMin int
	MaxRecommendations  int

	CacheMaxSessions int
	CacheSessionTTL  time.Duration

	ClientCacheSize int
	ClientCacheTTL  time.Duration

	// Empty means predictions are computed in-process.
	PredictionRemoteURL string
	PredictionTimeout   time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	OwnerHeader    string

	PostgresDB *sql.DB
	Days       *datemath.Parser
	Scheduling SchedulingConfig

	// Optional; a no-op dispatcher is used when nil.
	Dispatcher calsync.Dispatcher
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		ownerHeader:    cfg.OwnerHeader,
		postgresDB:     cfg.PostgresDB,
		days:           cfg.Days,
		scheduling:     cfg.Scheduling,
		dispatcher:     cfg.Dispatcher,
	}
	if srv.dispatcher == nil {
		srv.dispatcher = calsync.NewNoop(logger)
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.days == nil {
		return errors.New("date parser is required")
	}
	return nil
}
