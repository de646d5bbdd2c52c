package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Postgres PostgresConfig

	// Scheduling core
	Scheduling      SchedulingConfig
	CalendarCache   CalendarCacheConfig
	ClientDirectory ClientDirectoryConfig
	Prediction      PredictionConfig

	// Calendar sync
	CalendarSync   CalendarSyncConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	OwnerHeader string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SchedulingConfig struct {
	Timezone            string
	DayCapacityMin      int
	LookaheadDays       int
	FallbackDurationMin int
	MaxRecommendations  int
}

type CalendarCacheConfig struct {
	MaxSessions int
	SessionTTL  time.Duration
}

type ClientDirectoryConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// PredictionConfig selects where recommendations read predictions from.
// An empty RemoteURL keeps the call in-process.
type PredictionConfig struct {
	RemoteURL string
	Timeout   time.Duration
}

type CalendarSyncConfig struct {
	Enabled         bool
	QueueSize       int
	Workers         int
	RateLimitPerMin int
	RetryAttempts   int
	RetryDelay      time.Duration
	CalendarID      string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.OwnerHeader = viper.GetString("http_server.owner_header")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	// Scheduling core
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.DayCapacityMin = viper.GetInt("scheduling.day_capacity_min")
	cfg.Scheduling.LookaheadDays = viper.GetInt("scheduling.lookahead_days")
	cfg.Scheduling.FallbackDurationMin = viper.GetInt("scheduling.fallback_duration_min")
	cfg.Scheduling.MaxRecommendations = viper.GetInt("scheduling.max_recommendations")

	cfg.CalendarCache.MaxSessions = viper.GetInt("calendar_cache.max_sessions")
	cfg.CalendarCache.SessionTTL = viper.GetDuration("calendar_cache.session_ttl")

	cfg.ClientDirectory.CacheSize = viper.GetInt("client_directory.cache_size")
	cfg.ClientDirectory.CacheTTL = viper.GetDuration("client_directory.cache_ttl")

	cfg.Prediction.RemoteURL = viper.GetString("prediction.remote_url")
	cfg.Prediction.Timeout = viper.GetDuration("prediction.timeout")

	// Calendar sync
	cfg.CalendarSync.Enabled = viper.GetBool("calendar_sync.enabled")
	cfg.CalendarSync.QueueSize = viper.GetInt("calendar_sync.queue_size")
	cfg.CalendarSync.Workers = viper.GetInt("calendar_sync.workers")
	cfg.CalendarSync.RateLimitPerMin = viper.GetInt("calendar_sync.rate_limit_per_min")
	cfg.CalendarSync.RetryAttempts = viper.GetInt("calendar_sync.retry_attempts")
	cfg.CalendarSync.RetryDelay = viper.GetDuration("calendar_sync.retry_delay")
	cfg.CalendarSync.CalendarID = viper.GetString("calendar_sync.calendar_id")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.Scheduling.Timezone); err != nil {
		return fmt.Errorf("scheduling.timezone: %w", err)
	}
	if c.Scheduling.DayCapacityMin <= 0 {
		return fmt.Errorf("scheduling.day_capacity_min must be positive, got %d", c.Scheduling.DayCapacityMin)
	}
	if c.Scheduling.LookaheadDays <= 0 {
		return fmt.Errorf("scheduling.lookahead_days must be positive, got %d", c.Scheduling.LookaheadDays)
	}
	if c.Scheduling.FallbackDurationMin <= 0 {
		return fmt.Errorf("scheduling.fallback_duration_min must be positive, got %d", c.Scheduling.FallbackDurationMin)
	}
	if c.CalendarSync.Enabled && c.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("calendar_sync.enabled requires google_calendar.credentials_path")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.owner_header", "X-Owner-ID")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")

	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")

	viper.SetDefault("scheduling.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("scheduling.day_capacity_min", 480)
	viper.SetDefault("scheduling.lookahead_days", 14)
	viper.SetDefault("scheduling.fallback_duration_min", 30)
	viper.SetDefault("scheduling.max_recommendations", 15)

	viper.SetDefault("calendar_cache.max_sessions", 1000)
	viper.SetDefault("calendar_cache.session_ttl", "30m")
	viper.SetDefault("client_directory.cache_size", 5000)
	viper.SetDefault("client_directory.cache_ttl", "10m")
	viper.SetDefault("prediction.timeout", "5s")

	viper.SetDefault("calendar_sync.enabled", false)
	viper.SetDefault("calendar_sync.queue_size", 256)
	viper.SetDefault("calendar_sync.workers", 2)
	viper.SetDefault("calendar_sync.rate_limit_per_min", 120)
	viper.SetDefault("calendar_sync.retry_attempts", 3)
	viper.SetDefault("calendar_sync.retry_delay", "2s")
	viper.SetDefault("calendar_sync.calendar_id", "primary")
}

// splitList splits comma separated values, since env overrides arrive as one string.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
