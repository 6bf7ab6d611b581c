// Package config loads service settings from a YAML file with APP_* environment overrides.
package config

import (
	"github.com/maxviazov/wrestling-analytics-service/internal/logger"
)

// Config is the root configuration tree.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logger    logger.Config   `mapstructure:"logger"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Scraper   ScraperConfig   `mapstructure:"scraper"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type AppConfig struct {
	Name            string `mapstructure:"name" validate:"required"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=1"` // seconds
}

// PostgresConfig holds connection and pool settings. Credentials usually arrive via env.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=1"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0,ltefield=MaxConns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`   // seconds
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`  // seconds
	HealthCheckPeriod int    `mapstructure:"health_check_period"` // seconds
}

// Configured reports whether enough is set to attempt a connection.
// Without it the service runs against an empty store.
func (p PostgresConfig) Configured() bool {
	return p.Host != "" && p.User != "" && p.DBName != ""
}

type AnalyticsConfig struct {
	// NoContestPolicy is "loss" (no-contests count against both wrestlers) or "exclude".
	NoContestPolicy       string `mapstructure:"no_contest_policy" validate:"oneof=loss exclude"`
	TopWrestlerMinMatches int    `mapstructure:"top_wrestler_min_matches" validate:"min=0"`
}

type ScraperConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Interpreter string `mapstructure:"interpreter" validate:"required_if=Enabled true"`
	ScriptDir   string `mapstructure:"script_dir" validate:"required_if=Enabled true"`
	Script      string `mapstructure:"script" validate:"required_if=Enabled true"`
	// Schedule is an optional cron expression (seconds field included); empty disables it.
	Schedule string `mapstructure:"schedule"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}
