package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads path (optional: a missing file falls back to defaults and env) and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Secrets are never in the file; bind them explicitly so AutomaticEnv sees them on Unmarshal.
	for _, key := range []string{"postgres.host", "postgres.user", "postgres.password"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	if err := v.BindEnv("postgres.dbname", "APP_POSTGRES_DBNAME", "APP_POSTGRES_DB"); err != nil {
		return nil, fmt.Errorf("bind env postgres.dbname: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "wrestling-analytics-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10)

	// empty logger values are filled by logger.New; registering the keys lets APP_LOGGER_* override them
	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.env", "")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)

	v.SetDefault("analytics.no_contest_policy", "loss")
	v.SetDefault("analytics.top_wrestler_min_matches", 3)

	v.SetDefault("scraper.enabled", true)
	v.SetDefault("scraper.interpreter", "python3")
	v.SetDefault("scraper.script_dir", "../scraper")
	v.SetDefault("scraper.script", "run_scraper.py")
	v.SetDefault("scraper.schedule", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
