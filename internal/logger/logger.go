// Package logger builds the process-wide zerolog logger from configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config describes how the root logger is built. Empty fields get env-dependent defaults.
type Config struct {
	Level          string                 `mapstructure:"level" json:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Format         string                 `mapstructure:"format" json:"format,omitempty" validate:"omitempty,oneof=json console"`
	OutputTarget   string                 `mapstructure:"output_target" json:"outputTarget,omitempty" validate:"omitempty,oneof=stdout stderr"`
	TimeField      string                 `mapstructure:"time_field" json:"timeField,omitempty"`
	TimeFormat     string                 `mapstructure:"time_format" json:"timeFormat,omitempty" validate:"omitempty,oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName    string                 `mapstructure:"service_name" json:"serviceName,omitempty"`
	ServiceVersion string                 `mapstructure:"service_version" json:"serviceVersion,omitempty"`
	Env            string                 `mapstructure:"env" json:"env,omitempty" validate:"omitempty,oneof=dev test staging prod"`
	WithCaller     bool                   `mapstructure:"with_caller" json:"withCaller,omitempty"`
	Stacktrace     bool                   `mapstructure:"stacktrace" json:"stacktrace,omitempty"`
	DebugFile      string                 `mapstructure:"debug_file" json:"debugFile,omitempty"`
	Fields         map[string]interface{} `mapstructure:"fields" json:"fields,omitempty"`
}

// New validates cfg, fills defaults and returns the configured logger.
// It also sets zerolog's global level and time settings.
func New(cfg *Config) (zerolog.Logger, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}
	cfg.setDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = timeFormat(cfg.TimeFormat)

	logger := zerolog.New(cfg.writer()).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env).
		Logger()

	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	if cfg.Stacktrace {
		logger = logger.With().Stack().Logger()
	}
	if len(cfg.Fields) > 0 {
		logger = logger.With().Fields(cfg.Fields).Logger()
	}

	zerolog.SetGlobalLevel(level)
	return logger.Level(level), nil
}

// writer picks the sink: JSON or console on the chosen stream, plus an append-only
// debug file in dev when one is configured and can be opened.
func (c *Config) writer() io.Writer {
	var out io.Writer = os.Stdout
	if c.OutputTarget == "stderr" {
		out = os.Stderr
	}
	if c.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat(c.TimeFormat)}
	}
	if c.Env != "dev" || c.DebugFile == "" {
		return out
	}
	if err := os.MkdirAll(filepath.Dir(c.DebugFile), 0o755); err != nil {
		return out
	}
	file, err := os.OpenFile(c.DebugFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return out
	}
	return zerolog.MultiLevelWriter(out, file)
}

func timeFormat(name string) string {
	switch name {
	case "rfc3339":
		return "2006-01-02T15:04:05Z07:00"
	case "unix":
		return zerolog.TimeFormatUnix
	case "unix_ms":
		return zerolog.TimeFormatUnixMs
	default:
		return "2006-01-02T15:04:05.999999999Z07:00"
	}
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}
	if c.OutputTarget == "" {
		c.OutputTarget = "stdout"
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339nano"
	}
	// dev gets caller info, everything else gets stacks on errors
	if c.Env == "dev" {
		c.WithCaller = true
	} else {
		c.Stacktrace = true
	}
	if c.ServiceName == "" {
		c.ServiceName = "wrestling-analytics-service"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}
	if c.DebugFile == "" && c.Env == "dev" {
		c.DebugFile = "logs/debug.log"
	}
}
