package logger_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/wrestling-analytics-service/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logger.Config
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "production defaults",
			config: &logger.Config{
				ServiceName: "test-service",
				Env:         "prod",
				Fields:      map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:        "invalid env",
			config:      &logger.Config{Env: "wrong-env", Level: "debug"},
			expectError: true,
		},
		{
			name:        "invalid level",
			config:      &logger.Config{Env: "prod", Level: "invalid-level"},
			expectError: true,
		},
		{
			name:        "invalid time format",
			config:      &logger.Config{Env: "prod", TimeFormat: "iso"},
			expectError: true,
		},
		{
			name: "dev console with debug file",
			config: &logger.Config{
				Env:       "dev",
				DebugFile: filepath.Join(t.TempDir(), "logs", "debug.log"),
			},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name: "staging warn to stderr",
			config: &logger.Config{
				Env:          "staging",
				Level:        "warn",
				OutputTarget: "stderr",
				TimeFormat:   "unix",
			},
			wantLevel: zerolog.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.config)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.Equal(t, tt.wantLevel, l.GetLevel())
		})
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	cfg := &logger.Config{}
	_, err := logger.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.OutputTarget)
	assert.Equal(t, "ts", cfg.TimeField)
	assert.Equal(t, "wrestling-analytics-service", cfg.ServiceName)
	assert.True(t, cfg.Stacktrace)
	assert.False(t, cfg.WithCaller)
	assert.Empty(t, cfg.DebugFile)
}
