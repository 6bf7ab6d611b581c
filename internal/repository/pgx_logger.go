package repository

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger forwards pgx trace events to zerolog under component=pgx.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("component", "pgx").Logger()}
}

// Log implements tracelog.Logger. SQL text and args are only attached at trace level;
// query durations reported by pgx ride along as regular fields.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}

	fields := make(map[string]any, len(data))
	for k, v := range data {
		if level != tracelog.LogLevelTrace && (k == "sql" || k == "args") {
			continue
		}
		fields[k] = v
	}
	event.Fields(fields).Msg(msg)
}
