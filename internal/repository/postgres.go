package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/maxviazov/wrestling-analytics-service/internal/config"
	"github.com/rs/zerolog"
)

// Repository owns the pgx connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// New builds the connection pool. An unreachable server is logged, not fatal: the pool
// reconnects lazily and reads fail until it is back, which the services treat as no data.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Repository, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	poolConfig, err := pgxpool.ParseConfig(DSN(cfg.Postgres))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newPgxLogger(*logger),
		LogLevel: traceLevel(logger.GetLevel()),
	}

	pg := cfg.Postgres
	poolConfig.MaxConns = pg.MaxConns
	poolConfig.MinConns = pg.MinConns
	poolConfig.MaxConnLifetime = time.Duration(pg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = time.Duration(pg.MaxConnIdleTime) * time.Second
	poolConfig.HealthCheckPeriod = time.Duration(pg.HealthCheckPeriod) * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("host", pg.Host).Str("db", pg.DBName).
			Msg("postgres not reachable at startup; serving empty results until it is")
	} else {
		logger.Info().
			Str("host", pg.Host).
			Int("port", pg.Port).
			Str("user", pg.User).
			Str("db", pg.DBName).
			Msg("Successfully connected to PostgreSQL")
	}

	return &Repository{pool: pool}, nil
}

// DSN assembles a postgres URL with proper escaping of credentials.
func DSN(pg config.PostgresConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", pg.Host, pg.Port),
		Path:   pg.DBName,
	}
	if pg.User != "" || pg.Password != "" {
		u.User = url.UserPassword(pg.User, pg.Password)
	}
	q := u.Query()
	if pg.SSLMode != "" {
		q.Set("sslmode", pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func traceLevel(l zerolog.Level) tracelog.LogLevel {
	switch {
	case l <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case l <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case l <= zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case l <= zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}

// Pool exposes the pool to the postgres repositories.
func (r *Repository) Pool() *pgxpool.Pool { return r.pool }

// Close releases every pooled connection.
func (r *Repository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
