package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/config"
	"github.com/maxviazov/wrestling-analytics-service/internal/handler"
	"github.com/maxviazov/wrestling-analytics-service/internal/logger"
	"github.com/maxviazov/wrestling-analytics-service/internal/metrics"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository/postgres"
	"github.com/maxviazov/wrestling-analytics-service/internal/scheduler"
	"github.com/maxviazov/wrestling-analytics-service/internal/scraper"
	"github.com/maxviazov/wrestling-analytics-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("service stopped with error")
	}
}

func run(cfg *config.Config, appLogger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy, err := analytics.ParseNoContestPolicy(cfg.Analytics.NoContestPolicy)
	if err != nil {
		return err
	}

	store := repository.NewUnconfiguredStore()
	if cfg.Postgres.Configured() {
		repo, err := repository.New(ctx, cfg, &appLogger)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer repo.Close()
		store = postgres.NewStore(repo.Pool())
	} else {
		appLogger.Warn().Msg("postgres credentials missing; serving empty results")
	}

	var m *metrics.Metrics
	settings := service.Settings{
		NoContest:             policy,
		TopWrestlerMinMatches: cfg.Analytics.TopWrestlerMinMatches,
	}
	if cfg.Metrics.Enabled {
		m = metrics.New()
		settings.Degraded = m.Degraded
	}

	var recorder scraper.Recorder
	if m != nil {
		recorder = m
	}
	launcher := scraper.New(cfg.Scraper, appLogger, recorder)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), handler.AccessLog(appLogger))
	deps := handler.Dependencies{
		Pinger:      store.Pinger,
		Wrestlers:   service.NewWrestlerService(store, settings, appLogger),
		Teams:       service.NewTeamService(store, settings, appLogger),
		Tournaments: service.NewTournamentService(store, settings, appLogger),
		Analytics:   service.NewAnalyticsService(store, settings, appLogger),
		Dashboard:   service.NewDashboardService(store, settings, appLogger),
		Scraper:     launcher,
	}
	if m != nil {
		engine.Use(m.Middleware())
		deps.Metrics = m.Handler()
		deps.MetricsPath = cfg.Metrics.Path
	}
	handler.Register(engine, deps)

	var cron *scheduler.Runner
	if cfg.Scraper.Enabled && cfg.Scraper.Schedule != "" {
		cron = scheduler.New(ctx, appLogger)
		_, err := cron.Add("scraper", cfg.Scraper.Schedule, func(ctx context.Context) {
			if launcher.Running() {
				appLogger.Info().Msg("previous scrape still running; skipping scheduled launch")
				return
			}
			if _, err := launcher.Launch(ctx, "schedule"); err != nil {
				appLogger.Error().Err(err).Msg("scheduled scraper launch failed")
			}
		})
		if err != nil {
			return fmt.Errorf("scraper schedule %q: %w", cfg.Scraper.Schedule, err)
		}
		cron.Start()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().
			Str("addr", srv.Addr).
			Str("version", cfg.App.Version).
			Str("no_contest_policy", string(policy)).
			Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if cron != nil {
		cron.Stop()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	// give an in-flight scrape what is left of the shutdown budget, then leave it detached
	if launcher.Running() {
		appLogger.Info().Msg("waiting for running scraper to exit")
		if err := launcher.Wait(shutdownCtx); err != nil {
			appLogger.Warn().Err(err).Msg("scraper still running; leaving it detached")
		}
	}
	appLogger.Info().Msg("service stopped")
	return nil
}
