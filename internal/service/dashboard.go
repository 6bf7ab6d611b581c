package service

import (
	"context"
	"time"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	base
}

func NewDashboardService(store repository.Store, settings Settings, logger zerolog.Logger) DashboardService {
	return &dashboardService{base: newBase(store, settings, logger, "dashboard")}
}

// Overview fetches its parts concurrently. Each part folds its own failure, so the
// group never cancels siblings and one bad read only zeroes its own section.
func (s *dashboardService) Overview(ctx context.Context) (model.DashboardOverview, error) {
	start := time.Now()
	out := model.DashboardOverview{
		Performance: []model.PerformanceDataPoint{},
		WinTypes:    []model.WinTypeData{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wrestlers, err := s.store.Wrestlers.List(gctx)
		if err != nil {
			s.degrade("wrestlers.list", err)
			return nil
		}
		out.WrestlerCount = len(wrestlers)
		out.TeamCount = len(analytics.UniqueTeams(wrestlers))
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.store.Tournaments.ListRefs(gctx)
		if err != nil {
			s.degrade("tournaments.refs", err)
			return nil
		}
		out.TournamentCount = len(tournaments)
		return nil
	})
	g.Go(func() error {
		matches, err := s.store.Matches.ListWithTournamentDates(gctx, nil)
		if err != nil {
			s.degrade("matches.with_dates", err)
			return nil
		}
		out.Performance = analytics.BucketPerformance(matches, "")
		return nil
	})
	g.Go(func() error {
		matches, err := s.store.Matches.ListDecided(gctx, nil)
		if err != nil {
			s.degrade("matches.decided", err)
			return nil
		}
		out.WinTypes = analytics.WinTypes(matches, "")
		return nil
	})
	_ = g.Wait()

	s.log.Debug().Dur("took", time.Since(start)).Int("wrestlers", out.WrestlerCount).Msg("dashboard overview computed")
	return out, nil
}
