package service

import (
	"context"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/rs/zerolog"
)

// teamService derives teams from wrestler display names; there is no team table.
type teamService struct {
	base
}

func NewTeamService(store repository.Store, settings Settings, logger zerolog.Logger) TeamService {
	return &teamService{base: newBase(store, settings, logger, "team")}
}

func (s *teamService) ListTeamsWithStats(ctx context.Context) ([]model.TeamStats, error) {
	return analytics.RollupTeams(s.allWrestlerStats(ctx), s.settings.TopWrestlerMinMatches), nil
}

func (s *teamService) TeamComparison(ctx context.Context) ([]model.TeamComparison, error) {
	teams := analytics.RollupTeams(s.allWrestlerStats(ctx), s.settings.TopWrestlerMinMatches)
	return analytics.CompareTeams(teams), nil
}

func (s *teamService) UniqueTeams(ctx context.Context) ([]string, error) {
	wrestlers, err := s.store.Wrestlers.List(ctx)
	if err != nil {
		s.degrade("wrestlers.list", err)
		return []string{}, nil
	}
	return analytics.UniqueTeams(wrestlers), nil
}
