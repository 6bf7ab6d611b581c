package service

import (
	"context"
	"strings"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/rs/zerolog"
)

type tournamentService struct {
	base
}

func NewTournamentService(store repository.Store, settings Settings, logger zerolog.Logger) TournamentService {
	return &tournamentService{base: newBase(store, settings, logger, "tournament")}
}

// ListTournamentsWithStats summarizes every tournament from a single joined match read.
// If either read fails the whole listing is empty.
func (s *tournamentService) ListTournamentsWithStats(ctx context.Context) ([]model.TournamentStats, error) {
	var (
		tournaments []model.Tournament
		matches     []model.Match
	)
	s.readTx(ctx, func(ctx context.Context) error {
		var err error
		tournaments, err = s.store.Tournaments.List(ctx)
		if err != nil {
			s.degrade("tournaments.list", err)
			tournaments = nil
			return errFolded
		}
		matches, err = s.store.Matches.ListWithTournamentDates(ctx, nil)
		if err != nil {
			s.degrade("matches.with_dates", err)
			tournaments, matches = nil, nil
			return errFolded
		}
		return nil
	})

	byTournament := make(map[string][]model.Match, len(tournaments))
	for _, m := range matches {
		if m.TournamentID != nil {
			byTournament[*m.TournamentID] = append(byTournament[*m.TournamentID], m)
		}
	}
	out := make([]model.TournamentStats, 0, len(tournaments))
	for _, t := range tournaments {
		out = append(out, analytics.SummarizeTournament(t, byTournament[t.ID]))
	}
	return out, nil
}

func (s *tournamentService) GetTournamentDetails(ctx context.Context, id, round string) (*model.TournamentDetails, error) {
	id, err := validateID("id", id)
	if err != nil {
		return nil, err
	}

	var (
		tournament model.Tournament
		matches    []model.Match
		loaded     bool
	)
	s.readTx(ctx, func(ctx context.Context) error {
		var err error
		tournament, err = s.store.Tournaments.GetByID(ctx, id)
		if err != nil {
			s.degrade("tournaments.get", err)
			return errFolded
		}
		matches, err = s.store.Matches.ListByTournament(ctx, id)
		if err != nil {
			s.degrade("matches.by_tournament", err)
			return errFolded
		}
		loaded = true
		return nil
	})
	if !loaded {
		return nil, nil
	}

	details := analytics.DetailTournament(tournament, matches)
	details.Matches = analytics.FilterMatchesByRound(details.Matches, strings.TrimSpace(round))
	return &details, nil
}

func (s *tournamentService) ListTournamentRefs(ctx context.Context) ([]model.TournamentRef, error) {
	refs, err := s.store.Tournaments.ListRefs(ctx)
	if err != nil {
		s.degrade("tournaments.refs", err)
		return []model.TournamentRef{}, nil
	}
	return refs, nil
}
