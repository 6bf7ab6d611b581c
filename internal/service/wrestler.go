package service

import (
	"context"
	"time"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/rs/zerolog"
)

type wrestlerService struct {
	base
}

func NewWrestlerService(store repository.Store, settings Settings, logger zerolog.Logger) WrestlerService {
	return &wrestlerService{base: newBase(store, settings, logger, "wrestler")}
}

// GetWrestlerStats returns nil when either the wrestler or its matches cannot be read;
// a record is never computed from a partial read.
func (s *wrestlerService) GetWrestlerStats(ctx context.Context, id string) (*model.WrestlerStats, error) {
	id, err := validateID("id", id)
	if err != nil {
		return nil, err
	}

	var (
		wrestler model.Wrestler
		matches  []model.Match
		loaded   bool
	)
	s.readTx(ctx, func(ctx context.Context) error {
		var err error
		wrestler, err = s.store.Wrestlers.GetByID(ctx, id)
		if err != nil {
			s.degrade("wrestlers.get", err)
			return errFolded
		}
		matches, err = s.store.Matches.ListByWrestler(ctx, id)
		if err != nil {
			s.degrade("matches.by_wrestler", err)
			return errFolded
		}
		loaded = true
		return nil
	})
	if !loaded {
		return nil, nil
	}

	stats := analytics.ReduceWrestlerStats(wrestler, matches, s.settings.NoContest)
	return &stats, nil
}

func (s *wrestlerService) ListWrestlersWithStats(ctx context.Context, f analytics.WrestlerFilter, page repository.Page) (repository.PageResult[model.WrestlerStats], error) {
	if err := validateFilter(f); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("wrestler filter validation failed")
		return repository.PageResult[model.WrestlerStats]{}, err
	}
	start := time.Now()
	p := normalizePage(page)

	all := s.allWrestlerStats(ctx)
	filtered := analytics.FilterWrestlers(all, f)
	res := repository.Window(filtered, p)

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("wrestlers", len(all)).
		Int("matched", res.Total).
		Int("limit", p.Limit).
		Int("offset", p.Offset).
		Msg("wrestler listing computed")
	return res, nil
}

func (s *wrestlerService) GetWrestlerMatches(ctx context.Context, id string) ([]model.Match, error) {
	id, err := validateID("id", id)
	if err != nil {
		return nil, err
	}
	matches, err := s.store.Matches.ListByWrestler(ctx, id)
	if err != nil {
		s.degrade("matches.by_wrestler", err)
		return []model.Match{}, nil
	}
	return matches, nil
}

func (s *wrestlerService) ListWeightClasses(ctx context.Context) ([]int, error) {
	classes, err := s.store.Wrestlers.ListWeightClasses(ctx)
	if err != nil {
		s.degrade("wrestlers.weight_classes", err)
		return []int{}, nil
	}
	return classes, nil
}
