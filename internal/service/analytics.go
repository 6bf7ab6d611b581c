package service

import (
	"context"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/rs/zerolog"
)

type analyticsService struct {
	base
}

func NewAnalyticsService(store repository.Store, settings Settings, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{base: newBase(store, settings, logger, "analytics")}
}

func (s *analyticsService) Performance(ctx context.Context, wrestlerID *string) ([]model.PerformanceDataPoint, error) {
	id, err := optionalID(wrestlerID)
	if err != nil {
		return nil, err
	}
	matches, err := s.store.Matches.ListWithTournamentDates(ctx, id)
	if err != nil {
		s.degrade("matches.with_dates", err)
		return []model.PerformanceDataPoint{}, nil
	}
	return analytics.BucketPerformance(matches, deref(id)), nil
}

func (s *analyticsService) WinTypes(ctx context.Context, wrestlerID *string) ([]model.WinTypeData, error) {
	id, err := optionalID(wrestlerID)
	if err != nil {
		return nil, err
	}
	matches, err := s.store.Matches.ListDecided(ctx, id)
	if err != nil {
		s.degrade("matches.decided", err)
		return []model.WinTypeData{}, nil
	}
	return analytics.WinTypes(matches, deref(id)), nil
}

// optionalID validates and canonicalizes a wrestler filter; nil means no filter.
func optionalID(id *string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	canon, err := validateID("wrestler_id", *id)
	if err != nil {
		return nil, err
	}
	return &canon, nil
}

func deref(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}
