// Package service holds the read use cases: it loads rows through the repositories,
// hands them to the analytics reducers and shapes the results for transport.
// Data-access failures never reach callers; they are logged and folded into empty results.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// Settings carries the analytics knobs shared by every service.
type Settings struct {
	NoContest             analytics.NoContestPolicy
	TopWrestlerMinMatches int
	// Degraded, when set, is told about every data-access failure folded into an empty result.
	Degraded func(op string, err error)
}

// WrestlerService covers single-wrestler and wrestler-listing use cases.
type WrestlerService interface {
	// GetWrestlerStats returns nil when the wrestler or its matches cannot be loaded.
	GetWrestlerStats(ctx context.Context, id string) (*model.WrestlerStats, error)
	ListWrestlersWithStats(ctx context.Context, f analytics.WrestlerFilter, page repository.Page) (repository.PageResult[model.WrestlerStats], error)
	GetWrestlerMatches(ctx context.Context, id string) ([]model.Match, error)
	ListWeightClasses(ctx context.Context) ([]int, error)
}

// TeamService covers team rollups derived from wrestler names.
type TeamService interface {
	ListTeamsWithStats(ctx context.Context) ([]model.TeamStats, error)
	TeamComparison(ctx context.Context) ([]model.TeamComparison, error)
	UniqueTeams(ctx context.Context) ([]string, error)
}

// TournamentService covers tournament summaries and detail views.
type TournamentService interface {
	ListTournamentsWithStats(ctx context.Context) ([]model.TournamentStats, error)
	// GetTournamentDetails returns nil when the tournament or its matches cannot be loaded. An empty
	// round or "all" keeps every match.
	GetTournamentDetails(ctx context.Context, id, round string) (*model.TournamentDetails, error)
	ListTournamentRefs(ctx context.Context) ([]model.TournamentRef, error)
}

// AnalyticsService covers chart series. A nil wrestlerID means every wrestler.
type AnalyticsService interface {
	Performance(ctx context.Context, wrestlerID *string) ([]model.PerformanceDataPoint, error)
	WinTypes(ctx context.Context, wrestlerID *string) ([]model.WinTypeData, error)
}

// DashboardService assembles the landing page overview.
type DashboardService interface {
	Overview(ctx context.Context) (model.DashboardOverview, error)
}
