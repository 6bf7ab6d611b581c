package repository

import (
	"context"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

// unconfigured backs every repository when no database credentials are present.
// All reads fail with ErrNotConfigured and services fold that into empty results.
type unconfigured struct{}

// NewUnconfiguredStore returns a Store whose every call reports ErrNotConfigured.
func NewUnconfiguredStore() Store {
	u := unconfigured{}
	return Store{Wrestlers: u, Tournaments: tournamentsUnconfigured{}, Matches: u, Tx: u, Pinger: u}
}

func (unconfigured) Ping(context.Context) error { return ErrNotConfigured }

func (unconfigured) WithinReadTx(context.Context, TxFunc) error { return ErrNotConfigured }

func (unconfigured) GetByID(context.Context, string) (model.Wrestler, error) {
	return model.Wrestler{}, ErrNotConfigured
}
func (unconfigured) List(context.Context) ([]model.Wrestler, error) { return nil, ErrNotConfigured }
func (unconfigured) ListWeightClasses(context.Context) ([]int, error) {
	return nil, ErrNotConfigured
}

func (unconfigured) ListByWrestler(context.Context, string) ([]model.Match, error) {
	return nil, ErrNotConfigured
}
func (unconfigured) ListByTournament(context.Context, string) ([]model.Match, error) {
	return nil, ErrNotConfigured
}
func (unconfigured) ListWithTournamentDates(context.Context, *string) ([]model.Match, error) {
	return nil, ErrNotConfigured
}
func (unconfigured) ListAll(context.Context) ([]model.Match, error) { return nil, ErrNotConfigured }
func (unconfigured) ListDecided(context.Context, *string) ([]model.Match, error) {
	return nil, ErrNotConfigured
}

type tournamentsUnconfigured struct{}

func (tournamentsUnconfigured) GetByID(context.Context, string) (model.Tournament, error) {
	return model.Tournament{}, ErrNotConfigured
}
func (tournamentsUnconfigured) List(context.Context) ([]model.Tournament, error) {
	return nil, ErrNotConfigured
}
func (tournamentsUnconfigured) ListRefs(context.Context) ([]model.TournamentRef, error) {
	return nil, ErrNotConfigured
}

var (
	_ WrestlerRepository   = unconfigured{}
	_ MatchRepository      = unconfigured{}
	_ TxManager            = unconfigured{}
	_ Pinger               = unconfigured{}
	_ TournamentRepository = tournamentsUnconfigured{}
)
