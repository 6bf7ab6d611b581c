package repository

import (
	"context"

	"github.com/maxviazov/wrestling-analytics-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager runs several reads against one consistent snapshot.
// Repositories pick the transaction up from ctx.
type TxManager interface {
	WithinReadTx(ctx context.Context, fn TxFunc) error
}

// WrestlerRepository is the read side for wrestlers.
type WrestlerRepository interface {
	GetByID(ctx context.Context, id string) (model.Wrestler, error)
	// List returns every wrestler ordered by name.
	List(ctx context.Context) ([]model.Wrestler, error)
	// ListWeightClasses returns distinct non-null weight classes, ascending.
	ListWeightClasses(ctx context.Context) ([]int, error)
}

// TournamentRepository is the read side for tournaments.
type TournamentRepository interface {
	GetByID(ctx context.Context, id string) (model.Tournament, error)
	// List returns tournaments by date, most recent first; undated ones last.
	List(ctx context.Context) ([]model.Tournament, error)
	// ListRefs returns id/name pairs ordered by name.
	ListRefs(ctx context.Context) ([]model.TournamentRef, error)
}

// MatchRepository is the read side for matches. Joined name and date fields are filled where noted.
type MatchRepository interface {
	// ListByWrestler returns matches involving the wrestler, newest first, with
	// tournament and wrestler names joined.
	ListByWrestler(ctx context.Context, wrestlerID string) ([]model.Match, error)
	// ListByTournament returns a tournament's matches oldest first with wrestler and winner names.
	ListByTournament(ctx context.Context, tournamentID string) ([]model.Match, error)
	// ListWithTournamentDates returns matches oldest first with the tournament date joined,
	// optionally restricted to one wrestler.
	ListWithTournamentDates(ctx context.Context, wrestlerID *string) ([]model.Match, error)
	// ListAll returns every match oldest first without joins; used for bulk in-memory rollups.
	ListAll(ctx context.Context) ([]model.Match, error)
	// ListDecided returns matches that have a winner, optionally only those won by wrestlerID.
	ListDecided(ctx context.Context, wrestlerID *string) ([]model.Match, error)
}

// Store bundles the read repositories behind one value for wiring.
type Store struct {
	Wrestlers   WrestlerRepository
	Tournaments TournamentRepository
	Matches     MatchRepository
	Tx          TxManager
	Pinger      Pinger
}
