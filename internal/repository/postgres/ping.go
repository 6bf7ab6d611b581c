package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

type pinger struct{ pool *pgxpool.Pool }

// NewPinger adapts pgxpool to the repository.Pinger interface.
func NewPinger(pool *pgxpool.Pool) repository.Pinger { return &pinger{pool: pool} }

func (p *pinger) Ping(ctx context.Context) error {
	if err := ensurePool(p.pool); err != nil {
		return err
	}
	return p.pool.Ping(ctx)
}

// NewStore wires every postgres repository onto one pool.
func NewStore(pool *pgxpool.Pool) repository.Store {
	return repository.Store{
		Wrestlers:   NewWrestlerRepository(pool),
		Tournaments: NewTournamentRepository(pool),
		Matches:     NewMatchRepository(pool),
		Tx:          NewTxManager(pool),
		Pinger:      NewPinger(pool),
	}
}
