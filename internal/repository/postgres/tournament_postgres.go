package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

type tournamentRepository struct{ pool *pgxpool.Pool }

func NewTournamentRepository(pool *pgxpool.Pool) repository.TournamentRepository {
	return &tournamentRepository{pool: pool}
}

func (r *tournamentRepository) GetByID(ctx context.Context, id string) (model.Tournament, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Tournament{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id::text, name, date, created_at FROM tournaments WHERE id = $1`, id,
	)
	var out model.Tournament
	if err := row.Scan(&out.ID, &out.Name, &out.Date, &out.CreatedAt); err != nil {
		return model.Tournament{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *tournamentRepository) List(ctx context.Context) ([]model.Tournament, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id::text, name, date, created_at
		 FROM tournaments
		 ORDER BY date DESC NULLS LAST, name, id`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Tournament, 0, 16)
	for rows.Next() {
		var t model.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.Date, &t.CreatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func (r *tournamentRepository) ListRefs(ctx context.Context) ([]model.TournamentRef, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT id::text, name FROM tournaments ORDER BY name, id`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.TournamentRef, 0, 16)
	for rows.Next() {
		var t model.TournamentRef
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.TournamentRepository = (*tournamentRepository)(nil)
