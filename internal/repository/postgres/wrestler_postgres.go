package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

type wrestlerRepository struct{ pool *pgxpool.Pool }

func NewWrestlerRepository(pool *pgxpool.Pool) repository.WrestlerRepository {
	return &wrestlerRepository{pool: pool}
}

func (r *wrestlerRepository) GetByID(ctx context.Context, id string) (model.Wrestler, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Wrestler{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id::text, name, weight_class, created_at FROM wrestlers WHERE id = $1`, id,
	)
	var out model.Wrestler
	if err := row.Scan(&out.ID, &out.Name, &out.WeightClass, &out.CreatedAt); err != nil {
		return model.Wrestler{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *wrestlerRepository) List(ctx context.Context) ([]model.Wrestler, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id::text, name, weight_class, created_at FROM wrestlers ORDER BY name, id`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Wrestler, 0, 64)
	for rows.Next() {
		var w model.Wrestler
		if err := rows.Scan(&w.ID, &w.Name, &w.WeightClass, &w.CreatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, w)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func (r *wrestlerRepository) ListWeightClasses(ctx context.Context) ([]int, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT DISTINCT weight_class FROM wrestlers WHERE weight_class IS NOT NULL ORDER BY weight_class`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]int, 0, 16)
	for rows.Next() {
		var wc int
		if err := rows.Scan(&wc); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.WrestlerRepository = (*wrestlerRepository)(nil)
