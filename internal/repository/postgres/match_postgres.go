package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
)

type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

const matchColumns = `m.id::text, m.tournament_id::text, m.wrestler1_id::text, m.wrestler2_id::text,
	m.winner_id::text, m.wrestler1_score, m.wrestler2_score, m.match_type, m.round, m.created_at`

// joinedMatchSelect adds tournament and wrestler names. Dangling references yield empty names.
const joinedMatchSelect = `SELECT ` + matchColumns + `,
	COALESCE(t.name, ''), t.date, COALESCE(w1.name, ''), COALESCE(w2.name, ''), COALESCE(ww.name, '')
FROM matches m
LEFT JOIN tournaments t ON t.id = m.tournament_id
LEFT JOIN wrestlers w1 ON w1.id = m.wrestler1_id
LEFT JOIN wrestlers w2 ON w2.id = m.wrestler2_id
LEFT JOIN wrestlers ww ON ww.id = m.winner_id`

func (r *matchRepository) ListByWrestler(ctx context.Context, wrestlerID string) ([]model.Match, error) {
	return r.queryJoined(ctx,
		joinedMatchSelect+`
		 WHERE m.wrestler1_id = $1 OR m.wrestler2_id = $1
		 ORDER BY m.created_at DESC, m.id`,
		wrestlerID,
	)
}

func (r *matchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]model.Match, error) {
	return r.queryJoined(ctx,
		joinedMatchSelect+`
		 WHERE m.tournament_id = $1
		 ORDER BY m.created_at ASC, m.id`,
		tournamentID,
	)
}

func (r *matchRepository) ListWithTournamentDates(ctx context.Context, wrestlerID *string) ([]model.Match, error) {
	return r.queryJoined(ctx,
		joinedMatchSelect+`
		 WHERE $1::uuid IS NULL OR m.wrestler1_id = $1::uuid OR m.wrestler2_id = $1::uuid
		 ORDER BY m.created_at ASC, m.id`,
		wrestlerID,
	)
}

func (r *matchRepository) ListDecided(ctx context.Context, wrestlerID *string) ([]model.Match, error) {
	return r.queryJoined(ctx,
		joinedMatchSelect+`
		 WHERE m.winner_id IS NOT NULL AND ($1::uuid IS NULL OR m.winner_id = $1::uuid)
		 ORDER BY m.created_at ASC, m.id`,
		wrestlerID,
	)
}

func (r *matchRepository) ListAll(ctx context.Context) ([]model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT `+matchColumns+` FROM matches m ORDER BY m.created_at ASC, m.id`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	res := make([]model.Match, 0, 256)
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(matchDest(&m)...); err != nil {
			return nil, repository.MapPgError(err)
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func (r *matchRepository) queryJoined(ctx context.Context, sql string, args ...any) ([]model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	res, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Match, error) {
		var m model.Match
		dest := append(matchDest(&m),
			&m.TournamentName, &m.TournamentDate, &m.Wrestler1Name, &m.Wrestler2Name, &m.WinnerName,
		)
		err := row.Scan(dest...)
		return m, err
	})
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return res, nil
}

func matchDest(m *model.Match) []any {
	return []any{
		&m.ID, &m.TournamentID, &m.Wrestler1ID, &m.Wrestler2ID, &m.WinnerID,
		&m.Wrestler1Score, &m.Wrestler2Score, &m.MatchType, &m.Round, &m.CreatedAt,
	}
}

var _ repository.MatchRepository = (*matchRepository)(nil)
