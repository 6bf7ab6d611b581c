package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("store not configured")
)

// MapPgError translates driver errors into domain errors.
// A missing relation or database means the store was never provisioned, and a
// malformed id can never match a row. Everything else passes through.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable, pgerrcode.InvalidCatalogName:
			return ErrNotConfigured
		case pgerrcode.InvalidTextRepresentation:
			return ErrNotFound
		}
	}
	return err
}
