package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all pgsql
// repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// isUniqueViolation reports whether err is a unique-constraint
// violation (duplicate username/email or lookup name+kind).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a foreign-key
// violation (e.g. a service referencing a missing platform).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
