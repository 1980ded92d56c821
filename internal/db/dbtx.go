package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql that repositories need, satisfied by
// both *sql.DB and *sql.Tx. A repository built over a DBTX works standalone
// and inside a unit of work with the same code.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
