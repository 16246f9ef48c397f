// Package sqlite implements the repository interfaces on database/sql
// over a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"strings"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories hold a querier so WithTx can rebind them to a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// isUniqueViolation detects a SQLite UNIQUE constraint failure. The modernc
// driver exposes the code only through the message, so match on it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// escapeLike escapes LIKE wildcards in user input; queries using it must
// add ESCAPE '\'.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
