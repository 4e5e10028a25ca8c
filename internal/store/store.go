package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Store is the catalog's data access layer. Each method runs one statement
// on the connection pool, so a connection is held only for the duration of
// that statement.
type Store struct {
	db *sql.DB
}

// New returns a Store backed by db. The schema must already exist.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// assignments collects the SET clauses of a partial update.
type assignments struct {
	cols []string
	args []any
}

func (a *assignments) text(col string, v *string) {
	if v != nil {
		a.add(col, *v)
	}
}

func (a *assignments) optionalText(col string, v *string) {
	if v != nil {
		a.add(col, nullString(*v))
	}
}

func (a *assignments) flag(col string, v *bool) {
	if v != nil {
		a.add(col, *v)
	}
}

func (a *assignments) number(col string, v *int) {
	if v != nil {
		a.add(col, *v)
	}
}

func (a *assignments) add(col string, v any) {
	a.cols = append(a.cols, col+" = ?")
	a.args = append(a.args, v)
}

// updateRow applies a partial update to one row and refreshes updated_at.
// It reports whether a row matched; an empty assignment set matches nothing.
func (s *Store) updateRow(ctx context.Context, table string, id int64, a assignments) (bool, error) {
	if len(a.cols) == 0 {
		return false, nil
	}

	query := "UPDATE " + table + " SET " + strings.Join(a.cols, ", ") +
		", updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	result, err := s.db.ExecContext(ctx, query, append(a.args, id)...)
	if err != nil {
		return false, fmt.Errorf("updating %s: %w", table, err)
	}
	return affected(result, table)
}

// deleteRow hard-deletes one row and reports whether it existed.
func (s *Store) deleteRow(ctx context.Context, table string, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting from %s: %w", table, err)
	}
	return affected(result, table)
}

func affected(result sql.Result, table string) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected in %s: %w", table, err)
	}
	return n > 0, nil
}

func insertID(result sql.Result, what string) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting %s id: %w", what, err)
	}
	return id, nil
}
