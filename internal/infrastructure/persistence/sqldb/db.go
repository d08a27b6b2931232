// Package sqldb implements the watchlist store on database/sql, with a
// small dialect layer covering the differences between the supported
// engines.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
)

// DB pairs a connection pool with the dialect it speaks. Shared queries are
// written with postgres placeholders and rebound by the repository when the
// dialect needs it.
type DB struct {
	*sql.DB
	Dialect Dialect
}

func New(db *sql.DB, dialect Dialect) *DB {
	return &DB{
		DB:      db,
		Dialect: dialect,
	}
}

// WithTx runs fn inside a transaction. Watchlist writes are single
// statements, so the transaction exists to guarantee all-or-nothing against
// a failed commit; any error or panic in fn rolls back, and a panic keeps
// propagating after the rollback.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	return nil
}
