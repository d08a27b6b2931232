package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finlearn/finlearn-api/internal/domain"
)

// Repository implements domain.WatchlistRepository on top of the dialect
// abstraction. Shared queries use postgres-style $n placeholders and are
// rebound for Oracle.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(ctx context.Context, favorite *domain.Favorite) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.Dialect.InsertFavorite(ctx, tx, favorite); err != nil {
			if !errors.Is(err, domain.ErrFavoriteExists) {
				slog.Error("Failed to insert favorite", "user_id", favorite.UserID, "symbol", favorite.Symbol, "error", err)
			}
			return err
		}
		return nil
	})
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	query := r.rebind(`
        SELECT id, user_id, symbol, created_at
        FROM favorites
        WHERE user_id = $1
        ORDER BY created_at DESC, symbol
    `)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Error("Failed to list favorites", "user_id", userID, "error", err)
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			slog.Error("Failed to close rows", "error", err)
		}
	}(rows)

	favorites := make([]domain.Favorite, 0)
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.Symbol, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

func (r *Repository) Remove(ctx context.Context, userID, symbol string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := r.rebind("DELETE FROM favorites WHERE user_id = $1 AND symbol = $2")

		res, err := tx.ExecContext(ctx, query, userID, symbol)
		if err != nil {
			return fmt.Errorf("deleting favorite: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking rows affected: %w", err)
		}
		if affected == 0 {
			return domain.ErrFavoriteNotFound
		}
		return nil
	})
}

func (r *Repository) rebind(query string) string {
	if r.db.Dialect.Name() == "oracle" {
		for i := 1; i <= 10; i++ {
			query = strings.ReplaceAll(query, fmt.Sprintf("$%d", i), fmt.Sprintf(":%d", i))
		}
	}
	return query
}
