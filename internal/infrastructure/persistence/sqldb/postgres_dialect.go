package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/finlearn/finlearn-api/internal/domain"
	"github.com/finlearn/finlearn-api/internal/infrastructure/persistence/sqldb/migrations"
	"github.com/pressly/goose/v3"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.PostgresFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "postgres"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}

func (d *PostgresDialect) InsertFavorite(ctx context.Context, tx *sql.Tx, f *domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, symbol, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := tx.ExecContext(ctx, query, f.ID, f.UserID, f.Symbol, f.CreatedAt)
	if err != nil {
		// 23505 = unique_violation
		if strings.Contains(err.Error(), "23505") {
			return domain.ErrFavoriteExists
		}
		return err
	}
	return nil
}
