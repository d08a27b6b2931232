package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/finlearn/finlearn-api/internal/domain"
	"github.com/finlearn/finlearn-api/internal/infrastructure/persistence/sqldb/migrations"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

func (d *OracleDialect) Migrate(ctx context.Context, db *sql.DB) error {
	// Goose does not support Oracle, so we read the SQL file and execute the
	// statements ourselves. Statements are separated by '/' as in standard
	// Oracle scripts.
	content, err := migrations.OracleFS.ReadFile("oracle/20240101000000_create_favorites.sql")
	if err != nil {
		return fmt.Errorf("reading migration file: %w", err)
	}

	statements := strings.Split(string(content), "/")

	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			// ORA-00955: name is already used by an existing object
			if !strings.Contains(err.Error(), "ORA-00955") {
				return fmt.Errorf("migrating: %s: %w", stmt, err)
			}
		}
	}
	return nil
}

func (d *OracleDialect) InsertFavorite(ctx context.Context, tx *sql.Tx, f *domain.Favorite) error {
	query := `INSERT INTO favorites (id, user_id, symbol, created_at)
             VALUES (:1, :2, :3, :4)`

	_, err := tx.ExecContext(ctx, query, f.ID, f.UserID, f.Symbol, f.CreatedAt)
	if err != nil {
		// ORA-00001: unique constraint violated
		if strings.Contains(err.Error(), "ORA-00001") {
			return domain.ErrFavoriteExists
		}
		return err
	}
	return nil
}
