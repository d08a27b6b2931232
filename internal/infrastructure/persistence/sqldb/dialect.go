package sqldb

import (
	"context"
	"database/sql"

	"github.com/finlearn/finlearn-api/internal/domain"
)

// Dialect isolates the SQL that differs between the supported databases.
// InsertFavorite must translate the database's unique-constraint violation
// into domain.ErrFavoriteExists.
type Dialect interface {
	Name() string
	Migrate(ctx context.Context, db *sql.DB) error
	InsertFavorite(ctx context.Context, tx *sql.Tx, f *domain.Favorite) error
}
