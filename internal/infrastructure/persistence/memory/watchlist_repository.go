package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/finlearn/finlearn-api/internal/domain"
)

// WatchlistRepository is the in-memory implementation used when no database
// is configured, and in tests. Listing order matches the SQL repository:
// newest first, symbol as tiebreaker.
type WatchlistRepository struct {
	mu        sync.RWMutex
	favorites map[string][]domain.Favorite
}

func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{
		favorites: make(map[string][]domain.Favorite),
	}
}

func (r *WatchlistRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.favorites[favorite.UserID] {
		if f.Symbol == favorite.Symbol {
			return domain.ErrFavoriteExists
		}
	}

	r.favorites[favorite.UserID] = append(r.favorites[favorite.UserID], *favorite)
	return nil
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.favorites[userID]
	favorites := make([]domain.Favorite, len(stored))
	copy(favorites, stored)

	sort.Slice(favorites, func(i, j int) bool {
		if !favorites[i].CreatedAt.Equal(favorites[j].CreatedAt) {
			return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
		}
		return favorites[i].Symbol < favorites[j].Symbol
	})

	return favorites, nil
}

func (r *WatchlistRepository) Remove(ctx context.Context, userID, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.favorites[userID]
	for i, f := range stored {
		if f.Symbol == symbol {
			r.favorites[userID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavoriteNotFound
}
