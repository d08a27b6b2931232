package application

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn-api/internal/domain"
)

// WatchlistService manages per-user favorites. Symbols are validated
// against the catalog before they are stored, so the watchlist can never
// reference a stock the app does not know.
type WatchlistService struct {
	repo   domain.WatchlistRepository
	stocks domain.StockSource
}

func NewWatchlistService(repo domain.WatchlistRepository, stocks domain.StockSource) *WatchlistService {
	return &WatchlistService{
		repo:   repo,
		stocks: stocks,
	}
}

func (s *WatchlistService) Add(ctx context.Context, userID, symbol string) (*domain.Favorite, error) {
	sym := NormalizeSymbol(symbol)
	if _, ok := s.stocks.Find(sym); !ok {
		return nil, domain.ErrStockNotFound
	}

	favorite := domain.NewFavorite(userID, sym)
	if err := s.repo.Add(ctx, &favorite); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return &favorite, nil
}

func (s *WatchlistService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

func (s *WatchlistService) Remove(ctx context.Context, userID, symbol string) error {
	if err := s.repo.Remove(ctx, userID, NormalizeSymbol(symbol)); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
