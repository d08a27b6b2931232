package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFavoriteExists   = errors.New("symbol already in watchlist")
	ErrFavoriteNotFound = errors.New("symbol not in watchlist")
)

// Favorite is one watchlist entry. A user can hold a symbol at most once.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFavorite(userID, symbol string) Favorite {
	return Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		Symbol:    symbol,
		CreatedAt: time.Now(),
	}
}

func (f Favorite) IsValid() bool {
	return f.ID != "" && f.UserID != "" && f.Symbol != ""
}

// WatchlistRepository defines the interface for watchlist persistence.
// All methods accept context.Context to enable proper timeout handling and
// cancellation propagation.
//
// Add returns ErrFavoriteExists when the (user, symbol) pair is already
// stored; Remove returns ErrFavoriteNotFound when it is not.
type WatchlistRepository interface {
	Add(ctx context.Context, favorite *Favorite) error
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Remove(ctx context.Context, userID, symbol string) error
}
