package domain

import "testing"

func TestNewFavorite(t *testing.T) {
	favorite := NewFavorite("user-1", "AAPL")

	if favorite.ID == "" {
		t.Error("expected generated id")
	}
	if favorite.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if !favorite.IsValid() {
		t.Error("expected new favorite to be valid")
	}
}

func TestFavorite_IsValid(t *testing.T) {
	favorite := NewFavorite("user-1", "AAPL")

	favorite.Symbol = ""
	if favorite.IsValid() {
		t.Error("expected favorite without symbol to be invalid")
	}
}
