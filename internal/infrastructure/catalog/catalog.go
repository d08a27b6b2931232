// Package catalog holds the bundled stock and lesson data. Everything here
// is built once at startup and never mutated afterwards, so the catalog can
// be shared across requests without locking.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finlearn/finlearn-api/internal/domain"
)

// Catalog implements domain.StockSource and domain.ConstituentSource over
// an in-memory data set.
type Catalog struct {
	stocks       map[string]*domain.Stock
	entries      []domain.SearchEntry
	popular      []string
	constituents []domain.Constituent
}

// New builds a catalog from stock records, the curated list of popular
// symbols and the S&P 500 snapshot. Symbols are normalized to uppercase;
// duplicates and popular symbols missing from the data set are rejected.
func New(stocks []domain.Stock, popular []string, constituents []domain.Constituent) (*Catalog, error) {
	c := &Catalog{
		stocks:  make(map[string]*domain.Stock, len(stocks)),
		entries: make([]domain.SearchEntry, 0, len(stocks)),
	}

	for i := range stocks {
		s := stocks[i]
		s.Symbol = strings.ToUpper(s.Symbol)
		s.Profile.Symbol = s.Symbol
		if !s.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStock, s.Symbol)
		}
		if _, exists := c.stocks[s.Symbol]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateSymbol, s.Symbol)
		}
		c.stocks[s.Symbol] = &s
		c.entries = append(c.entries, domain.SearchEntry{
			Symbol:   s.Symbol,
			Name:     s.Profile.Name,
			Sector:   s.Profile.Sector,
			Exchange: s.Profile.Exchange,
			LogoURL:  s.Profile.LogoURL,
		})
	}

	for _, sym := range popular {
		sym = strings.ToUpper(sym)
		if _, ok := c.stocks[sym]; !ok {
			return nil, fmt.Errorf("popular symbol %s not in catalog: %w", sym, domain.ErrStockNotFound)
		}
		c.popular = append(c.popular, sym)
	}

	c.constituents = make([]domain.Constituent, len(constituents))
	copy(c.constituents, constituents)
	sort.Slice(c.constituents, func(i, j int) bool {
		return c.constituents[i].Symbol < c.constituents[j].Symbol
	})

	return c, nil
}

// Find looks up a record by uppercase symbol.
func (c *Catalog) Find(symbol string) (*domain.Stock, bool) {
	s, ok := c.stocks[symbol]
	return s, ok
}

// Entries returns the search projections in catalog order.
func (c *Catalog) Entries() []domain.SearchEntry {
	return c.entries
}

// Popular returns the curated records in their curated order.
func (c *Catalog) Popular() []domain.Stock {
	out := make([]domain.Stock, 0, len(c.popular))
	for _, sym := range c.popular {
		out = append(out, *c.stocks[sym])
	}
	return out
}

// Constituents returns the S&P 500 snapshot ordered by symbol.
func (c *Catalog) Constituents() []domain.Constituent {
	return c.constituents
}

// Size reports the number of stock records, used by the health endpoint.
func (c *Catalog) Size() int {
	return len(c.stocks)
}
