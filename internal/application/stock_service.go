package application

import (
	"context"
	"strings"

	"github.com/finlearn/finlearn-api/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// StockService answers the three catalog query shapes plus the paginated
// S&P 500 listing.
type StockService struct {
	stocks       domain.StockSource
	constituents domain.ConstituentSource
}

func NewStockService(stocks domain.StockSource, constituents domain.ConstituentSource) *StockService {
	return &StockService{
		stocks:       stocks,
		constituents: constituents,
	}
}

// GetBySymbol returns the record for a ticker symbol, matching
// case-insensitively. Absence is domain.ErrStockNotFound, not a partial
// match or a fuzzy result.
func (s *StockService) GetBySymbol(ctx context.Context, symbol string) (*domain.Stock, error) {
	sym := NormalizeSymbol(symbol)
	stock, ok := s.stocks.Find(sym)
	if !ok {
		return nil, domain.ErrStockNotFound
	}
	return stock, nil
}

// Search performs a case-insensitive substring match against symbol, name
// and sector. An empty or whitespace query short-circuits to an empty
// result so callers can never receive the whole catalog by accident.
// Results keep the catalog's native order; there is no ranking and no cap.
func (s *StockService) Search(ctx context.Context, query string) ([]domain.SearchEntry, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.SearchEntry{}, nil
	}

	results := make([]domain.SearchEntry, 0)
	for _, e := range s.stocks.Entries() {
		if strings.Contains(strings.ToLower(e.Symbol), q) ||
			strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Sector), q) {
			results = append(results, e)
		}
	}
	return results, nil
}

// GetPopular returns the curated landing-page selection. The selection is
// static, so repeated calls always return the same sequence.
func (s *StockService) GetPopular(ctx context.Context) ([]domain.Stock, error) {
	return s.stocks.Popular(), nil
}

// SP500Page is one page of the index listing.
type SP500Page struct {
	Stocks     []domain.Constituent `json:"stocks"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
}

// ListSP500 pages through the index snapshot. Page values below 1 become 1,
// limits below 1 fall back to the default and limits above 100 are clamped.
// An optional sector filters by case-insensitive exact match. A page past
// the end yields empty stocks, not an error.
func (s *StockService) ListSP500(ctx context.Context, page, limit int, sector string) (*SP500Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	all := s.constituents.Constituents()
	filtered := all
	if sector != "" {
		filtered = make([]domain.Constituent, 0)
		for _, c := range all {
			if strings.EqualFold(c.Sector, sector) {
				filtered = append(filtered, c)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageStocks := make([]domain.Constituent, end-start)
	copy(pageStocks, filtered[start:end])

	return &SP500Page{
		Stocks:     pageStocks,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// NormalizeSymbol canonicalizes user-supplied ticker input to the catalog's
// uppercase key form.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
