package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/finlearn/finlearn-api/internal/application"
	"github.com/finlearn/finlearn-api/internal/domain"
	"github.com/finlearn/finlearn-api/internal/infrastructure/catalog"
	"github.com/gin-gonic/gin"
)

// --- Mock Services ---

type MockStockService struct {
	getBySymbolFunc func(ctx context.Context, symbol string) (*domain.Stock, error)
	searchFunc      func(ctx context.Context, query string) ([]domain.SearchEntry, error)
	getPopularFunc  func(ctx context.Context) ([]domain.Stock, error)
	listSP500Func   func(ctx context.Context, page, limit int, sector string) (*application.SP500Page, error)
}

func (m *MockStockService) GetBySymbol(ctx context.Context, symbol string) (*domain.Stock, error) {
	if m.getBySymbolFunc != nil {
		return m.getBySymbolFunc(ctx, symbol)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockStockService) Search(ctx context.Context, query string) ([]domain.SearchEntry, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockStockService) GetPopular(ctx context.Context) ([]domain.Stock, error) {
	if m.getPopularFunc != nil {
		return m.getPopularFunc(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockStockService) ListSP500(ctx context.Context, page, limit int, sector string) (*application.SP500Page, error) {
	if m.listSP500Func != nil {
		return m.listSP500Func(ctx, page, limit, sector)
	}
	return nil, fmt.Errorf("not implemented")
}

type MockLessonService struct {
	listFunc       func(ctx context.Context) (*application.LessonList, error)
	getFunc        func(ctx context.Context, id string) (*domain.Lesson, error)
	categoriesFunc func(ctx context.Context) ([]domain.LessonCategory, error)
}

func (m *MockLessonService) List(ctx context.Context) (*application.LessonList, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockLessonService) Get(ctx context.Context, id string) (*domain.Lesson, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockLessonService) Categories(ctx context.Context) ([]domain.LessonCategory, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

type MockWatchlistService struct {
	addFunc    func(ctx context.Context, userID, symbol string) (*domain.Favorite, error)
	listFunc   func(ctx context.Context, userID string) ([]domain.Favorite, error)
	removeFunc func(ctx context.Context, userID, symbol string) error
}

func (m *MockWatchlistService) Add(ctx context.Context, userID, symbol string) (*domain.Favorite, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, userID, symbol)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockWatchlistService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockWatchlistService) Remove(ctx context.Context, userID, symbol string) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, userID, symbol)
	}
	return fmt.Errorf("not implemented")
}

// --- Test Setup ---

// fakeAuth stands in for JWTAuth so watchlist handlers see a fixed user.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func setupRouter(stocks StockService, lessons LessonService, watchlist WatchlistService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(stocks, lessons, watchlist, HealthInfo{Stocks: 8, Lessons: 6})
	SetupRoutes(router, handler, fakeAuth("user-1"))
	return router
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// --- Stock Tests ---

func TestHandler_SearchStocks_EmptyQueryShortCircuits(t *testing.T) {
	called := false
	mockStocks := &MockStockService{
		searchFunc: func(ctx context.Context, query string) ([]domain.SearchEntry, error) {
			called = true
			return nil, nil
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	for _, target := range []string{"/api/stocks/search", "/api/stocks/search?q=", "/api/stocks/search?q=%20%20"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", target, http.StatusOK, w.Code)
		}
		if w.Body.String() != "[]" {
			t.Errorf("%s: expected empty array body, got %s", target, w.Body.String())
		}
	}

	if called {
		t.Error("blank query must not reach the service")
	}
}

func TestHandler_SearchStocks_Success(t *testing.T) {
	mockStocks := &MockStockService{
		searchFunc: func(ctx context.Context, query string) ([]domain.SearchEntry, error) {
			return []domain.SearchEntry{{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology"}}, nil
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/search?q=apple", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var results []domain.SearchEntry
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(results) != 1 || results[0].Symbol != "AAPL" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestHandler_SearchStocks_ServiceErrorHidesCause(t *testing.T) {
	mockStocks := &MockStockService{
		searchFunc: func(ctx context.Context, query string) ([]domain.SearchEntry, error) {
			return nil, fmt.Errorf("index corrupted at offset 42")
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/search?q=apple", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Errorf("expected generic error body, got %q", resp.Error)
	}
}

func TestHandler_GetStock_NotFound(t *testing.T) {
	mockStocks := &MockStockService{
		getBySymbolFunc: func(ctx context.Context, symbol string) (*domain.Stock, error) {
			return nil, domain.ErrStockNotFound
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/zzzz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w.Body.String() != `{"error":"Stock ZZZZ not found"}` {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestHandler_GetStock_Success(t *testing.T) {
	mockStocks := &MockStockService{
		getBySymbolFunc: func(ctx context.Context, symbol string) (*domain.Stock, error) {
			return &domain.Stock{
				Symbol:  "AAPL",
				Profile: domain.Profile{Symbol: "AAPL", Name: "Apple Inc."},
			}, nil
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/aapl", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d. Body: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var stock domain.Stock
	if err := json.Unmarshal(w.Body.Bytes(), &stock); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if stock.Symbol != "AAPL" {
		t.Errorf("expected AAPL, got %s", stock.Symbol)
	}
}

func TestHandler_GetPopularStocks(t *testing.T) {
	mockStocks := &MockStockService{
		getPopularFunc: func(ctx context.Context) ([]domain.Stock, error) {
			return []domain.Stock{
				{Symbol: "AAPL", Profile: domain.Profile{Symbol: "AAPL", Name: "Apple Inc."}},
				{Symbol: "MSFT", Profile: domain.Profile{Symbol: "MSFT", Name: "Microsoft Corporation"}},
			}, nil
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/popular", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var stocks []domain.Stock
	if err := json.Unmarshal(w.Body.Bytes(), &stocks); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(stocks) != 2 {
		t.Errorf("expected 2 stocks, got %d", len(stocks))
	}
}

func TestHandler_ListSP500_PassesQueryParams(t *testing.T) {
	var gotPage, gotLimit int
	var gotSector string
	mockStocks := &MockStockService{
		listSP500Func: func(ctx context.Context, page, limit int, sector string) (*application.SP500Page, error) {
			gotPage, gotLimit, gotSector = page, limit, sector
			return &application.SP500Page{Stocks: []domain.Constituent{}, Page: page, Limit: limit}, nil
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/sp500?page=3&limit=25&sector=Energy", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotPage != 3 || gotLimit != 25 || gotSector != "Energy" {
		t.Errorf("expected (3, 25, Energy), got (%d, %d, %s)", gotPage, gotLimit, gotSector)
	}
}

func TestHandler_ListSP500_BadParamsBecomeZero(t *testing.T) {
	var gotPage, gotLimit int
	mockStocks := &MockStockService{
		listSP500Func: func(ctx context.Context, page, limit int, sector string) (*application.SP500Page, error) {
			gotPage, gotLimit = page, limit
			return &application.SP500Page{Stocks: []domain.Constituent{}}, nil
		},
	}
	router := setupRouter(mockStocks, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/sp500?page=abc&limit=", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotPage != 0 || gotLimit != 0 {
		t.Errorf("expected zero values for unparsable params, got (%d, %d)", gotPage, gotLimit)
	}
}

// --- Lesson Tests ---

func TestHandler_ListLessons_CarriesSummariesOnly(t *testing.T) {
	mockLessons := &MockLessonService{
		listFunc: func(ctx context.Context) (*application.LessonList, error) {
			return &application.LessonList{
				Categories: []domain.LessonCategory{{ID: "basics", Name: "พื้นฐาน", Count: 1}},
				Lessons: []domain.LessonSummary{{
					ID:           "invest-101",
					Title:        "การลงทุนคืออะไร",
					Category:     "basics",
					Difficulty:   domain.DifficultyBeginner,
					DurationMin:  8,
					SectionCount: 3,
					HasQuiz:      true,
				}},
			}, nil
		},
	}
	router := setupRouter(&MockStockService{}, mockLessons, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var payload struct {
		Lessons []map[string]any `json:"lessons"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(payload.Lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(payload.Lessons))
	}

	for _, key := range []string{"sections", "quiz", "key_takeaways"} {
		if _, present := payload.Lessons[0][key]; present {
			t.Errorf("summary must not carry %q", key)
		}
	}
	if payload.Lessons[0]["has_quiz"] != true {
		t.Error("expected has_quiz true in summary")
	}
}

func TestHandler_GetLesson_DetailAlwaysCarriesSectionsAndQuiz(t *testing.T) {
	library, err := catalog.DefaultLibrary()
	if err != nil {
		t.Fatalf("failed to build library: %v", err)
	}
	router := setupRouter(&MockStockService{}, application.NewLessonService(library), &MockWatchlistService{})

	for _, lesson := range library.All() {
		req := httptest.NewRequest(http.MethodGet, "/api/lessons/"+lesson.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("lesson %s: expected status %d, got %d", lesson.ID, http.StatusOK, w.Code)
		}

		var payload map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("lesson %s: failed to unmarshal response: %v", lesson.ID, err)
		}
		for _, key := range []string{"sections", "quiz"} {
			if _, present := payload[key]; !present {
				t.Errorf("lesson %s: detail response missing %q key", lesson.ID, key)
			}
		}
		if lesson.Quiz == nil && string(payload["quiz"]) != "null" {
			t.Errorf("lesson %s: expected null quiz, got %s", lesson.ID, payload["quiz"])
		}
	}
}

func TestHandler_GetLesson_NotFound(t *testing.T) {
	mockLessons := &MockLessonService{
		getFunc: func(ctx context.Context, id string) (*domain.Lesson, error) {
			return nil, domain.ErrLessonNotFound
		},
	}
	router := setupRouter(&MockStockService{}, mockLessons, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/lessons/no-such-lesson", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w.Body.String() != `{"error":"Lesson not found"}` {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestHandler_ListLessonCategories(t *testing.T) {
	mockLessons := &MockLessonService{
		categoriesFunc: func(ctx context.Context) ([]domain.LessonCategory, error) {
			return []domain.LessonCategory{
				{ID: "basics", Name: "พื้นฐาน", Icon: "🎓", Count: 2},
			}, nil
		},
	}
	router := setupRouter(&MockStockService{}, mockLessons, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/api/lessons/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var categories []domain.LessonCategory
	if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(categories) != 1 || categories[0].Count != 2 {
		t.Errorf("unexpected categories: %+v", categories)
	}
}

// --- Watchlist Tests ---

func TestHandler_AddToWatchlist_Created(t *testing.T) {
	mockWatchlist := &MockWatchlistService{
		addFunc: func(ctx context.Context, userID, symbol string) (*domain.Favorite, error) {
			if userID != "user-1" {
				t.Errorf("expected user-1 from auth middleware, got %s", userID)
			}
			favorite := domain.NewFavorite(userID, "AAPL")
			return &favorite, nil
		},
	}
	router := setupRouter(&MockStockService{}, &MockLessonService{}, mockWatchlist)

	body, _ := json.Marshal(AddFavoriteRequest{Symbol: "aapl"})
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d. Body: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var favorite domain.Favorite
	if err := json.Unmarshal(w.Body.Bytes(), &favorite); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if favorite.Symbol != "AAPL" {
		t.Errorf("expected AAPL, got %s", favorite.Symbol)
	}
}

func TestHandler_AddToWatchlist_MissingSymbol(t *testing.T) {
	router := setupRouter(&MockStockService{}, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestHandler_AddToWatchlist_UnknownSymbol(t *testing.T) {
	mockWatchlist := &MockWatchlistService{
		addFunc: func(ctx context.Context, userID, symbol string) (*domain.Favorite, error) {
			return nil, domain.ErrStockNotFound
		},
	}
	router := setupRouter(&MockStockService{}, &MockLessonService{}, mockWatchlist)

	body, _ := json.Marshal(AddFavoriteRequest{Symbol: "zzzz"})
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w.Body.String() != `{"error":"Stock ZZZZ not found"}` {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestHandler_AddToWatchlist_Duplicate(t *testing.T) {
	mockWatchlist := &MockWatchlistService{
		addFunc: func(ctx context.Context, userID, symbol string) (*domain.Favorite, error) {
			return nil, domain.ErrFavoriteExists
		},
	}
	router := setupRouter(&MockStockService{}, &MockLessonService{}, mockWatchlist)

	body, _ := json.Marshal(AddFavoriteRequest{Symbol: "AAPL"})
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestHandler_ListWatchlist(t *testing.T) {
	mockWatchlist := &MockWatchlistService{
		listFunc: func(ctx context.Context, userID string) ([]domain.Favorite, error) {
			favorite := domain.NewFavorite(userID, "TSLA")
			return []domain.Favorite{favorite}, nil
		},
	}
	router := setupRouter(&MockStockService{}, &MockLessonService{}, mockWatchlist)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var favorites []domain.Favorite
	if err := json.Unmarshal(w.Body.Bytes(), &favorites); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Symbol != "TSLA" {
		t.Errorf("unexpected favorites: %+v", favorites)
	}
}

func TestHandler_RemoveFromWatchlist(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		mockWatchlist := &MockWatchlistService{
			removeFunc: func(ctx context.Context, userID, symbol string) error {
				return nil
			},
		}
		router := setupRouter(&MockStockService{}, &MockLessonService{}, mockWatchlist)

		req := httptest.NewRequest(http.MethodDelete, "/api/watchlist/AAPL", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
		}
	})

	t.Run("missing", func(t *testing.T) {
		mockWatchlist := &MockWatchlistService{
			removeFunc: func(ctx context.Context, userID, symbol string) error {
				return domain.ErrFavoriteNotFound
			},
		}
		router := setupRouter(&MockStockService{}, &MockLessonService{}, mockWatchlist)

		req := httptest.NewRequest(http.MethodDelete, "/api/watchlist/AAPL", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}

// --- Health ---

func TestHandler_Health(t *testing.T) {
	router := setupRouter(&MockStockService{}, &MockLessonService{}, &MockWatchlistService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("expected status ok, got %v", payload["status"])
	}
	if payload["stocks"] != float64(8) || payload["lessons"] != float64(6) {
		t.Errorf("unexpected catalog sizes: %v", payload)
	}
}
