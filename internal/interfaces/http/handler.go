package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/finlearn/finlearn-api/internal/application"
	"github.com/finlearn/finlearn-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// StockService answers the catalog read paths: exact lookup, substring
// search, the curated popular selection and the paginated index snapshot.
type StockService interface {
	GetBySymbol(ctx context.Context, symbol string) (*domain.Stock, error)
	Search(ctx context.Context, query string) ([]domain.SearchEntry, error)
	GetPopular(ctx context.Context) ([]domain.Stock, error)
	ListSP500(ctx context.Context, page, limit int, sector string) (*application.SP500Page, error)
}

// LessonService serves the lesson library; listings carry summaries, Get
// returns the full body.
type LessonService interface {
	List(ctx context.Context) (*application.LessonList, error)
	Get(ctx context.Context, id string) (*domain.Lesson, error)
	Categories(ctx context.Context) ([]domain.LessonCategory, error)
}

// WatchlistService manages the authenticated user's favorites; symbols are
// validated against the catalog before they are stored.
type WatchlistService interface {
	Add(ctx context.Context, userID, symbol string) (*domain.Favorite, error)
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	Remove(ctx context.Context, userID, symbol string) error
}

// HealthInfo carries the static catalog sizes reported by /health.
type HealthInfo struct {
	Stocks  int
	Lessons int
}

type Handler struct {
	stocks    StockService
	lessons   LessonService
	watchlist WatchlistService
	health    HealthInfo
}

func NewHandler(stocks StockService, lessons LessonService, watchlist WatchlistService, health HealthInfo) *Handler {
	return &Handler{
		stocks:    stocks,
		lessons:   lessons,
		watchlist: watchlist,
		health:    health,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type AddFavoriteRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// internalError hides the cause from the client; the real error is only
// logged server-side.
func internalError(c *gin.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	slog.ErrorContext(c.Request.Context(), msg, args...)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// SearchStocks handles GET /api/stocks/search. A missing or blank q yields
// an empty array without touching the service; search never 404s.
func (h *Handler) SearchStocks(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusOK, []domain.SearchEntry{})
		return
	}

	results, err := h.stocks.Search(c.Request.Context(), query)
	if err != nil {
		internalError(c, "Failed to search stocks", err, "query", query)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) GetPopularStocks(c *gin.Context) {
	stocks, err := h.stocks.GetPopular(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to get popular stocks", err)
		return
	}

	c.JSON(http.StatusOK, stocks)
}

func (h *Handler) ListSP500(c *gin.Context) {
	page := intQuery(c, "page")
	limit := intQuery(c, "limit")
	sector := c.Query("sector")

	result, err := h.stocks.ListSP500(c.Request.Context(), page, limit, sector)
	if err != nil {
		internalError(c, "Failed to list S&P 500", err, "page", page, "limit", limit, "sector", sector)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetStock(c *gin.Context) {
	symbol := c.Param("symbol")

	stock, err := h.stocks.GetBySymbol(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: fmt.Sprintf("Stock %s not found", application.NormalizeSymbol(symbol)),
			})
			return
		}
		internalError(c, "Failed to get stock", err, "symbol", symbol)
		return
	}

	c.JSON(http.StatusOK, stock)
}

func (h *Handler) ListLessons(c *gin.Context) {
	list, err := h.lessons.List(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to list lessons", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetLesson(c *gin.Context) {
	id := c.Param("id")

	lesson, err := h.lessons.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lesson not found"})
			return
		}
		internalError(c, "Failed to get lesson", err, "lesson_id", id)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *Handler) ListLessonCategories(c *gin.Context) {
	categories, err := h.lessons.Categories(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to list lesson categories", err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListWatchlist(c *gin.Context) {
	userID := currentUserID(c)

	favorites, err := h.watchlist.List(c.Request.Context(), userID)
	if err != nil {
		internalError(c, "Failed to list watchlist", err, "user_id", userID)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

func (h *Handler) AddToWatchlist(c *gin.Context) {
	userID := currentUserID(c)

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.ErrorContext(c.Request.Context(), "Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	favorite, err := h.watchlist.Add(c.Request.Context(), userID, req.Symbol)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStockNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: fmt.Sprintf("Stock %s not found", application.NormalizeSymbol(req.Symbol)),
			})
		case errors.Is(err, domain.ErrFavoriteExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			internalError(c, "Failed to add favorite", err, "user_id", userID, "symbol", req.Symbol)
		}
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	userID := currentUserID(c)
	symbol := c.Param("symbol")

	if err := h.watchlist.Remove(c.Request.Context(), userID, symbol); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		internalError(c, "Failed to remove favorite", err, "user_id", userID, "symbol", symbol)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"stocks":  h.health.Stocks,
		"lessons": h.health.Lessons,
	})
}

// intQuery parses an integer query parameter; absent or unparsable values
// come back as 0 and the service layer applies defaults.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
