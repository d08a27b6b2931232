package http

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes binds the handler to the REST surface. The auth middleware
// only guards the watchlist group; stock and lesson reads are public.
func SetupRoutes(router *gin.Engine, handler *Handler, auth gin.HandlerFunc) {
	api := router.Group("/api")

	stocks := api.Group("/stocks")
	{
		stocks.GET("/search", handler.SearchStocks)
		stocks.GET("/popular", handler.GetPopularStocks)
		stocks.GET("/sp500", handler.ListSP500)
		stocks.GET("/:symbol", handler.GetStock)
	}

	lessons := api.Group("/lessons")
	{
		lessons.GET("", handler.ListLessons)
		lessons.GET("/categories", handler.ListLessonCategories)
		lessons.GET("/:id", handler.GetLesson)
	}

	watchlist := api.Group("/watchlist", auth)
	{
		watchlist.GET("", handler.ListWatchlist)
		watchlist.POST("", handler.AddToWatchlist)
		watchlist.DELETE("/:symbol", handler.RemoveFromWatchlist)
	}

	router.GET("/health", handler.Health)
}
