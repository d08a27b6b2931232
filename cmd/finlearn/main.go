package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finlearn/finlearn-api/internal/application"
	"github.com/finlearn/finlearn-api/internal/domain"
	"github.com/finlearn/finlearn-api/internal/infrastructure/catalog"
	"github.com/finlearn/finlearn-api/internal/infrastructure/config"
	"github.com/finlearn/finlearn-api/internal/infrastructure/persistence/memory"
	"github.com/finlearn/finlearn-api/internal/infrastructure/persistence/sqldb"
	httpHandler "github.com/finlearn/finlearn-api/internal/interfaces/http"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/sijms/go-ora/v2"
)

// setupLogger configures and returns a structured logger with source information
func setupLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel(os.Getenv("LOG_LEVEL")),
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, opts))
	slog.SetDefault(logger)
	return logger
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// createWatchlistRepository selects the watchlist store based on configuration.
// The memory driver needs no external services and is the default.
func createWatchlistRepository(cfg *config.Config) (domain.WatchlistRepository, error) {
	if cfg.DBDriver == config.DBDriverMemory {
		return memory.NewWatchlistRepository(), nil
	}

	var db *sql.DB
	var dialect sqldb.Dialect
	var err error

	switch cfg.DBDriver {
	case config.DBDriverPostgres:
		db, err = sql.Open("pgx", cfg.DBDSN)
		dialect = &sqldb.PostgresDialect{}
	case config.DBDriverOracle:
		db, err = sql.Open("oracle", cfg.DBDSN)
		dialect = &sqldb.OracleDialect{}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	wrapper := sqldb.New(db, dialect)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := wrapper.Dialect.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return sqldb.NewRepository(wrapper), nil
}

// buildServer creates and configures the HTTP server with all routes and handlers
func buildServer(cfg *config.Config, stocks *catalog.Catalog, lessons *catalog.Library, repo domain.WatchlistRepository) *http.Server {
	stockService := application.NewStockService(stocks, stocks)
	lessonService := application.NewLessonService(lessons)
	watchlistService := application.NewWatchlistService(repo, stocks)

	router := gin.Default()
	handler := httpHandler.NewHandler(stockService, lessonService, watchlistService, httpHandler.HealthInfo{
		Stocks:  stocks.Size(),
		Lessons: lessons.Size(),
	})
	httpHandler.SetupRoutes(router, handler, httpHandler.JWTAuth(cfg.JWTSecret))

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// run contains the main application logic without os.Exit calls
func run() error {
	setupLogger()

	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	stocks, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to build stock catalog: %w", err)
	}

	lessons, err := catalog.DefaultLibrary()
	if err != nil {
		return fmt.Errorf("failed to build lesson library: %w", err)
	}
	slog.Info("Catalog loaded", "stocks", stocks.Size(), "lessons", lessons.Size())

	repo, err := createWatchlistRepository(cfg)
	if err != nil {
		return fmt.Errorf("watchlist store initialization failed: %w", err)
	}
	slog.Info("Using watchlist store", "driver", cfg.DBDriver)

	server := buildServer(cfg, stocks, lessons, repo)

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "host", cfg.ServerHost, "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		slog.Info("Received shutdown signal")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	slog.Info("Server exited gracefully")
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
