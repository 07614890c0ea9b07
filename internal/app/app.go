// Package app provides the application lifecycle for the sixer service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/owais-io/sixer/internal/api"
	"github.com/owais-io/sixer/internal/auth"
	"github.com/owais-io/sixer/internal/config"
	"github.com/owais-io/sixer/internal/guardian"
	"github.com/owais-io/sixer/internal/ingest"
	"github.com/owais-io/sixer/internal/logger"
	"github.com/owais-io/sixer/internal/metrics"
	"github.com/owais-io/sixer/internal/query"
	"github.com/owais-io/sixer/internal/store"
)

// DefaultShutdownTimeout is the timeout for graceful shutdown
const DefaultShutdownTimeout = 30 * time.Second

// App holds the wired service dependencies.
type App struct {
	config     *config.Config
	logger     logger.Logger
	store      *store.Store
	queries    *query.Service
	ingest     *ingest.Service
	httpServer *http.Server
	version    string
}

// Options contains configuration for creating a new App
type Options struct {
	ConfigPath string
	Version    string
}

// New creates a new App instance with all dependencies initialized
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	appLogger = appLogger.With(
		logger.String("service", "sixer"),
		logger.String("version", opts.Version),
	)

	contentStore, err := store.Open(cfg.Store.ContentDir, appLogger)
	if err != nil {
		_ = appLogger.Sync()
		return nil, fmt.Errorf("open content store: %w", err)
	}

	m := metrics.New()
	client := guardian.NewClient(&cfg.Guardian, appLogger)
	ingestService := ingest.NewService(client, contentStore, m, appLogger)
	queries := query.NewService(contentStore)
	authorizer := auth.NewAuthorizer(cfg.Admin.AllowedEmails)

	router := api.NewRouter(cfg, contentStore, queries, ingestService, authorizer, m, appLogger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		config:     cfg,
		logger:     appLogger,
		store:      contentStore,
		queries:    queries,
		ingest:     ingestService,
		httpServer: httpServer,
		version:    opts.Version,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal or a server
// error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server",
			logger.String("address", a.config.Server.Address),
			logger.Bool("debug", a.config.Debug),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		a.logger.Info("Shutting down gracefully", logger.String("signal", sig.String()))
	case <-ctx.Done():
		a.logger.Info("Shutting down", logger.Error(ctx.Err()))
	case err := <-serverErr:
		a.logger.Error("Server error", logger.Error(err))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown error", logger.Error(err))
		return err
	}

	a.logger.Info("Service stopped")
	return nil
}

// Ingest runs one ingestion outside the HTTP server (CLI trigger).
func (a *App) Ingest(ctx context.Context, req guardian.FetchRequest) error {
	stats, err := a.ingest.Run(ctx, req)
	if err != nil {
		return err
	}

	a.logger.Info(stats.Message(),
		logger.Int("fetched", stats.Fetched),
		logger.Int("new", stats.New),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("errors", stats.Errors),
	)
	return nil
}

// ClearStore deletes every content store record (CLI trigger).
func (a *App) ClearStore() error {
	removed, err := a.store.ClearAll()
	if err != nil {
		return err
	}
	a.logger.Info("Cleared content store", logger.Int("removed", removed))
	return nil
}

// Close flushes logs.
func (a *App) Close() error {
	return a.logger.Sync()
}

// Logger returns the application logger
func (a *App) Logger() logger.Logger {
	return a.logger
}
