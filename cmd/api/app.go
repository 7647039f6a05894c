package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"skycast/internal/config"
	"skycast/internal/lookup"
	"skycast/internal/widget"

	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	lookupService lookup.Service
	widgets       *widget.Store
	cfg           *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	lookupSvc, err := lookup.NewLookupService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewAppWithService(cfg, logger, lookupSvc), nil
}

// NewAppWithService creates an application around an existing lookup service
func NewAppWithService(cfg *config.Config, logger *slog.Logger, lookupSvc lookup.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	app := &App{
		router:        router,
		logger:        logger,
		lookupService: lookupSvc,
		widgets:       widget.NewStore(lookupSvc, cfg.Widget.SessionTTL, cfg.Widget.MaxSessions, logger),
		cfg:           cfg,
	}

	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go app.sweepSessions(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// sweepSessions drops idle widget sessions until ctx ends
func (app *App) sweepSessions(ctx context.Context) {
	ttl := app.cfg.Widget.SessionTTL
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := app.widgets.Sweep(); removed > 0 {
				app.logger.Debug("swept idle widget sessions", "removed", removed)
			}
		}
	}
}
