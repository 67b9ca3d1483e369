// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/globalmenu/internal/api"
	"github.com/starford/globalmenu/internal/kv"
	"github.com/starford/globalmenu/internal/menuservice"
	"github.com/starford/globalmenu/internal/sse"
	"github.com/starford/globalmenu/internal/vault"
	"github.com/starford/globalmenu/internal/watcher"
)

// NewLogger returns the structured JSON logger for cfg writing to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
}

// Components are the pieces every command needs: the vault, the
// configuration store and the menu service over both.
type Components struct {
	Vault   *vault.Vault
	Store   kv.Store
	Service *menuservice.Service

	ownStore bool
}

// Open creates the vault directory if needed, opens the store and loads the
// menu configuration. A non-nil store from WithStore is used as is.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger, store kv.Store, opts ...menuservice.Option) (*Components, error) {
	if err := os.MkdirAll(cfg.Vault.Path, 0o755); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}
	v, err := vault.Open(cfg.Vault.Path)
	if err != nil {
		return nil, fmt.Errorf("init vault: %w", err)
	}

	c := &Components{Vault: v, Store: store}
	if c.Store == nil {
		c.Store, err = kv.Open(cfg.Store.Driver, cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("init store: %w", err)
		}
		c.ownStore = true
	}

	base := []menuservice.Option{
		menuservice.WithKey(cfg.Store.Key),
		menuservice.WithVault(v),
		menuservice.WithLogger(logger),
		menuservice.WithDelays(cfg.Refresh.Delays),
		menuservice.WithDarkMode(cfg.Theme.Dark),
	}
	c.Service = menuservice.New(c.Store, append(base, opts...)...)
	if err := c.Service.Load(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("load menu configuration: %w", err)
	}
	return c, nil
}

// Close stops the service and closes the store it opened.
func (c *Components) Close() error {
	c.Service.Close()
	if c.ownStore {
		return c.Store.Close()
	}
	return nil
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("vault_path", cfg.Vault.Path),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("store_path", cfg.Store.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// SSE broker, fed by the service's refresh passes.
	broker := sse.NewBroker()

	comp, err := Open(ctx, cfg, logger, app.store, menuservice.WithPublisher(broker))
	if err != nil {
		broker.Close()
		return err
	}
	defer func() {
		if err := comp.Close(); err != nil {
			logger.Error("store close error", slog.String("error", err.Error()))
		}
	}()
	svc := comp.Service

	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.Vault.Watch {
		g.Go(func() error {
			err := watcher.Watch(gCtx, comp.Vault, logger, svc.HandleChange)
			if err != nil {
				return fmt.Errorf("watcher error: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		// Event streams end when the broker closes their channels.
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
