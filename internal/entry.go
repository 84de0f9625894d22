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

	"github.com/starford/scoop/internal/answerer"
	"github.com/starford/scoop/internal/api"
	"github.com/starford/scoop/internal/dialogue"
	"github.com/starford/scoop/internal/index"
	"github.com/starford/scoop/internal/knowledge"
	"github.com/starford/scoop/internal/mcpserver"
	"github.com/starford/scoop/internal/models"
	"github.com/starford/scoop/internal/qaservice"
	"github.com/starford/scoop/internal/render"
	"github.com/starford/scoop/internal/sse"
	"github.com/starford/scoop/internal/storage"
)

// components is the wired object graph shared by every entry point.
type components struct {
	store  *knowledge.Store
	file   *storage.JSONFile
	db     *index.DB
	engine *dialogue.Engine
	svc    *qaservice.Service
}

func (c *components) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
}

func newApplication(opts []Option, defaultLog io.Writer) (*application, *slog.Logger, error) {
	app := &application{version: "dev", logOut: defaultLog}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, nil, fmt.Errorf("config is required")
	}

	logger := slog.New(slog.NewJSONHandler(app.logOut, &slog.HandlerOptions{
		Level: app.config.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return app, logger, nil
}

// build opens the configured knowledge backend and wires the engine on top.
func build(cfg *Config, logger *slog.Logger, onLearn dialogue.LearnFunc) (*components, error) {
	c := &components{}

	var provider knowledge.Provider
	switch cfg.Knowledge.Backend {
	case BackendSQLite:
		db, err := index.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("init index: %w", err)
		}
		c.db = db
		if cfg.Knowledge.Path != "" {
			if f, err := storage.NewJSONFile(cfg.Knowledge.Path); err != nil {
				logger.Warn("seed file unusable", slog.String("error", err.Error()))
			} else if _, err := index.Seed(db, f, logger); err != nil {
				c.Close()
				return nil, fmt.Errorf("seed index: %w", err)
			}
		}
		provider = db
	default:
		f, err := storage.NewJSONFile(cfg.Knowledge.Path)
		if err != nil {
			return nil, fmt.Errorf("init storage: %w", err)
		}
		c.file = f
		provider = f
	}

	store, err := knowledge.Open(provider, logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("open knowledge: %w", err)
	}
	c.store = store

	renderer := render.New(
		render.WithTemplates(models.StyleThemed, cfg.Styles.Themed),
		render.WithTemplates(models.StylePlain, cfg.Styles.Plain),
	)

	ansOpts := []answerer.Option{
		answerer.WithTimeout(cfg.Answerer.Timeout),
		answerer.WithLogger(logger),
	}
	if cfg.Answerer.Enabled() {
		client := &http.Client{Timeout: cfg.Answerer.Timeout}
		ansOpts = append(ansOpts, answerer.WithExtractor(
			answerer.NewHTTPExtractor(cfg.Answerer.Endpoint, cfg.Answerer.Token, client),
		))
	}

	c.engine = dialogue.New(store,
		dialogue.WithAnswerer(answerer.New(ansOpts...)),
		dialogue.WithRenderer(renderer),
		dialogue.WithOnLearn(onLearn),
		dialogue.WithLogger(logger),
	)
	c.svc = qaservice.NewService(c.engine, store)
	return c, nil
}

// watch keeps the store in sync with external edits of the knowledge file.
// It is a no-op unless the file backend is active and watching is enabled.
func (c *components) watch(ctx context.Context, cfg *Config, logger *slog.Logger, onReload func()) {
	if c.file == nil || !cfg.Knowledge.Watch {
		return
	}
	err := storage.Watch(ctx, c.file, logger, func() error {
		if err := c.store.Reload(); err != nil {
			return err
		}
		if onReload != nil {
			onReload()
		}
		return nil
	})
	if err != nil {
		logger.Error("watcher failed", slog.String("error", err.Error()))
	}
}

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, logger, err := newApplication(opts, os.Stdout)
	if err != nil {
		return err
	}
	cfg := app.config

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("knowledge_backend", cfg.Knowledge.Backend),
		slog.String("knowledge_path", cfg.Knowledge.Path),
		slog.Bool("answerer_enabled", cfg.Answerer.Enabled()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	c, err := build(cfg, logger, broker.TopicLearned)
	if err != nil {
		return err
	}
	defer c.Close()

	apiRouter := api.NewRouter(c.svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

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
		if c.store.Len() == 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"empty"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, `{"status":"ok","topics":%d}`, c.store.Len())
	})

	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.watch(gCtx, cfg, logger, func() {
			broker.PublishTopicEvent(sse.KindReloaded, "")
		})
		return nil
	})

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

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// errShutdown cancels the group so the watcher stops with the server.
var errShutdown = errors.New("shutdown")

// RunMCP serves the MCP tools over stdin/stdout until stdin closes.
func RunMCP(ctx context.Context, opts ...Option) error {
	app, logger, err := newApplication(opts, os.Stderr)
	if err != nil {
		return err
	}

	c, err := build(app.config, logger, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.watch(watchCtx, app.config, logger, nil)
	}()
	defer func() {
		cancel()
		<-done
	}()

	logger.Info("MCP server starting on stdio", slog.String("version", app.version))
	if err := mcpserver.New(c.svc, app.version, logger).ServeStdio(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// Ask answers a single message and returns the reply.
func Ask(ctx context.Context, message, style string, opts ...Option) (string, error) {
	app, logger, err := newApplication(opts, os.Stderr)
	if err != nil {
		return "", err
	}

	c, err := build(app.config, logger, nil)
	if err != nil {
		return "", err
	}
	defer c.Close()

	return c.svc.Ask(ctx, message, style), nil
}
