// Package bootstrap wires all dependencies and starts the application: it
// loads configuration, opens the database, registers the feature modules,
// runs discovery and serves the resulting routing table.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/omniweb-dev/omniweb/adapters/metrics"
	"github.com/omniweb-dev/omniweb/adapters/sqlite"
	"github.com/omniweb-dev/omniweb/config"
	"github.com/omniweb-dev/omniweb/core/loader"
	"github.com/omniweb-dev/omniweb/core/router"
	"github.com/omniweb-dev/omniweb/domain/page"
	"github.com/omniweb-dev/omniweb/web"
	"github.com/rs/zerolog"
)

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	DB         *sqlite.DB
	Metrics    *metrics.Collector
	Registry   *loader.Registry
	HTTPServer *http.Server

	// cfg is the active configuration. Hot reload swaps it from the
	// watcher goroutine while request handlers read it, so access goes
	// through Config and SetConfig.
	cfg atomic.Pointer[config.Config]

	// mux is the active routing table. Rebuilds swap in a fresh table;
	// in-flight requests keep the one they started with.
	mux atomic.Pointer[web.Mux]
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	return a.cfg.Load()
}

// SetConfig swaps the active configuration. Callers trigger a Rebuild
// afterwards so the routing table picks up module settings.
func (a *App) SetConfig(cfg *config.Config) {
	a.cfg.Store(cfg)
}

// New creates and initializes the application from a loaded configuration.
func New(cfg *config.Config) (*App, error) {
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("initializing omniweb")

	a := &App{
		Logger: logger,
	}
	a.SetConfig(cfg)

	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	a.DB = db

	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
		logger.Info().Msg("prometheus metrics enabled")
	}

	a.Registry = DefaultRegistry(sqlite.NewQuoteStore(db))

	if err := a.Rebuild(); err != nil {
		db.Close()
		return nil, err
	}

	a.HTTPServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      a.router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return a, nil
}

// Rebuild runs a discovery pass and swaps the resulting routing table in.
// A failed rebuild leaves the active table untouched.
func (a *App) Rebuild() error {
	buildID := uuid.NewString()
	start := time.Now()
	cfg := a.Config()

	result, err := loader.Discover(loader.Config{
		Registry:    a.Registry,
		ManifestDir: cfg.Modules.Dir,
		Ignore:      loader.MergeIgnore(cfg.Modules.Ignore),
		DevMode:     cfg.Modules.DevMode,
		Logger:      a.Logger,
	})
	if err != nil {
		return fmt.Errorf("module discovery: %w", err)
	}

	page.SortInfos(result.Infos)
	table := router.Build(staticRules(), result.Infos)

	mux, err := web.NewMux(table, result.Infos)
	if err != nil {
		return fmt.Errorf("compile routing table: %w", err)
	}

	a.mux.Store(mux)

	if a.Metrics != nil {
		a.Metrics.ModulesLoaded.Set(float64(len(result.Loaded)))
		a.Metrics.ModuleLoadErrors.Set(float64(len(result.Errors)))
		a.Metrics.SlowModuleLoads.Add(float64(result.Slow))
		a.Metrics.TableRebuilds.Inc()
		a.Metrics.RoutingRules.Set(float64(mux.Rules()))
	}

	a.Logger.Info().
		Str("build", buildID).
		Int("rules", mux.Rules()).
		Dur("took", time.Since(start)).
		Msg("routing table built")
	return nil
}

// Mux returns the active routing table.
func (a *App) Mux() *web.Mux {
	return a.mux.Load()
}

// staticRules are the native rules that precede every module rule.
func staticRules() []page.Rule {
	return []page.Rule{
		{Pattern: "/static/.*", Handler: web.StaticFiles("/static/"), Name: "static"},
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("database close error")
		}
	}

	return nil
}

// setupLogger builds the root logger from the logging configuration.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
