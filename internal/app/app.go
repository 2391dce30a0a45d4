package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/config"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/specialistvlad/componentui/internal/dataui"
	"github.com/specialistvlad/componentui/internal/inmemorystore"
	"github.com/specialistvlad/componentui/internal/memo"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/sqlitestore"
	"github.com/specialistvlad/componentui/internal/ui/termui"
)

// store is what a session needs from a value store.
type store interface {
	dataui.Resolver
	registry.Committer
	Ingest(ctx context.Context, logs []*config.LogEntry) error
	Paths(ctx context.Context) ([]component.EntityPath, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	store    store
	registry *registry.Registry
	previews *memo.Cache[[]string]
	data     *dataui.DataUI

	openSurface func() (*termui.Surface, error)
	closeOnce   sync.Once
}

// NewApp is the constructor for the main application. It loads the
// configuration model, opens the store and ingests the logged data, and
// builds and validates the registry. logW receives log output; rendered UIs
// go to outW.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.DataPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "components", len(model.Components), "logs", len(model.Logs))

	st, err := openStore(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := st.Ingest(ctx, model.Logs); err != nil {
		closeStore(ctx, st)
		return nil, fmt.Errorf("failed to ingest logged data: %w", err)
	}
	logger.Debug("Logged data ingested.", "entries", len(model.Logs))

	previews := memo.New[[]string](memo.DefaultMaxAge)
	fallback := registry.NewFallbackUI(previews)
	reg := registry.New(fallback.Render,
		registry.WithCommitter(st),
		registry.WithFallbackValues(model),
		registry.WithLogger(logger),
	)
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.RegisterModules(modules...)

	if err := reg.Validate(ctx, model.Components); err != nil {
		// A mismatch between manifests and compiled-in UIs.
		closeStore(ctx, st)
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		model:    model,
		store:    st,
		registry: reg,
		previews: previews,
		data:     dataui.New(reg, st),

		openSurface: termui.Open,
	}, nil
}

func openStore(ctx context.Context, dbPath string) (store, error) {
	logger := ctxlog.FromContext(ctx)
	if dbPath == "" {
		logger.Debug("Using in-memory store.")
		return inmemorystore.New(), nil
	}
	st, err := sqlitestore.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	logger.Debug("Using sqlite store.", "path", dbPath)
	return st, nil
}

func closeStore(ctx context.Context, st store) {
	c, ok := st.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to close store.", "error", err)
	}
}

// Close releases the store. It is safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		closeStore(ctxlog.WithLogger(context.Background(), a.logger), a.store)
	})
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
