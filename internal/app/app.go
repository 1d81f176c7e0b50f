package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/dlacgo/internal/config"
	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. A
// failure to load the descriptions is a fatal startup error and panics;
// the entrypoint recovers and reports it.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if appConfig.ModelPath != "" {
		paths = append(paths, appConfig.ModelPath)
	}
	if appConfig.TargetPath != "" {
		paths = append(paths, appConfig.TargetPath)
	}

	cfgModel, err := loader.Load(ctx, paths...)
	if err != nil {
		panic(fmt.Errorf("failed to load descriptions: %w", err))
	}
	logger.Debug("Descriptions loaded and translated into unified model.")

	reg := registry.New()
	logger.Debug("Built-in operator registry populated.", "kinds", len(reg.Operators()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfgModel,
	}
}

// Registry returns the application's operator registry. Primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
