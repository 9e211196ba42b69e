package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/sizecalc/internal/profile"
)

// ProfileLoader reads calculator inputs from a file.
type ProfileLoader interface {
	Load(ctx context.Context, path string) (*profile.Profile, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	loader ProfileLoader
}

// NewApp is the constructor for the main application. Results are written to
// outW; logs and the explain tables go to errW.
func NewApp(outW, errW io.Writer, cfg *Config, loader ProfileLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = profile.NewLoader()
	}

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
