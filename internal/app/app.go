package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/cimatrix/internal/matrix"
)

// BuildLoader translates external build definitions into matrix
// registrations. branch and tag carry the run context so definition files
// can reference it in expressions.
type BuildLoader interface {
	Load(ctx context.Context, branch, tag string, paths ...string) ([][]matrix.Option, error)
}

// App encapsulates the generator's dependencies, configuration, and
// lifecycle. The matrix document is the only thing ever written to outW;
// diagnostics go to the logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader BuildLoader
}

// New is the constructor for the main application. errW receives log output,
// keeping outW clean for the consumer-facing document.
func New(outW, errW io.Writer, cfg *Config, loader BuildLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
