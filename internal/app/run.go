package app

import (
	"context"
	"fmt"

	"github.com/vk/cimatrix/internal/ctxlog"
	"github.com/vk/cimatrix/internal/matrix"
)

// Run generates the build matrix and writes the document to the configured
// output. The registration sequence comes from the configured definitions
// path when one is set, otherwise from the built-in build set.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Matrix generation started.", "ref", a.config.Ref)

	m := matrix.New(a.config.Ref)
	a.logger.Debug("Run context derived.", "branch", m.Branch(), "tag", m.Tag())

	sets := defaultBuilds()
	if a.config.BuildsPath != "" {
		loaded, err := a.loader.Load(ctx, m.Branch(), m.Tag(), a.config.BuildsPath)
		if err != nil {
			return fmt.Errorf("failed to load build definitions: %w", err)
		}
		sets = loaded
	}

	for _, opts := range sets {
		m.Add(opts...)
	}
	a.logger.Info("Build matrix assembled.", "builds", m.Len())

	// The document is only meaningful as a complete unit; a failed write is
	// fatal with nothing to fall back to.
	if err := m.Encode(a.outW); err != nil {
		return fmt.Errorf("failed to write build matrix: %w", err)
	}

	a.logger.Debug("Matrix generation finished.")
	return nil
}
