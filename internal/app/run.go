package app

import (
	"context"
	"fmt"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/executor"
	"github.com/vk/loopgridgo/internal/names"
)

// Run executes the configured grid. It resolves the sampler/scheduler name
// catalog, validates the grid against the registry, and then drives every
// loop instance through the requested number of passes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("🚀 Starting grid execution", "passes", a.appConfig.Passes)

	if a.appConfig.HealthcheckPort > 0 {
		stop, err := a.startHealthcheckServer(ctx, a.appConfig.HealthcheckPort)
		if err != nil {
			return fmt.Errorf("failed to start healthcheck server: %w", err)
		}
		defer stop()
	}

	catalog := a.resolveCatalog(ctx)
	a.exec = executor.New(a.registry, a.converter, catalog)

	if a.config.Grid == nil || len(a.config.Grid.Loops) == 0 {
		a.logger.Warn("Grid contains no loop instances, nothing to do.")
		return nil
	}

	if err := a.exec.ValidateGrid(a.config.Grid); err != nil {
		return err
	}

	for pass := 1; pass <= a.appConfig.Passes; pass++ {
		a.logger.Debug("Starting pass", "pass", pass)
		for _, lp := range a.config.Grid.Loops {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := a.exec.InvokeLoop(ctx, lp); err != nil {
				return err
			}
		}
	}

	a.logger.Info("🏁 Grid execution finished", "passes", a.appConfig.Passes)
	return nil
}

// resolveCatalog returns the live name catalog when a names URL is
// configured, falling back to the builtin lists on any fetch error.
func (a *App) resolveCatalog(ctx context.Context) names.Catalog {
	if a.appConfig.NamesURL == "" {
		return names.Builtin()
	}
	catalog, err := names.Fetch(ctx, a.appConfig.NamesURL)
	if err != nil {
		a.logger.Warn("Failed to fetch name catalog, using builtin lists.",
			"url", a.appConfig.NamesURL, "error", err)
		return names.Builtin()
	}
	a.logger.Info("Fetched name catalog.",
		"url", a.appConfig.NamesURL,
		"samplers", len(catalog.Samplers()),
		"schedulers", len(catalog.Schedulers()))
	return catalog
}
