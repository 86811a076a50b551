// Package pipeline orchestrates the precomputation run: Monte Carlo
// equity estimation, per-texture CFR+ solving, and table export.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/livegto/solver/internal/abstraction"
	"github.com/livegto/solver/internal/cfr"
	"github.com/livegto/solver/internal/equity"
	"github.com/livegto/solver/internal/table"
)

// Run executes the estimation and solving phases and returns the
// assembled table without persisting it. A nil clock selects the real
// clock.
func Run(ctx context.Context, cfg *Config, logger *log.Logger, clock quartz.Clock) (*table.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	start := clock.Now()

	engine, err := equity.NewEngine(cfg.equityConfig(), logger, clock)
	if err != nil {
		return nil, err
	}

	logger.Info("phase 1: monte carlo equity")
	dist, err := engine.ComputeDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("bucket distributions: %w", err)
	}
	matrix, err := engine.ComputeMatrix(ctx)
	if err != nil {
		return nil, fmt.Errorf("equity matrix: %w", err)
	}

	logger.Info("phase 2: cfr+ solving", "iterations", cfg.Solver.Iterations)
	parallel := cfg.Solver.ParallelTextures
	if parallel <= 0 {
		parallel = min(runtime.GOMAXPROCS(0), abstraction.NumTextures)
	}

	// Each texture owns an independent solver and info-set table, so
	// textures solve concurrently with no shared mutable state.
	var profiles [abstraction.NumTextures]cfr.Profile
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, tex := range abstraction.Textures() {
		g.Go(func() error {
			texStart := clock.Now()
			solver := cfr.New(matrix.Texture(tex), dist.Row(tex))
			if err := solver.Train(gctx, cfg.Solver.Iterations); err != nil {
				return fmt.Errorf("solving %s: %w", tex, err)
			}
			profiles[tex] = solver.Strategies()
			logger.Info("texture solved",
				"texture", tex.String(),
				"duration", clock.Since(texStart))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tbl := table.Build(dist, matrix, &profiles, cfg.Solver.Iterations)
	logger.Info("pipeline complete", "duration", clock.Since(start))
	return tbl, nil
}

// Generate runs the full pipeline and writes the exported table to the
// configured output path, creating parent directories as needed.
func Generate(ctx context.Context, cfg *Config, logger *log.Logger, clock quartz.Clock) (*table.Table, error) {
	tbl, err := Run(ctx, cfg, logger, clock)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := tbl.Save(cfg.Output.Path); err != nil {
		return nil, fmt.Errorf("writing strategy table: %w", err)
	}

	info, err := os.Stat(cfg.Output.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("table exported", "path", cfg.Output.Path, "bytes", info.Size())
	return tbl, nil
}
