package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/livegto/solver/internal/pipeline"
)

type GenerateCmd struct {
	Config     string `short:"c" default:"solver.hcl" help:"Path to HCL configuration file"`
	Output     string `short:"o" help:"Output path (overrides config)"`
	Iterations int    `short:"i" help:"CFR+ iterations per texture (overrides config)"`
	Samples    int    `help:"Bucket distribution samples (overrides config)"`
	Matchups   int    `help:"Equity matchups per texture (overrides config)"`
	Parallel   int    `help:"Concurrent texture solvers (overrides config)"`
	Seed       int64  `help:"Random seed (overrides config)"`
}

func (g *GenerateCmd) Run(logger *log.Logger) error {
	cfg, err := pipeline.LoadConfig(g.Config)
	if err != nil {
		return err
	}
	if g.Output != "" {
		cfg.Output.Path = g.Output
	}
	if g.Iterations > 0 {
		cfg.Solver.Iterations = g.Iterations
	}
	if g.Samples > 0 {
		cfg.Sampling.BucketSamples = g.Samples
	}
	if g.Matchups > 0 {
		cfg.Sampling.MatchupsPerTexture = g.Matchups
	}
	if g.Parallel > 0 {
		cfg.Solver.ParallelTextures = g.Parallel
	}
	if g.Seed != 0 {
		cfg.Sampling.Seed = g.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting precomputation",
		"bucket_samples", cfg.Sampling.BucketSamples,
		"matchups_per_texture", cfg.Sampling.MatchupsPerTexture,
		"iterations", cfg.Solver.Iterations,
		"output", cfg.Output.Path)

	_, err = pipeline.Generate(ctx, cfg, logger, nil)
	return err
}
