package pipeline

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/livegto/solver/internal/equity"
)

// Config is the full pipeline configuration.
type Config struct {
	Sampling *SamplingSettings `hcl:"sampling,block"`
	Solver   *SolverSettings   `hcl:"solver,block"`
	Output   *OutputSettings   `hcl:"output,block"`
}

// SamplingSettings controls the Monte Carlo estimation phase.
type SamplingSettings struct {
	BucketSamples      int   `hcl:"bucket_samples,optional"`
	MatchupsPerTexture int   `hcl:"matchups_per_texture,optional"`
	Workers            int   `hcl:"workers,optional"`
	Seed               int64 `hcl:"seed,optional"`
}

// SolverSettings controls the CFR+ phase.
type SolverSettings struct {
	Iterations int `hcl:"iterations,optional"`
	// ParallelTextures bounds how many textures solve concurrently.
	// Zero means one solver per available CPU.
	ParallelTextures int `hcl:"parallel_textures,optional"`
}

// OutputSettings controls the export phase.
type OutputSettings struct {
	Path string `hcl:"path,optional"`
}

// DefaultConfig returns the configuration used for published tables.
func DefaultConfig() *Config {
	return &Config{
		Sampling: &SamplingSettings{
			BucketSamples:      50_000,
			MatchupsPerTexture: 30_000,
			Workers:            0,
			Seed:               1,
		},
		Solver: &SolverSettings{
			Iterations:       10_000,
			ParallelTextures: 0,
		},
		Output: &OutputSettings{
			Path: "data/strategies.json",
		},
	}
}

// LoadConfig loads pipeline configuration from an HCL file. A missing
// file yields the defaults; a present file has defaults applied to any
// omitted blocks and fields.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Sampling == nil {
		config.Sampling = defaults.Sampling
	}
	if config.Solver == nil {
		config.Solver = defaults.Solver
	}
	if config.Output == nil {
		config.Output = defaults.Output
	}

	if config.Sampling.BucketSamples == 0 {
		config.Sampling.BucketSamples = defaults.Sampling.BucketSamples
	}
	if config.Sampling.MatchupsPerTexture == 0 {
		config.Sampling.MatchupsPerTexture = defaults.Sampling.MatchupsPerTexture
	}
	if config.Sampling.Seed == 0 {
		config.Sampling.Seed = defaults.Sampling.Seed
	}
	if config.Solver.Iterations == 0 {
		config.Solver.Iterations = defaults.Solver.Iterations
	}
	if config.Output.Path == "" {
		config.Output.Path = defaults.Output.Path
	}

	return &config, nil
}

// Validate checks the configuration before a run.
func (c *Config) Validate() error {
	if err := c.equityConfig().Validate(); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}
	if c.Solver.Iterations <= 0 {
		return fmt.Errorf("solver: iterations must be positive (got %d)", c.Solver.Iterations)
	}
	if c.Solver.ParallelTextures < 0 {
		return fmt.Errorf("solver: parallel_textures cannot be negative (got %d)", c.Solver.ParallelTextures)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output: path must be set")
	}
	return nil
}

func (c *Config) equityConfig() equity.Config {
	return equity.Config{
		BucketSamples:      c.Sampling.BucketSamples,
		MatchupsPerTexture: c.Sampling.MatchupsPerTexture,
		Workers:            c.Sampling.Workers,
		Seed:               c.Sampling.Seed,
	}
}
