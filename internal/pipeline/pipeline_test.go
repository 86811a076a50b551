package pipeline

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/livegto/solver/internal/abstraction"
	"github.com/livegto/solver/internal/table"
)

// tinyConfig keeps an end-to-end run fast enough for a unit test.
func tinyConfig(outPath string) *Config {
	return &Config{
		Sampling: &SamplingSettings{
			BucketSamples:      5_000,
			MatchupsPerTexture: 300,
			Workers:            2,
			Seed:               9,
		},
		Solver: &SolverSettings{
			Iterations:       5,
			ParallelTextures: 2,
		},
		Output: &OutputSettings{Path: outPath},
	}
}

func TestRunProducesCompleteTable(t *testing.T) {
	cfg := tinyConfig("unused.json")
	logger := log.New(bytes.NewBuffer(nil))

	tbl, err := Run(context.Background(), cfg, logger, nil)
	require.NoError(t, err)
	require.Equal(t, table.Version, tbl.Version)
	require.Equal(t, 5, tbl.Iterations)

	for _, c := range table.Contexts() {
		for _, tex := range abstraction.Textures() {
			for _, b := range abstraction.Buckets() {
				strat := tbl.Lookup(c, tex, b)
				require.NotEmpty(t, strat, "%s/%s/%s", c, tex, b)
				require.InDelta(t, 1.0, strat.Sum(), 1e-3, "%s/%s/%s", c, tex, b)
			}
		}
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := tinyConfig("unused.json")
	cfg.Solver.Iterations = 0
	logger := log.New(bytes.NewBuffer(nil))

	_, err := Run(context.Background(), cfg, logger, nil)
	require.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := tinyConfig("unused.json")
	logger := log.New(bytes.NewBuffer(nil))

	_, err := Run(ctx, cfg, logger, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateWritesLoadableTable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data", "strategies.json")
	cfg := tinyConfig(out)
	logger := log.New(bytes.NewBuffer(nil))

	tbl, err := Generate(context.Background(), cfg, logger, nil)
	require.NoError(t, err)

	loaded, err := table.Load(out)
	require.NoError(t, err)
	require.Equal(t, tbl.Iterations, loaded.Iterations)

	strat := loaded.Lookup(table.ContextOOP, abstraction.Monotone, abstraction.Premium)
	require.InDelta(t, 1.0, strat.Sum(), 1e-3)
}
