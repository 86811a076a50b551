package cfr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livegto/solver/internal/abstraction"
)

// symmetricInputs gives every bucket equal probability and 50% equity
// in every matchup.
func symmetricInputs() ([abstraction.NumBuckets][abstraction.NumBuckets]float64, [abstraction.NumBuckets]float64) {
	var eq [abstraction.NumBuckets][abstraction.NumBuckets]float64
	var probs [abstraction.NumBuckets]float64
	for h := range eq {
		probs[h] = 1.0 / abstraction.NumBuckets
		for v := range eq[h] {
			eq[h][v] = 0.5
		}
	}
	return eq, probs
}

// lopsidedInputs concentrates all probability on premium and air, with
// premium a heavy equity favorite.
func lopsidedInputs() ([abstraction.NumBuckets][abstraction.NumBuckets]float64, [abstraction.NumBuckets]float64) {
	var eq [abstraction.NumBuckets][abstraction.NumBuckets]float64
	for h := range eq {
		for v := range eq[h] {
			eq[h][v] = 0.5
		}
	}
	eq[abstraction.Premium][abstraction.Air] = 0.95
	eq[abstraction.Air][abstraction.Premium] = 0.05

	var probs [abstraction.NumBuckets]float64
	probs[abstraction.Premium] = 0.5
	probs[abstraction.Air] = 0.5
	return eq, probs
}

func trainedSolver(t *testing.T, iterations int) *Solver {
	t.Helper()
	eq, probs := symmetricInputs()
	s := New(eq, probs)
	require.NoError(t, s.Train(context.Background(), iterations))
	return s
}

func TestNewNormalizesProbs(t *testing.T) {
	eq, _ := symmetricInputs()
	var probs [abstraction.NumBuckets]float64
	for i := range probs {
		probs[i] = 2.0 // sums to 26
	}
	s := New(eq, probs)
	total := 0.0
	for _, p := range s.probs {
		total += p
	}
	require.InDelta(t, 1.0, total, 1e-9)
}

func TestStrategiesSumToOne(t *testing.T) {
	s := trainedSolver(t, 50)
	p := s.Strategies()

	check := func(name string, strats [abstraction.NumBuckets]Strategy) {
		for _, b := range abstraction.Buckets() {
			strat := strats[b]
			require.NotEmpty(t, strat, "%s %s", name, b)
			sum := 0.0
			for a, prob := range strat {
				require.GreaterOrEqual(t, prob, 0.0, "%s %s %s", name, b, a)
				sum += prob
			}
			require.InDelta(t, 1.0, sum, 1e-3, "%s %s", name, b)
		}
	}
	check("oop_first", p.OOPFirst)
	check("ip_vs_check", p.IPVsCheck)
	check("facing_bet", p.FacingBet)
}

func TestOOPFirstNeverFolds(t *testing.T) {
	s := trainedSolver(t, 50)
	p := s.Strategies()
	for _, b := range abstraction.Buckets() {
		_, hasFold := p.OOPFirst[b][ActionFold]
		require.False(t, hasFold, "fold is not a legal opening action (%s)", b)
		_, hasFold = p.IPVsCheck[b][ActionFold]
		require.False(t, hasFold, "fold is not legal after a check (%s)", b)
	}
}

func TestRegretsNeverNegative(t *testing.T) {
	s := trainedSolver(t, 100)
	for n := nodeOOPRoot; n < numDecisionNodes; n++ {
		for v := 0; v < numBetVariants; v++ {
			for b := range s.sets[n][v] {
				for i := 0; i < s.sets[n][v][b].n; i++ {
					require.GreaterOrEqual(t, s.sets[n][v][b].regret[i], 0.0)
				}
			}
		}
	}
}

func TestFacingBetActionsOnly(t *testing.T) {
	s := trainedSolver(t, 50)
	p := s.Strategies()
	for _, b := range abstraction.Buckets() {
		for a := range p.FacingBet[b] {
			require.Contains(t, facingBetActions, a)
		}
	}
}

// A dominant bucket should bet for value far more often than a hopeless
// one once the solver has converged a little.
func TestFavoriteBetsMoreThanUnderdog(t *testing.T) {
	eq, probs := lopsidedInputs()
	s := New(eq, probs)
	require.NoError(t, s.Train(context.Background(), 2000))
	p := s.Strategies()

	betMass := func(strat Strategy) float64 {
		return strat[ActionBetS] + strat[ActionBetM] + strat[ActionBetL]
	}
	require.Greater(t,
		betMass(p.OOPFirst[abstraction.Premium]),
		betMass(p.OOPFirst[abstraction.Air]))

	// The underdog should fold to bets more often than the favorite.
	require.Greater(t,
		p.FacingBet[abstraction.Air][ActionFold],
		p.FacingBet[abstraction.Premium][ActionFold])
}

func TestSkippedBucketsAverageUniform(t *testing.T) {
	eq, probs := lopsidedInputs()
	s := New(eq, probs)
	require.NoError(t, s.Train(context.Background(), 10))
	p := s.Strategies()

	// Buckets with zero probability are never traversed; their
	// strategies stay uniform so lookups remain total.
	strat := p.OOPFirst[abstraction.Draw]
	require.Len(t, strat, len(openActions))
	for _, prob := range strat {
		require.InDelta(t, 0.25, prob, 1e-9)
	}
}

func TestTrainHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eq, probs := symmetricInputs()
	s := New(eq, probs)
	require.ErrorIs(t, s.Train(ctx, 1000), context.Canceled)
	require.Zero(t, s.Iterations())
}

func TestIterationsAccumulate(t *testing.T) {
	s := trainedSolver(t, 3)
	require.Equal(t, 3, s.Iterations())
	require.NoError(t, s.Train(context.Background(), 2))
	require.Equal(t, 5, s.Iterations())
}
