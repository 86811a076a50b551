package cfr

import (
	"context"

	"github.com/livegto/solver/internal/abstraction"
)

// minBucketProb is the weight below which a bucket is skipped during
// training. Its info sets then average to uniform rather than being
// shaped by traversal.
const minBucketProb = 1e-6

// Strategy is a normalized action-probability distribution.
type Strategy = map[Action]float64

// Profile holds one texture's averaged strategies per bucket. The
// facing-bet entries fold together every tree position where a player
// confronts an unanswered bet, since consumers treat that as a single
// context whatever line produced it.
type Profile struct {
	OOPFirst  [abstraction.NumBuckets]Strategy
	IPVsCheck [abstraction.NumBuckets]Strategy
	FacingBet [abstraction.NumBuckets]Strategy
}

// Solver runs CFR+ over the abstracted tree for a single texture. The
// info-set table is fully enumerated up front over (decision node, bet
// size, bucket), so every lookup during traversal and extraction is
// total. Not safe for concurrent use; solve separate textures with
// separate solvers.
type Solver struct {
	equity     [abstraction.NumBuckets][abstraction.NumBuckets]float64
	probs      [abstraction.NumBuckets]float64
	sets       [numDecisionNodes][numBetVariants][abstraction.NumBuckets]infoSet
	iterations int
}

// New builds a solver from one texture's equity matrix and bucket
// distribution. Probabilities are renormalized defensively.
func New(equity [abstraction.NumBuckets][abstraction.NumBuckets]float64, probs [abstraction.NumBuckets]float64) *Solver {
	s := &Solver{equity: equity}

	total := 0.0
	for _, p := range probs {
		total += p
	}
	if total > 0 {
		for i := range probs {
			probs[i] /= total
		}
	}
	s.probs = probs

	for n := nodeOOPRoot; n < numDecisionNodes; n++ {
		count := len(n.actions())
		for v := 0; v < numBetVariants; v++ {
			for b := range s.sets[n][v] {
				s.sets[n][v][b].n = count
			}
		}
	}
	return s
}

// betVariant maps an outstanding-bet sizing to an info-set table index.
// States with no bet outstanding carry the zero Action and land on
// variant 0, which those nodes have to themselves.
func betVariant(a Action) int {
	switch a {
	case ActionBetM:
		return 1
	case ActionBetL:
		return 2
	}
	return 0
}

func (s *Solver) set(n node, bet Action, b abstraction.Bucket) *infoSet {
	return &s.sets[n][betVariant(bet)][b]
}

// Iterations returns how many training iterations have completed.
func (s *Solver) Iterations() int {
	return s.iterations
}

// Train runs the given number of CFR+ iterations. Each iteration
// traverses the tree for both roles across every ordered pair of
// buckets with non-negligible probability. Checks ctx between
// iterations; a cancelled run keeps the regrets accumulated so far.
func (s *Solver) Train(ctx context.Context, iterations int) error {
	root := rootState()
	for t := 0; t < iterations; t++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, hero := range abstraction.Buckets() {
			if s.probs[hero] < minBucketProb {
				continue
			}
			for _, opp := range abstraction.Buckets() {
				if s.probs[opp] < minBucketProb {
					continue
				}
				s.traverse(root, hero, opp, OOP, s.probs[opp])
				s.traverse(root, hero, opp, IP, s.probs[opp])
			}
		}
		s.iterations++
	}
	return nil
}

// traverse computes the counterfactual value of st for the traversing
// role, updating that role's regrets (CFR+, floored at zero) and the
// opponent's reach-weighted strategy sums along the way.
func (s *Solver) traverse(st state, hero, opp abstraction.Bucket, traversing Role, reachOpp float64) float64 {
	switch st.node {
	case nodeFolded:
		return st.foldValue(traversing)
	case nodeShowdown:
		return st.pot*s.equity[hero][opp] - st.invested(traversing)
	}

	actor := st.node.actor()
	bucket := hero
	if actor != traversing {
		bucket = opp
	}
	is := s.set(st.node, st.bet, bucket)
	acts := st.node.actions()

	var strat, values [maxActions]float64
	is.currentStrategy(strat[:len(acts)])

	nodeValue := 0.0
	for i, a := range acts {
		childReach := reachOpp
		if actor != traversing {
			childReach *= strat[i]
		}
		values[i] = s.traverse(step(st, a), hero, opp, traversing, childReach)
		nodeValue += strat[i] * values[i]
	}

	if actor == traversing {
		for i := range acts {
			is.regret[i] = max(is.regret[i]+values[i]-nodeValue, 0)
		}
	} else {
		for i := range acts {
			is.strategySum[i] += reachOpp * strat[i]
		}
	}
	return nodeValue
}

// Strategies extracts the averaged strategies for every bucket. The
// facing-bet strategy averages the six positions where a bet is faced:
// OOP after check-bet and IP after an opening bet, one per bet size.
func (s *Solver) Strategies() Profile {
	var p Profile
	sizes := []Action{ActionBetS, ActionBetM, ActionBetL}

	for _, b := range abstraction.Buckets() {
		p.OOPFirst[b] = s.set(nodeOOPRoot, 0, b).averageStrategy(openActions)
		p.IPVsCheck[b] = s.set(nodeIPVsCheck, 0, b).averageStrategy(openActions)

		merged := make(Strategy, len(facingBetActions))
		positions := 0
		for _, n := range []node{nodeOOPVsBet, nodeIPVsBet} {
			for _, bet := range sizes {
				avg := s.set(n, bet, b).averageStrategy(facingBetActions)
				for a, prob := range avg {
					merged[a] += prob
				}
				positions++
			}
		}
		total := 0.0
		for a := range merged {
			merged[a] /= float64(positions)
			total += merged[a]
		}
		if total > 0 {
			for a := range merged {
				merged[a] /= total
			}
		}
		p.FacingBet[b] = merged
	}
	return p
}
