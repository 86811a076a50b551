package table

import (
	"sort"

	"github.com/livegto/solver/internal/abstraction"
)

// Delta reports how far one (context, texture, bucket) strategy moved
// between two tables. Diff is the total variation distance, in [0, 1].
type Delta struct {
	Context Context
	Texture abstraction.Texture
	Bucket  abstraction.Bucket
	Diff    float64
	Old     Strategy
	New     Strategy
}

// Compare diffs every strategy entry between two tables and returns
// the ones whose total variation distance meets the threshold, largest
// first. Successive exports drifting far apart is an advisory signal
// of solver non-convergence, not an error.
func Compare(old, updated *Table, threshold float64) []Delta {
	var deltas []Delta
	for _, c := range Contexts() {
		for _, tex := range abstraction.Textures() {
			for _, b := range abstraction.Buckets() {
				oldStrat := old.Lookup(c, tex, b)
				newStrat := updated.Lookup(c, tex, b)
				diff := strategyDiff(oldStrat, newStrat)
				if diff >= threshold {
					deltas = append(deltas, Delta{
						Context: c, Texture: tex, Bucket: b,
						Diff: diff, Old: oldStrat, New: newStrat,
					})
				}
			}
		}
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].Diff > deltas[j].Diff })
	return deltas
}

// strategyDiff is the total variation distance between two
// distributions over the union of their actions.
func strategyDiff(a, b Strategy) float64 {
	total := 0.0
	for action, p := range a {
		q := b[action]
		if p > q {
			total += p - q
		} else {
			total += q - p
		}
	}
	for action, q := range b {
		if _, ok := a[action]; !ok {
			total += q
		}
	}
	return total / 2
}
