// Package table builds, persists, and serves the exported strategy
// table: the per-texture bucket distributions, equity matrix, and
// averaged solver strategies that the serving layer reads.
package table

import (
	"fmt"
	"sort"

	"github.com/livegto/solver/internal/abstraction"
	"github.com/livegto/solver/internal/cfr"
	"github.com/livegto/solver/internal/equity"
)

// Version is the table format version written to and expected from
// exported documents.
const Version = "1.0"

// Context is the situation a strategy lookup answers for.
type Context uint8

const (
	// ContextOOP is the out-of-position player acting first.
	ContextOOP Context = iota
	// ContextIP is the in-position player after a check.
	ContextIP
	// ContextFacingBet is either player confronting an unanswered
	// bet, regardless of the betting line that produced it.
	ContextFacingBet

	numContexts
)

// String returns the wire name used in exported documents.
func (c Context) String() string {
	switch c {
	case ContextOOP:
		return "OOP"
	case ContextIP:
		return "IP"
	case ContextFacingBet:
		return "FACING_BET"
	}
	return fmt.Sprintf("context(%d)", uint8(c))
}

// Contexts returns all lookup contexts in wire order.
func Contexts() []Context {
	return []Context{ContextOOP, ContextIP, ContextFacingBet}
}

// ParseContext maps a wire name back to a Context.
func ParseContext(s string) (Context, error) {
	for _, c := range Contexts() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown context %q", s)
}

// Strategy is an action-probability distribution keyed by action wire
// name.
type Strategy map[string]float64

// Sum returns the total probability mass.
func (s Strategy) Sum() float64 {
	total := 0.0
	for _, p := range s {
		total += p
	}
	return total
}

// normalize rescales the strategy in place to sum to 1.
func (s Strategy) normalize() {
	total := s.Sum()
	if total <= 0 {
		return
	}
	for a := range s {
		s[a] /= total
	}
}

// Table is the complete solved artifact for all textures. Immutable
// once built; lookups are total over the enumerated
// (context, texture, bucket) space.
type Table struct {
	Version      string
	Iterations   int
	BucketProbs  equity.Distribution
	EquityMatrix equity.Matrix

	strategies [numContexts][abstraction.NumTextures][abstraction.NumBuckets]Strategy
}

// Build assembles a table from the equity estimates and one solved
// profile per texture.
func Build(dist equity.Distribution, matrix equity.Matrix, profiles *[abstraction.NumTextures]cfr.Profile, iterations int) *Table {
	t := &Table{
		Version:      Version,
		Iterations:   iterations,
		BucketProbs:  dist,
		EquityMatrix: matrix,
	}
	for _, tex := range abstraction.Textures() {
		p := &profiles[tex]
		for _, b := range abstraction.Buckets() {
			t.strategies[ContextOOP][tex][b] = toWire(p.OOPFirst[b])
			t.strategies[ContextIP][tex][b] = toWire(p.IPVsCheck[b])
			t.strategies[ContextFacingBet][tex][b] = toWire(p.FacingBet[b])
		}
	}
	return t
}

func toWire(s cfr.Strategy) Strategy {
	out := make(Strategy, len(s))
	for a, p := range s {
		out[a.String()] = p
	}
	return out
}

// Lookup returns the strategy for an enumerated triple. Lookups are
// total: a missing or empty entry falls back to checking (or an even
// fold/call split when facing a bet) rather than failing.
func (t *Table) Lookup(c Context, tex abstraction.Texture, b abstraction.Bucket) Strategy {
	s := t.strategies[c][tex][b]
	if len(s) == 0 {
		return DefaultStrategy(c)
	}
	return s
}

// DefaultStrategy is the fallback distribution for a context with no
// solved entry.
func DefaultStrategy(c Context) Strategy {
	if c == ContextFacingBet {
		return Strategy{"fold": 0.5, "call": 0.5}
	}
	return Strategy{"check": 1.0}
}

// actionOrder breaks probability ties deterministically, in the wire
// vocabulary's canonical order.
var actionOrder = map[string]int{
	"check": 0, "bet_s": 1, "bet_m": 2, "bet_l": 3,
	"fold": 4, "call": 5, "raise": 6,
}

// CorrectActions returns the acceptable actions for a mixed strategy:
// the single top action when it carries at least half the probability,
// otherwise the top action plus a runner-up at 0.25 or better.
func CorrectActions(s Strategy) []string {
	type entry struct {
		action string
		prob   float64
	}
	entries := make([]entry, 0, len(s))
	for a, p := range s {
		entries = append(entries, entry{a, p})
	}
	if len(entries) == 0 {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].prob != entries[j].prob {
			return entries[i].prob > entries[j].prob
		}
		return actionOrder[entries[i].action] < actionOrder[entries[j].action]
	})

	if entries[0].prob >= 0.50 {
		return []string{entries[0].action}
	}
	correct := []string{entries[0].action}
	if len(entries) > 1 && entries[1].prob >= 0.25 {
		correct = append(correct, entries[1].action)
	}
	return correct
}
