// Package abstraction maps concrete hands and boards into the coarse
// texture/bucket space the solver operates on. Both classifiers are
// pure functions: they are called at export time by the sampling loops
// and again at serve time on freshly dealt cards.
package abstraction

import (
	"fmt"

	"github.com/livegto/solver/internal/deck"
)

// Texture categorises a 3-card board by suitedness, pairing,
// connectivity and height.
type Texture uint8

const (
	Monotone Texture = iota
	Paired
	WetConnected
	WetTwoTone
	HighDryAce
	HighDryKQ
	MediumDry
	LowDry

	NumTextures = 8
)

// String returns the texture's wire name as consumed by the serving layer.
func (t Texture) String() string {
	switch t {
	case Monotone:
		return "monotone"
	case Paired:
		return "paired"
	case WetConnected:
		return "wet_connected"
	case WetTwoTone:
		return "wet_twotone"
	case HighDryAce:
		return "high_dry_A"
	case HighDryKQ:
		return "high_dry_K"
	case MediumDry:
		return "medium_dry"
	case LowDry:
		return "low_dry"
	default:
		return "unknown"
	}
}

// Label returns a human-readable description for display output.
func (t Texture) Label() string {
	switch t {
	case Monotone:
		return "Monotone (3+ same suit)"
	case Paired:
		return "Paired board"
	case WetConnected:
		return "Wet connected (straight-draw heavy)"
	case WetTwoTone:
		return "Wet two-tone (flush-draw heavy)"
	case HighDryAce:
		return "Ace-high dry"
	case HighDryKQ:
		return "K/Q-high dry"
	case MediumDry:
		return "Medium dry (J-8 high)"
	case LowDry:
		return "Low dry (7-high or less)"
	default:
		return "unknown"
	}
}

// Textures returns all textures in canonical order.
func Textures() []Texture {
	out := make([]Texture, NumTextures)
	for i := range out {
		out[i] = Texture(i)
	}
	return out
}

// ParseTexture resolves a wire name back to a Texture.
func ParseTexture(s string) (Texture, error) {
	for _, t := range Textures() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown texture %q", s)
}

// ClassifyTexture classifies a 3-card flop into one of the eight
// texture categories. Priority: monotone, then paired, then
// connectivity, then suit count, then height tiers.
func ClassifyTexture(board []deck.Card) Texture {
	var suitCounts [4]int
	var rankCounts [15]int
	highest := deck.Two
	for _, c := range board {
		suitCounts[c.Suit]++
		rankCounts[c.Rank]++
		if c.Rank > highest {
			highest = c.Rank
		}
	}

	maxSuit := 0
	for _, n := range suitCounts {
		if n > maxSuit {
			maxSuit = n
		}
	}
	if maxSuit >= 3 {
		return Monotone
	}
	for _, n := range rankCounts {
		if n >= 2 {
			return Paired
		}
	}

	// Distinct ranks from here on; find the widest adjacent gap.
	ranks := make([]deck.Rank, 0, len(board))
	for r := deck.Two; r <= deck.Ace; r++ {
		if rankCounts[r] > 0 {
			ranks = append(ranks, r)
		}
	}
	maxGap := 0
	for i := 1; i < len(ranks); i++ {
		if gap := int(ranks[i] - ranks[i-1]); gap > maxGap {
			maxGap = gap
		}
	}

	if maxGap <= 2 {
		return WetConnected
	}
	if maxSuit >= 2 {
		return WetTwoTone
	}

	switch {
	case highest == deck.Ace:
		return HighDryAce
	case highest >= deck.Queen:
		return HighDryKQ
	case highest >= deck.Eight:
		return MediumDry
	default:
		return LowDry
	}
}
