package abstraction

import "fmt"

// Bucket is one of 13 heuristic strength tiers, ordered strongest
// first. The ordering is canonical: the equity fallback and the export
// document both depend on it.
type Bucket uint8

const (
	Premium Bucket = iota
	Nut
	Strong
	TwoPair
	TopPair
	Overpair
	MidPair
	Underpair
	NutDraw
	Draw
	WeakMade
	Gutshot
	Air

	NumBuckets = 13
)

// String returns the bucket's wire name.
func (b Bucket) String() string {
	switch b {
	case Premium:
		return "premium"
	case Nut:
		return "nut"
	case Strong:
		return "strong"
	case TwoPair:
		return "two_pair"
	case TopPair:
		return "top_pair"
	case Overpair:
		return "overpair"
	case MidPair:
		return "mid_pair"
	case Underpair:
		return "underpair"
	case NutDraw:
		return "nut_draw"
	case Draw:
		return "draw"
	case WeakMade:
		return "weak_made"
	case Gutshot:
		return "gutshot"
	case Air:
		return "air"
	default:
		return "unknown"
	}
}

// Label returns a human-readable description for display output.
func (b Bucket) Label() string {
	switch b {
	case Premium:
		return "Premium (full house+, nut flush, top set)"
	case Nut:
		return "Nut (set, K/Q-high flush)"
	case Strong:
		return "Strong (overpair QQ+, TPTK, straight)"
	case TwoPair:
		return "Two pair"
	case TopPair:
		return "Top pair good kicker"
	case Overpair:
		return "Overpair (TT-JJ)"
	case MidPair:
		return "Mid pair / TP weak kicker"
	case Underpair:
		return "Underpair (pocket pair < board)"
	case NutDraw:
		return "Nut draw (combo draw, nut FD)"
	case Draw:
		return "Draw (flush draw, OESD)"
	case WeakMade:
		return "Weak made (bottom pair)"
	case Gutshot:
		return "Gutshot / backdoor / overcards"
	case Air:
		return "Air (nothing)"
	default:
		return "unknown"
	}
}

// Buckets returns all buckets in canonical strength order.
func Buckets() []Bucket {
	out := make([]Bucket, NumBuckets)
	for i := range out {
		out[i] = Bucket(i)
	}
	return out
}

// ParseBucket resolves a wire name back to a Bucket.
func ParseBucket(s string) (Bucket, error) {
	for _, b := range Buckets() {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown bucket %q", s)
}
