// Package evaluator ranks 5-7 card poker hands. Lower HandRank values
// are stronger hands; the high bits carry the hand category so callers
// can branch on coarse strength without decoding kickers.
package evaluator

import (
	"math/bits"

	"github.com/livegto/solver/internal/deck"
)

// Category is the coarse class of a hand, ordered strongest first.
type Category uint8

const (
	StraightFlush Category = iota
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// String returns a description of the category
func (c Category) String() string {
	switch c {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	default:
		return "High Card"
	}
}

// HandRank encodes category and tiebreak: category in bits 20+, five
// inverted rank nibbles below. Lower is stronger, both across and
// within categories.
type HandRank uint32

// Category extracts the hand category from a rank.
func (h HandRank) Category() Category {
	return Category(h >> 20)
}

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 if equal.
func (h HandRank) Compare(other HandRank) int {
	if h < other {
		return 1
	}
	if h > other {
		return -1
	}
	return 0
}

// String returns a description of the hand class
func (h HandRank) String() string {
	return h.Category().String()
}

// hand is a 52-bit card set: bit = suit*13 + (rank-2), matching the
// per-suit 13-bit rank masks the evaluation works over.
type hand uint64

func makeHand(cards []deck.Card) hand {
	var h hand
	for _, c := range cards {
		h |= 1 << (int(c.Suit)*13 + int(c.Rank-deck.Two))
	}
	return h
}

func suitMask(h hand, suit int) uint16 {
	return uint16((uint64(h) >> (suit * 13)) & 0x1FFF)
}

// straightHigh returns the 0-12 high rank of the best straight in the
// rank mask, or -1 if none. The wheel counts as 5-high (rank 3).
func straightHigh(ranks uint16) int {
	mask := uint16(0x1F00) // A-K-Q-J-T
	for high := 12; high >= 4; high-- {
		if ranks&mask == mask {
			return high
		}
		mask >>= 1
	}
	if ranks&0x100F == 0x100F { // A-2-3-4-5
		return 3
	}
	return -1
}

// pack builds the tiebreak portion of a HandRank from up to five
// decisive ranks, most significant first. Ranks are 0-12 and inverted
// so lower packed values are stronger.
func pack(vals ...int) uint32 {
	tb := uint32(0)
	shift := 16
	for _, v := range vals {
		tb |= uint32(12-v) << shift
		shift -= 4
	}
	return tb
}

func rank(cat Category, vals ...int) HandRank {
	return HandRank(uint32(cat)<<20 | pack(vals...))
}

// topRanks returns up to n set ranks of mask in descending order.
func topRanks(mask uint16, n int) []int {
	out := make([]int, 0, n)
	for r := 12; r >= 0 && len(out) < n; r-- {
		if mask&(1<<r) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// Evaluate ranks the best 5-card hand from 5-7 cards.
func Evaluate(cards []deck.Card) HandRank {
	h := makeHand(cards)

	suits := [4]uint16{
		suitMask(h, 0),
		suitMask(h, 1),
		suitMask(h, 2),
		suitMask(h, 3),
	}
	ranks := suits[0] | suits[1] | suits[2] | suits[3]

	flushSuit := -1
	for i, s := range suits {
		if bits.OnesCount16(s) >= 5 {
			flushSuit = i
			break
		}
	}

	// Straight flush
	if flushSuit != -1 {
		if high := straightHigh(suits[flushSuit]); high != -1 {
			return rank(StraightFlush, high)
		}
	}

	// Rank multiplicities
	var counts [13]int
	for r := 0; r < 13; r++ {
		if ranks&(1<<r) == 0 {
			continue
		}
		for _, s := range suits {
			if s&(1<<r) != 0 {
				counts[r]++
			}
		}
	}

	quad, trip, secondTrip := -1, -1, -1
	var pairs []int // descending
	for r := 12; r >= 0; r-- {
		switch counts[r] {
		case 4:
			quad = r
		case 3:
			if trip == -1 {
				trip = r
			} else if secondTrip == -1 {
				secondTrip = r
			}
		case 2:
			pairs = append(pairs, r)
		}
	}

	if quad != -1 {
		kicker := -1
		for r := 12; r >= 0; r-- {
			if r != quad && counts[r] > 0 {
				kicker = r
				break
			}
		}
		return rank(FourOfAKind, quad, kicker)
	}

	if trip != -1 && (len(pairs) > 0 || secondTrip != -1) {
		pair := secondTrip
		if len(pairs) > 0 && pairs[0] > pair {
			pair = pairs[0]
		}
		return rank(FullHouse, trip, pair)
	}

	if flushSuit != -1 {
		return rank(Flush, topRanks(suits[flushSuit], 5)...)
	}

	if high := straightHigh(ranks); high != -1 {
		return rank(Straight, high)
	}

	if trip != -1 {
		kickers := kickersExcluding(counts, 2, trip)
		return rank(ThreeOfAKind, trip, kickers[0], kickers[1])
	}

	if len(pairs) >= 2 {
		kicker := kickersExcluding(counts, 1, pairs[0], pairs[1])
		return rank(TwoPair, pairs[0], pairs[1], kicker[0])
	}

	if len(pairs) == 1 {
		kickers := kickersExcluding(counts, 3, pairs[0])
		return rank(OnePair, pairs[0], kickers[0], kickers[1], kickers[2])
	}

	return rank(HighCard, topRanks(ranks, 5)...)
}

// kickersExcluding returns the n highest ranks present in counts that
// are not in the exclude list.
func kickersExcluding(counts [13]int, n int, exclude ...int) []int {
	out := make([]int, 0, n)
	for r := 12; r >= 0 && len(out) < n; r-- {
		if counts[r] == 0 {
			continue
		}
		skip := false
		for _, e := range exclude {
			if r == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	return out
}
