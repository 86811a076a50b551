package abstraction

import (
	"sort"

	"github.com/livegto/solver/internal/deck"
	"github.com/livegto/solver/internal/evaluator"
)

// ClassifyHand maps two hole cards and a 3-5 card board into one of the
// 13 strength buckets. The evaluator's category is the primary branch;
// draw and kicker heuristics refine it. Deterministic and pure.
func ClassifyHand(hole, board []deck.Card) Bucket {
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	switch evaluator.Evaluate(all).Category() {
	case evaluator.StraightFlush, evaluator.FourOfAKind, evaluator.FullHouse:
		return Premium
	case evaluator.Flush:
		return classifyFlush(hole, board)
	case evaluator.Straight:
		return classifyStraight(hole, board)
	case evaluator.ThreeOfAKind:
		return classifyTrips(hole, board)
	case evaluator.TwoPair:
		return TwoPair
	case evaluator.OnePair:
		return classifyPair(hole, board)
	default:
		return classifyUnmade(hole, board)
	}
}

func classifyFlush(hole, board []deck.Card) Bucket {
	var suitCounts [4]int
	for _, c := range hole {
		suitCounts[c.Suit]++
	}
	for _, c := range board {
		suitCounts[c.Suit]++
	}
	flushSuit := deck.Spades
	for s := deck.Spades; s <= deck.Clubs; s++ {
		if suitCounts[s] > suitCounts[flushSuit] {
			flushSuit = s
		}
	}

	best := deck.Rank(0)
	for _, c := range hole {
		if c.Suit == flushSuit && c.Rank > best {
			best = c.Rank
		}
	}
	switch {
	case best == 0:
		// Flush on the board, hero holds none of the suit: shared
		// equity rather than a made hand for hero.
		return MidPair
	case best == deck.Ace:
		return Premium
	case best >= deck.Queen:
		return Nut
	default:
		return Strong
	}
}

func classifyStraight(hole, board []deck.Card) Bucket {
	usesBoth := true
	for _, h := range hole {
		for _, b := range board {
			if h.Rank == b.Rank {
				usesBoth = false
			}
		}
	}
	if usesBoth {
		return Strong
	}
	// One-card straight plays closer to two pair.
	return TwoPair
}

func classifyTrips(hole, board []deck.Card) Bucket {
	if hole[0].Rank == hole[1].Rank {
		if hole[0].Rank == boardRanksDesc(board)[0] {
			return Premium // top set
		}
		return Nut
	}
	return Strong // board-paired trips
}

func classifyPair(hole, board []deck.Card) Bucket {
	h0, h1 := hole[0].Rank, hole[1].Rank
	if h0 < h1 {
		h0, h1 = h1, h0
	}
	bRanks := boardRanksDesc(board)
	top := bRanks[0]
	second := deck.Rank(0)
	third := deck.Rank(0)
	if len(bRanks) > 1 {
		second = bRanks[1]
	}
	if len(bRanks) > 2 {
		third = bRanks[2]
	}

	// Overpair
	if h0 == h1 && h0 > top {
		switch {
		case h0 >= deck.Queen:
			return Strong
		case h0 >= deck.Ten:
			return Overpair
		default:
			return Underpair
		}
	}

	// Top pair, split by kicker
	if h0 == top || h1 == top {
		kicker := h1
		if h1 == top {
			kicker = h0
		}
		if kicker >= deck.Jack {
			return TopPair
		}
		return MidPair
	}

	// Middle pair, upgraded when a real draw rides along
	if h0 == second || h1 == second {
		if d, ok := checkDraws(hole, board); ok && (d == Draw || d == NutDraw) {
			return d
		}
		return MidPair
	}

	// Bottom pair
	if h0 == third || h1 == third {
		return WeakMade
	}

	// Pocket pair below the top board card
	if h0 == h1 && h0 < top {
		if h0 > second {
			return Underpair
		}
		return WeakMade
	}

	if d, ok := checkDraws(hole, board); ok {
		return d
	}
	return WeakMade
}

func classifyUnmade(hole, board []deck.Card) Bucket {
	if d, ok := checkDraws(hole, board); ok {
		return d
	}
	h0 := hole[0].Rank
	if hole[1].Rank > h0 {
		h0 = hole[1].Rank
	}
	if h0 > boardRanksDesc(board)[0] && h0 >= deck.Jack {
		return Gutshot // live overcards carry marginal equity
	}
	return Air
}

// checkDraws detects flush and straight draws over hole+board. The
// second return is false when no draw exists.
func checkDraws(hole, board []deck.Card) (Bucket, bool) {
	var suitCounts [4]int
	present := make(map[deck.Rank]bool, 7)
	for _, c := range hole {
		suitCounts[c.Suit]++
		present[c.Rank] = true
	}
	for _, c := range board {
		suitCounts[c.Suit]++
		present[c.Rank] = true
	}

	ranks := make([]int, 0, len(present))
	for r := range present {
		ranks = append(ranks, int(r))
	}
	sort.Ints(ranks)

	flushDraw := false
	for _, n := range suitCounts {
		if n == 4 {
			flushDraw = true
		}
	}
	oesd := hasOpenEnded(ranks)
	gutshot := hasGutshot(ranks)

	switch {
	case flushDraw && (oesd || gutshot):
		return NutDraw, true
	case flushDraw, oesd:
		return Draw, true
	case gutshot:
		return Gutshot, true
	}

	// Backdoor flush only matters on the flop.
	if len(board) == 3 {
		for _, n := range suitCounts {
			if n == 3 {
				return Gutshot, true
			}
		}
	}
	return 0, false
}

// hasOpenEnded reports four consecutive ranks with room to extend on
// both ends. The ace is also tried as a low card below the deuce.
func hasOpenEnded(sortedRanks []int) bool {
	ext := extendAceLow(sortedRanks)
	for i := 0; i+3 < len(ext); i++ {
		if ext[i+3]-ext[i] == 3 {
			if ext[i] > 1 && ext[i+3] < int(deck.Ace) {
				return true
			}
		}
	}
	return false
}

// hasGutshot reports four ranks spanning a window of exactly five.
func hasGutshot(sortedRanks []int) bool {
	ext := extendAceLow(sortedRanks)
	for i := 0; i+3 < len(ext); i++ {
		if ext[i+3]-ext[i] == 4 {
			return true
		}
	}
	return false
}

func extendAceLow(sortedRanks []int) []int {
	for _, r := range sortedRanks {
		if r == int(deck.Ace) {
			return append([]int{1}, sortedRanks...)
		}
	}
	return sortedRanks
}

func boardRanksDesc(board []deck.Card) []deck.Rank {
	out := make([]deck.Rank, len(board))
	for i, c := range board {
		out[i] = c.Rank
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}
