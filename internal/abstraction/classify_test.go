package abstraction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livegto/solver/internal/deck"
)

func bucket(t *testing.T, hole, board string) Bucket {
	t.Helper()
	return ClassifyHand(deck.MustParseCards(hole), deck.MustParseCards(board))
}

func TestClassifyHandScenarios(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
		want  Bucket
	}{
		{"ace-high flush on monotone", "Ah5h", "Kh9h2h", Premium},
		{"whiffed on dry ace-high", "2s3h", "AcKdQh", Air},
		{"flopped full house", "KsKh", "Kd7s7h", Premium},
		{"open-ended straight draw", "JhTs", "9c8d2h", Draw},
		{"king-high flush", "Kh4h", "Qh9h2h", Nut},
		{"small flush", "8h4h", "Qh9h2h", Strong},
		{"two-card straight", "JhTd", "9c8d7h", Strong},
		{"one-card straight", "Jh9s", "Tc9d8h7s", TwoPair},
		{"top set", "9s9h", "9c5d2h", Premium},
		{"lower set", "5s5h", "9c5d2h", Nut},
		{"board-paired trips", "9sKh", "9c9d2h", Strong},
		{"two pair", "9s5h", "9c5d2h", TwoPair},
		{"overpair queens", "QsQh", "9c5d2h", Strong},
		{"overpair jacks", "JsJh", "9c5d2h", Overpair},
		{"small overpair", "8s8h", "7c5d2h", Underpair},
		{"top pair good kicker", "As9h", "9c5d2h", TopPair},
		{"top pair weak kicker", "7s9h", "9c5d2h", MidPair},
		{"middle pair", "As5h", "9c5d2h", MidPair},
		{"bottom pair", "As2h", "9c5d2h", WeakMade},
		{"underpair above second card", "7s7h", "9c5d2h", Underpair},
		{"underpair below second card", "4s4h", "9c5d2h", WeakMade},
		{"flush draw", "Ah5h", "Kh9h2c", Draw},
		{"combo draw", "Jh Th", "9h8h2c", NutDraw},
		{"gutshot", "JhTd", "8c7d2h", Gutshot},
		{"backdoor flush", "Ah5h", "Kh9c2d", Gutshot},
		{"live overcards", "AhJd", "9c5d2h", Gutshot},
		{"dead low cards", "5h3d", "Tc8d2h", Air},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, bucket(t, tt.hole, tt.board))
		})
	}
}

func TestClassifyHandDeterministic(t *testing.T) {
	hole := deck.MustParseCards("Ah5h")
	board := deck.MustParseCards("Kh9h2h")
	first := ClassifyHand(hole, board)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ClassifyHand(hole, board))
	}
}

func TestBoardFlushWithoutHeroCard(t *testing.T) {
	// All five board cards share a suit; hero's equity is shared.
	require.Equal(t, MidPair, bucket(t, "As2d", "Kh9h7h4h2h"))
}

func TestMiddlePairWithFlushDraw(t *testing.T) {
	// Middle pair plus a flush draw takes the draw tier.
	require.Equal(t, Draw, bucket(t, "7h5h", "9h7c2h"))
}

func TestTurnAndRiverBoards(t *testing.T) {
	// Backdoor flush only counts on the flop.
	require.Equal(t, Air, bucket(t, "Ts3h", "Kh9c2d6h"))

	// Straight completed on the turn using both hole cards.
	require.Equal(t, Strong, bucket(t, "JhTd", "9c8d2h7s"))
}

func TestBucketOrderingAndWireNames(t *testing.T) {
	want := []string{
		"premium", "nut", "strong", "two_pair", "top_pair", "overpair",
		"mid_pair", "underpair", "nut_draw", "draw", "weak_made",
		"gutshot", "air",
	}
	all := Buckets()
	require.Len(t, all, NumBuckets)
	for i, b := range all {
		require.Equal(t, want[i], b.String())
		parsed, err := ParseBucket(want[i])
		require.NoError(t, err)
		require.Equal(t, b, parsed)
	}
}
