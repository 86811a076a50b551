package deck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livegto/solver/internal/randutil"
)

func TestDeckDealsUniqueCards(t *testing.T) {
	d := NewDeck(randutil.New(1))
	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, ok := d.Deal()
		require.True(t, ok)
		require.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	_, ok := d.Deal()
	require.False(t, ok, "53rd deal should fail")
}

func TestDeckDeterministicUnderSeed(t *testing.T) {
	a := NewDeck(randutil.New(42)).DealN(9)
	b := NewDeck(randutil.New(42)).DealN(9)
	require.Equal(t, a, b)

	c := NewDeck(randutil.New(43)).DealN(9)
	require.NotEqual(t, a, c)
}

func TestDeckReset(t *testing.T) {
	d := NewDeck(randutil.New(7))
	d.DealN(10)
	require.Equal(t, 42, d.Remaining())
	d.Reset()
	require.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool)
	for _, card := range d.DealN(52) {
		require.False(t, seen[card])
		seen[card] = true
	}
	require.Len(t, seen, 52)
}

func TestDealInto(t *testing.T) {
	d := NewDeck(randutil.New(3))
	buf := make([]Card, 9)
	require.Equal(t, 9, d.DealInto(buf))
	require.Equal(t, 43, d.Remaining())
}
