package deck

import rand "math/rand/v2"

// Deck represents a 52-card deck dealt with an injected RNG. Callers own
// the RNG so sampling loops stay deterministic under a fixed seed.
type Deck struct {
	cards [52]Card
	dealt int
	rng   *rand.Rand
}

// NewDeck creates a full deck. The deck is not shuffled up front; Deal
// draws uniformly from the undealt cards.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(suit, rank)
			i++
		}
	}
	return d
}

// Deal removes and returns a uniformly random undealt card.
func (d *Deck) Deal() (Card, bool) {
	if d.dealt >= len(d.cards) {
		return Card{}, false
	}
	// Incremental Fisher-Yates: swap a random undealt card into position.
	j := d.dealt + d.rng.IntN(len(d.cards)-d.dealt)
	d.cards[d.dealt], d.cards[j] = d.cards[j], d.cards[d.dealt]
	card := d.cards[d.dealt]
	d.dealt++
	return card, true
}

// DealN deals n cards from the deck.
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards)-d.dealt {
		n = len(d.cards) - d.dealt
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// DealInto fills dst from the deck and reports how many cards were dealt.
// It avoids the per-sample allocation of DealN in hot sampling loops.
func (d *Deck) DealInto(dst []Card) int {
	n := 0
	for i := range dst {
		card, ok := d.Deal()
		if !ok {
			break
		}
		dst[i] = card
		n++
	}
	return n
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.dealt
}

// Reset returns all dealt cards to the deck.
func (d *Deck) Reset() {
	d.dealt = 0
}
