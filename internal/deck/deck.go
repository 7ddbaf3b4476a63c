package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a deal is attempted on an empty deck. A
// single blackjack round draws at most a dozen of the 52 cards, so hitting
// this means the caller forgot to build a fresh deck for the round.
var ErrExhausted = errors.New("deck: no cards remaining")

// Deck is an ordered sequence of cards consumed from the top (the end of
// the slice). The RNG is injected so shuffles are reproducible under a
// fixed seed.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck, shuffled with the provided RNG.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.shuffle()
	return d
}

// shuffle is a Fisher–Yates walk from the last index down, giving every
// permutation of the 52 cards equal probability.
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// NewStacked creates a deck holding exactly the given cards, dealt in the
// order listed. Useful for rigging known hands in tests.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Deal removes and returns the top card of the deck.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deal order (top last).
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
