package game

import (
	"strings"

	"github.com/Ashy333/play-21-alone/internal/deck"
)

// Hand is the derived view of a card sequence. It is always recomputed from
// the cards via Evaluate and never mutated in place; drawing a card means
// evaluating a new Hand over the extended sequence.
type Hand struct {
	Cards       []deck.Card
	Value       int
	HasAce      bool
	IsBust      bool
	IsBlackjack bool
}

// Evaluate computes the best blackjack value of the given cards. Every card
// counts as its face value with Aces at 11; while the total is over 21 and
// an Ace is still counted at 11, one Ace is demoted to 1 (subtract 10).
// A blackjack is exactly two cards totalling 21; three or more cards can
// reach 21 but never blackjack.
func Evaluate(cards []deck.Card) Hand {
	value := 0
	aces := 0
	hasAce := false

	for _, c := range cards {
		if c.IsAce() {
			aces++
			hasAce = true
		}
		value += c.Value()
	}

	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}

	held := make([]deck.Card, len(cards))
	copy(held, cards)

	return Hand{
		Cards:       held,
		Value:       value,
		HasAce:      hasAce,
		IsBust:      value > 21,
		IsBlackjack: len(cards) == 2 && value == 21,
	}
}

// IsSoft returns true if the hand contains an Ace still counted as 11.
func (h Hand) IsSoft() bool {
	if !h.HasAce {
		return false
	}
	hard := 0
	for _, c := range h.Cards {
		if c.IsAce() {
			hard++
		} else {
			hard += c.Value()
		}
	}
	return h.Value != hard
}

// String renders the hand as its cards plus the value, e.g. "A♠ K♥ (21)".
func (h Hand) String() string {
	if len(h.Cards) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
