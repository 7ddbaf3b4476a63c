package game

import (
	"testing"

	"github.com/Ashy333/play-21-alone/internal/deck"
)

func cards(specs ...deck.Rank) []deck.Card {
	out := make([]deck.Card, len(specs))
	for i, r := range specs {
		out[i] = deck.NewCard(deck.Suit(i%4), r)
	}
	return out
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cards       []deck.Card
		value       int
		hasAce      bool
		isBust      bool
		isBlackjack bool
	}{
		{"empty hand", nil, 0, false, false, false},
		{"blackjack ace king", cards(deck.Ace, deck.King), 21, true, false, true},
		{"twenty", cards(deck.Ten, deck.Queen), 20, false, false, false},
		{"hard sixteen", cards(deck.Ten, deck.Six), 16, false, false, false},
		{"soft seventeen", cards(deck.Ace, deck.Six), 17, true, false, false},
		{"pair of aces", cards(deck.Ace, deck.Ace), 12, true, false, false},
		{"three aces", cards(deck.Ace, deck.Ace, deck.Ace), 13, true, false, false},
		{"ace demoted after hit", cards(deck.Ace, deck.Six, deck.Nine), 16, true, false, false},
		{"twenty one in three", cards(deck.Seven, deck.Seven, deck.Seven), 21, false, false, false},
		{"bust", cards(deck.Ten, deck.Nine, deck.Five), 24, false, true, false},
		{"ace saves a bust", cards(deck.Ten, deck.Nine, deck.Ace), 20, true, false, false},
		{"two aces one demotion each", cards(deck.Ace, deck.Ace, deck.Nine), 21, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Evaluate(tt.cards)
			if h.Value != tt.value {
				t.Errorf("value: expected %d, got %d", tt.value, h.Value)
			}
			if h.HasAce != tt.hasAce {
				t.Errorf("hasAce: expected %v, got %v", tt.hasAce, h.HasAce)
			}
			if h.IsBust != tt.isBust {
				t.Errorf("isBust: expected %v, got %v", tt.isBust, h.IsBust)
			}
			if h.IsBlackjack != tt.isBlackjack {
				t.Errorf("isBlackjack: expected %v, got %v", tt.isBlackjack, h.IsBlackjack)
			}
		})
	}
}

func TestEvaluateIsOrderInvariant(t *testing.T) {
	t.Parallel()
	a := Evaluate(cards(deck.Ace, deck.Six, deck.Nine))
	b := Evaluate(cards(deck.Nine, deck.Ace, deck.Six))
	c := Evaluate(cards(deck.Six, deck.Nine, deck.Ace))

	for _, h := range []Hand{b, c} {
		if h.Value != a.Value || h.IsBust != a.IsBust || h.HasAce != a.HasAce {
			t.Errorf("evaluation depends on card order: %+v vs %+v", a, h)
		}
	}
}

func TestEvaluateNoAcesIsPlainSum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards []deck.Card
		sum   int
	}{
		{cards(deck.Two, deck.Three), 5},
		{cards(deck.King, deck.Queen, deck.Jack), 30},
		{cards(deck.Ten, deck.Nine, deck.Two), 21},
	}

	for _, tt := range tests {
		h := Evaluate(tt.cards)
		if h.Value != tt.sum {
			t.Errorf("expected plain sum %d, got %d", tt.sum, h.Value)
		}
		if h.IsBust != (tt.sum > 21) {
			t.Errorf("bust flag wrong for sum %d", tt.sum)
		}
	}
}

func TestEvaluateDoesNotAliasInput(t *testing.T) {
	t.Parallel()
	in := cards(deck.Ten, deck.Six)
	h := Evaluate(in)
	in[0] = deck.NewCard(deck.Spades, deck.Ace)

	if h.Cards[0].Rank != deck.Ten {
		t.Error("hand aliases the caller's card slice")
	}
}

func TestIsSoft(t *testing.T) {
	t.Parallel()
	if !Evaluate(cards(deck.Ace, deck.Six)).IsSoft() {
		t.Error("A,6 should be soft")
	}
	if Evaluate(cards(deck.Ace, deck.Six, deck.Nine)).IsSoft() {
		t.Error("A,6,9 counts the ace as 1; not soft")
	}
	if Evaluate(cards(deck.Ten, deck.Seven)).IsSoft() {
		t.Error("10,7 has no ace; not soft")
	}
}

func TestDealerShouldHit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand Hand
		hit  bool
	}{
		{"sixteen", Evaluate(cards(deck.Ten, deck.Six)), true},
		{"soft sixteen", Evaluate(cards(deck.Ace, deck.Five)), true},
		{"hard seventeen", Evaluate(cards(deck.Ten, deck.Seven)), false},
		{"soft seventeen stands too", Evaluate(cards(deck.Ace, deck.Six)), false},
		{"eleven", Evaluate(cards(deck.Six, deck.Five)), true},
		{"twenty", Evaluate(cards(deck.Ten, deck.Queen)), false},
		{"bust hand", Evaluate(cards(deck.Ten, deck.Nine, deck.Five)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DealerShouldHit(tt.hand); got != tt.hit {
				t.Errorf("value %d: expected hit=%v, got %v", tt.hand.Value, tt.hit, got)
			}
		})
	}
}
