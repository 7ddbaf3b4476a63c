package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashy333/play-21-alone/internal/deck"
	"github.com/Ashy333/play-21-alone/internal/game"
	"github.com/Ashy333/play-21-alone/internal/randutil"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	g := game.New(randutil.New(1))
	return New(g, []int{50, 100, 250, 500}, log.New(io.Discard))
}

func dealtEvent(to game.Seat, ranks ...deck.Rank) game.CardDealtEvent {
	cards := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = deck.NewCard(deck.Suit(i%4), r)
	}
	return game.CardDealtEvent{
		To:   to,
		Card: cards[len(cards)-1],
		Hand: game.Evaluate(cards),
	}
}

func TestBettingPromptListsPresets(t *testing.T) {
	m := testModel(t)
	view := m.View()

	assert.Contains(t, view, "Place your bet")
	for _, preset := range []string{"50", "100", "250", "500"} {
		assert.Contains(t, view, preset)
	}
}

func TestApplyEventsTracksHands(t *testing.T) {
	m := testModel(t)

	m.applyEvent(game.RoundStartEvent{Bet: 100, Chips: 900})
	assert.Equal(t, game.Dealing, m.snap.Phase)
	assert.Equal(t, 100, m.snap.Bet)

	m.applyEvent(dealtEvent(game.PlayerSeat, deck.Ten))
	m.applyEvent(dealtEvent(game.DealerSeat, deck.Six))
	m.applyEvent(dealtEvent(game.PlayerSeat, deck.Ten, deck.Nine))
	m.applyEvent(dealtEvent(game.DealerSeat, deck.Six, deck.Ten))
	m.applyEvent(game.PlayerTurnEvent{Hand: m.snap.PlayerHand})

	assert.Equal(t, game.PlayerTurn, m.snap.Phase)
	assert.Equal(t, 19, m.snap.PlayerHand.Value)
	assert.Equal(t, 16, m.snap.DealerHand.Value)
}

func TestDealerHoleCardHiddenDuringPlayerTurn(t *testing.T) {
	m := testModel(t)
	m.applyEvent(game.RoundStartEvent{Bet: 100, Chips: 900})
	m.applyEvent(dealtEvent(game.PlayerSeat, deck.Ten))
	m.applyEvent(dealtEvent(game.DealerSeat, deck.Six))
	m.applyEvent(dealtEvent(game.PlayerSeat, deck.Ten, deck.Nine))
	m.applyEvent(dealtEvent(game.DealerSeat, deck.Six, deck.Ten))
	m.applyEvent(game.PlayerTurnEvent{Hand: m.snap.PlayerHand})

	require.True(t, m.holeHidden())
	view := m.View()
	assert.Contains(t, view, "##")
	// The dealer's total must not leak while the hole card is down.
	assert.NotContains(t, view, "Dealer (16)")

	m.applyEvent(game.DealerRevealEvent{Hand: m.snap.DealerHand})
	assert.False(t, m.holeHidden())
	assert.NotContains(t, m.View(), "##")
}

func TestResultBanners(t *testing.T) {
	tests := []struct {
		name   string
		result game.Result
		player game.Hand
		banner string
	}{
		{"plain win", game.Win, game.Evaluate([]deck.Card{deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine)}), "YOU WIN!"},
		{"blackjack win", game.Win, game.Evaluate([]deck.Card{deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King)}), "BLACKJACK!"},
		{"plain loss", game.Lose, game.Evaluate([]deck.Card{deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Seven)}), "DEALER WINS"},
		{"bust loss", game.Lose, game.Evaluate([]deck.Card{deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine), deck.NewCard(deck.Clubs, deck.Five)}), "BUST!"},
		{"push", game.Push, game.Evaluate([]deck.Card{deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Seven)}), "PUSH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t)
			m.snap.Result = tt.result
			m.snap.PlayerHand = tt.player
			assert.Contains(t, m.resultBanner(), tt.banner)
		})
	}
}

func TestRoundEndEventUpdatesChipsAndLog(t *testing.T) {
	m := testModel(t)
	m.applyEvent(game.RoundEndEvent{
		Result:          game.Win,
		Payout:          250,
		Bet:             100,
		Chips:           1150,
		PlayerBlackjack: true,
		Player:          game.Evaluate([]deck.Card{deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King)}),
		Dealer:          game.Evaluate([]deck.Card{deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Seven)}),
	})

	assert.Equal(t, game.GameOver, m.snap.Phase)
	assert.Equal(t, 1150, m.snap.Chips)
	assert.Contains(t, strings.Join(m.gameLog, "\n"), "Blackjack! You win 250 chips.")
}

func TestModelReceivesEngineEvents(t *testing.T) {
	g := game.New(randutil.New(1), game.WithDeckSource(func() *deck.Deck {
		return deck.NewStacked(
			deck.NewCard(deck.Spades, deck.Ace),
			deck.NewCard(deck.Hearts, deck.Ten),
			deck.NewCard(deck.Clubs, deck.King),
			deck.NewCard(deck.Diamonds, deck.Seven),
		)
	}))
	m := New(g, []int{50, 100}, log.New(io.Discard))

	done := make(chan error, 1)
	go func() { done <- g.PlaceBet(t.Context(), 100) }()

	// The dealt blackjack plays straight through: expect round start, four
	// cards, the reveal, and the round end.
	for i := 0; i < 7; i++ {
		select {
		case e := <-m.events:
			m.applyEvent(e)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
	require.NoError(t, <-done)

	assert.Equal(t, game.GameOver, m.snap.Phase)
	assert.Equal(t, game.Win, m.snap.Result)
	assert.Equal(t, 1150, m.snap.Chips)
}
