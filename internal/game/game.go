package game

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Ashy333/play-21-alone/internal/deck"
)

// Phase is the current stage of a round.
type Phase int

const (
	Betting Phase = iota
	Dealing
	PlayerTurn
	DealerTurn
	GameOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case Dealing:
		return "dealing"
	case PlayerTurn:
		return "playerTurn"
	case DealerTurn:
		return "dealerTurn"
	case GameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// DefaultChips is the bankroll a fresh session starts with.
const DefaultChips = 1000

// Snapshot is a value copy of the game state, safe to hold across
// transitions. Collaborators observe snapshots and events; they never see
// the live state.
type Snapshot struct {
	Phase      Phase
	Result     Result
	PlayerHand Hand
	DealerHand Hand
	CardsLeft  int
	Chips      int
	Bet        int
	Dealing    bool
}

// Game owns the single live round state for a session. All entry points
// are serialized behind one mutex, so a host using real parallelism still
// sees one transition in flight at a time.
//
// Event subscribers are invoked synchronously while the state lock is held;
// they must render from the event payloads and not call back into the Game.
type Game struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *log.Logger
	bus    EventBus
	pacer  Pacer

	newDeck func() *deck.Deck

	phase   Phase
	result  Result
	player  Hand
	dealer  Hand
	deck    *deck.Deck
	chips   int
	bet     int
	dealing bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithEventBus sets the event bus transitions are published to.
func WithEventBus(bus EventBus) Option {
	return func(g *Game) { g.bus = bus }
}

// WithPacer installs the presentation-delay hook invoked between cards.
func WithPacer(pacer Pacer) Option {
	return func(g *Game) { g.pacer = pacer }
}

// WithChips overrides the starting bankroll.
func WithChips(chips int) Option {
	return func(g *Game) { g.chips = chips }
}

// WithDeckSource overrides how each round's deck is built, giving tests
// complete control over the cards dealt.
func WithDeckSource(newDeck func() *deck.Deck) Option {
	return func(g *Game) { g.newDeck = newDeck }
}

// New creates a game in the betting phase. The RNG drives every shuffle for
// the session; pass a seeded one (see randutil.New) for deterministic play.
func New(rng *rand.Rand, opts ...Option) *Game {
	g := &Game{
		rng:    rng,
		logger: log.New(io.Discard),
		bus:    NewEventBus(),
		pacer:  NopPacer{},
		phase:  Betting,
		result: NoResult,
		player: Evaluate(nil),
		dealer: Evaluate(nil),
		chips:  DefaultChips,
	}
	g.newDeck = func() *deck.Deck { return deck.New(g.rng) }
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// EventBus returns the bus collaborators subscribe to.
func (g *Game) EventBus() EventBus {
	return g.bus
}

// Snapshot returns a value copy of the current state. Available
// synchronously after any entry point returns.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	cardsLeft := 0
	if g.deck != nil {
		cardsLeft = g.deck.Remaining()
	}
	return Snapshot{
		Phase:      g.phase,
		Result:     g.result,
		PlayerHand: g.player,
		DealerHand: g.dealer,
		CardsLeft:  cardsLeft,
		Chips:      g.chips,
		Bet:        g.bet,
		Dealing:    g.dealing,
	}
}

// PlaceBet deducts the bet from the bankroll and runs the initial deal: a
// fresh shuffled deck, then four cards popped player, dealer, player,
// dealer. If the deal makes a player blackjack the round auto-plays
// straight through the dealer's turn; otherwise control passes to the
// player. The context only bounds pacer waits, never the deal itself.
func (g *Game) PlaceBet(ctx context.Context, amount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != Betting {
		return fmt.Errorf("place bet in phase %s: %w", g.phase, ErrInvalidTransition)
	}
	if amount <= 0 {
		return fmt.Errorf("place bet of %d: %w", amount, ErrInvalidBet)
	}
	if amount > g.chips {
		return fmt.Errorf("place bet of %d with %d chips: %w", amount, g.chips, ErrInsufficientChips)
	}

	g.chips -= amount
	g.bet = amount
	g.phase = Dealing
	g.dealing = true
	g.logger.Info("bet placed", "bet", amount, "chips", g.chips)
	g.bus.Publish(RoundStartEvent{Bet: amount, Chips: g.chips, timestamp: time.Now()})

	if err := g.dealLocked(ctx); err != nil {
		return err
	}

	g.dealing = false
	if g.player.IsBlackjack {
		// No player action on a natural; the dealer plays out immediately.
		g.phase = DealerTurn
		return g.runDealerLocked(ctx)
	}

	g.phase = PlayerTurn
	g.bus.Publish(PlayerTurnEvent{Hand: g.player, timestamp: time.Now()})
	return nil
}

func (g *Game) dealLocked(ctx context.Context) error {
	g.deck = g.newDeck()
	g.player = Evaluate(nil)
	g.dealer = Evaluate(nil)

	g.pacer.Pause(ctx)
	for i := 0; i < 4; i++ {
		seat := PlayerSeat
		if i%2 == 1 {
			seat = DealerSeat
		}
		if err := g.dealCardLocked(seat); err != nil {
			return err
		}
	}

	g.logger.Debug("initial deal complete",
		"player", g.player.String(), "playerValue", g.player.Value,
		"dealer", g.dealer.String(), "dealerValue", g.dealer.Value)
	return nil
}

func (g *Game) dealCardLocked(seat Seat) error {
	card, err := g.deck.Deal()
	if err != nil {
		return fmt.Errorf("deal to %s: %w", seat, err)
	}

	var hand Hand
	if seat == DealerSeat {
		g.dealer = Evaluate(append(g.dealer.Cards, card))
		hand = g.dealer
	} else {
		g.player = Evaluate(append(g.player.Cards, card))
		hand = g.player
	}

	g.bus.Publish(CardDealtEvent{To: seat, Card: card, Hand: hand, timestamp: time.Now()})
	return nil
}

// Hit draws one card into the player's hand. Going over 21 ends the round
// immediately with a loss; the bet is already gone, so no payout moves.
func (g *Game) Hit() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PlayerTurn {
		return fmt.Errorf("hit in phase %s: %w", g.phase, ErrInvalidTransition)
	}

	card, err := g.deck.Deal()
	if err != nil {
		return fmt.Errorf("hit: %w", err)
	}

	g.player = Evaluate(append(g.player.Cards, card))
	g.logger.Debug("player hit", "card", card.String(), "value", g.player.Value)
	g.bus.Publish(PlayerHitEvent{Card: card, Hand: g.player, timestamp: time.Now()})

	if g.player.IsBust {
		g.bus.Publish(PlayerBustEvent{Hand: g.player, timestamp: time.Now()})
		g.settleLocked(Lose)
	}
	return nil
}

// Stand freezes the player's hand and plays the dealer out. The dealer loop
// runs to completion even if ctx is cancelled; cancellation only skips the
// pacer waits between draws.
func (g *Game) Stand(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PlayerTurn {
		return fmt.Errorf("stand in phase %s: %w", g.phase, ErrInvalidTransition)
	}

	g.bus.Publish(PlayerStandEvent{Hand: g.player, timestamp: time.Now()})
	g.phase = DealerTurn
	return g.runDealerLocked(ctx)
}

func (g *Game) runDealerLocked(ctx context.Context) error {
	g.bus.Publish(DealerRevealEvent{Hand: g.dealer, timestamp: time.Now()})

	for DealerShouldHit(g.dealer) {
		g.pacer.Pause(ctx)
		card, err := g.deck.Deal()
		if err != nil {
			return fmt.Errorf("dealer draw: %w", err)
		}
		g.dealer = Evaluate(append(g.dealer.Cards, card))
		g.logger.Debug("dealer draw", "card", card.String(), "value", g.dealer.Value)
		g.bus.Publish(DealerDrawEvent{Card: card, Hand: g.dealer, timestamp: time.Now()})
	}

	g.settleLocked(Resolve(g.player, g.dealer))
	return nil
}

// settleLocked applies the payout and ends the round.
func (g *Game) settleLocked(result Result) {
	payout := Payout(result, g.bet, g.player.IsBlackjack)
	g.chips += payout
	g.result = result
	g.phase = GameOver

	g.logger.Info("round over",
		"result", result.String(),
		"payout", payout,
		"chips", g.chips,
		"player", g.player.Value,
		"dealer", g.dealer.Value)

	g.bus.Publish(RoundEndEvent{
		Result:          result,
		Payout:          payout,
		Bet:             g.bet,
		Chips:           g.chips,
		PlayerBlackjack: g.player.IsBlackjack,
		Player:          g.player,
		Dealer:          g.dealer,
		timestamp:       time.Now(),
	})
}

// NewRound clears the table for the next bet, keeping the bankroll. The
// next deck is built at the next deal, not here.
func (g *Game) NewRound() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != GameOver {
		return fmt.Errorf("new round in phase %s: %w", g.phase, ErrInvalidTransition)
	}

	g.result = NoResult
	g.player = Evaluate(nil)
	g.dealer = Evaluate(nil)
	g.bet = 0
	g.dealing = false
	g.phase = Betting
	g.logger.Debug("new round", "chips", g.chips)
	return nil
}
