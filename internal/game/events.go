package game

import (
	"time"

	"github.com/Ashy333/play-21-alone/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeCardDealt    EventType = "card_dealt"
	EventTypePlayerTurn   EventType = "player_turn"
	EventTypePlayerHit    EventType = "player_hit"
	EventTypePlayerBust   EventType = "player_bust"
	EventTypePlayerStand  EventType = "player_stand"
	EventTypeDealerReveal EventType = "dealer_reveal"
	EventTypeDealerDraw   EventType = "dealer_draw"
	EventTypeRoundEnd     EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// Seat identifies which hand a dealt card went to.
type Seat int

const (
	PlayerSeat Seat = iota
	DealerSeat
)

// String returns the string representation of a seat
func (s Seat) String() string {
	if s == DealerSeat {
		return "dealer"
	}
	return "player"
}

// RoundStartEvent is published when a bet is placed and the deal begins
type RoundStartEvent struct {
	Bet       int
	Chips     int
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// CardDealtEvent is published for each card of the initial deal
type CardDealtEvent struct {
	To        Seat
	Card      deck.Card
	Hand      Hand
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// PlayerTurnEvent is published when the deal completes without a player
// blackjack and the player may act
type PlayerTurnEvent struct {
	Hand      Hand
	timestamp time.Time
}

func (e PlayerTurnEvent) EventType() EventType { return EventTypePlayerTurn }
func (e PlayerTurnEvent) Timestamp() time.Time { return e.timestamp }

// PlayerHitEvent is published when the player draws a card
type PlayerHitEvent struct {
	Card      deck.Card
	Hand      Hand
	timestamp time.Time
}

func (e PlayerHitEvent) EventType() EventType { return EventTypePlayerHit }
func (e PlayerHitEvent) Timestamp() time.Time { return e.timestamp }

// PlayerBustEvent is published when a hit takes the player over 21
type PlayerBustEvent struct {
	Hand      Hand
	timestamp time.Time
}

func (e PlayerBustEvent) EventType() EventType { return EventTypePlayerBust }
func (e PlayerBustEvent) Timestamp() time.Time { return e.timestamp }

// PlayerStandEvent is published when the player stands and the dealer
// takes over
type PlayerStandEvent struct {
	Hand      Hand
	timestamp time.Time
}

func (e PlayerStandEvent) EventType() EventType { return EventTypePlayerStand }
func (e PlayerStandEvent) Timestamp() time.Time { return e.timestamp }

// DealerRevealEvent is published when the dealer's hole card is turned over
type DealerRevealEvent struct {
	Hand      Hand
	timestamp time.Time
}

func (e DealerRevealEvent) EventType() EventType { return EventTypeDealerReveal }
func (e DealerRevealEvent) Timestamp() time.Time { return e.timestamp }

// DealerDrawEvent is published for each card the dealer draws; collaborators
// may render the hand between draws
type DealerDrawEvent struct {
	Card      deck.Card
	Hand      Hand
	timestamp time.Time
}

func (e DealerDrawEvent) EventType() EventType { return EventTypeDealerDraw }
func (e DealerDrawEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published once the round is resolved and the payout has
// been applied. It carries everything a collaborator needs to phrase the
// result without reading engine state.
type RoundEndEvent struct {
	Result          Result
	Payout          int
	Bet             int
	Chips           int
	PlayerBlackjack bool
	Player          Hand
	Dealer          Hand
	timestamp       time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// SubscriberFunc adapts a plain function to the EventSubscriber interface.
type SubscriberFunc func(event GameEvent)

// OnEvent calls the wrapped function
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }
