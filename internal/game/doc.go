// Package game implements the core blackjack engine: hand valuation with
// soft-ace handling, the dealer's stand-on-17 policy, win/lose/push
// resolution with payouts, and the betting → dealing → playerTurn →
// dealerTurn → gameOver phase machine.
//
// # Basic usage
//
// Create a game and play a round:
//
//	g := game.New(randutil.New(time.Now().UnixNano()))
//	g.PlaceBet(ctx, 100)
//	g.Hit()
//	g.Stand(ctx)
//	snap := g.Snapshot() // snap.Result, snap.Chips
//	g.NewRound()
//
// # Deterministic testing
//
// The RNG is the only source of nondeterminism. A fixed seed gives a fixed
// shuffle for every round of the session:
//
//	g := game.New(randutil.New(42))
//
// # Observation
//
// Collaborators subscribe to the event bus for card-by-card transitions
// (the dealer's turn publishes one event per draw) or pull Snapshot after
// each call. The Pacer hook gives presentation layers a pause between
// cards; the engine resolves the same state whether or not anyone waits.
package game
