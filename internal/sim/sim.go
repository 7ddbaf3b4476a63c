// Package sim plays headless blackjack rounds in bulk. The player follows
// the dealer-mimic strategy (hit below 17), which is enough to exercise the
// whole engine and produce house-edge numbers for a seed.
package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Ashy333/play-21-alone/internal/game"
	"github.com/Ashy333/play-21-alone/internal/randutil"
)

// Config controls a simulation run.
type Config struct {
	Rounds        int
	Workers       int
	Seed          int64
	Bet           int
	StartingChips int
}

// Result aggregates the outcomes of all simulated rounds.
type Result struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	NetChips   int
}

// Run plays cfg.Rounds rounds split across cfg.Workers workers, each on its
// own deterministically-derived RNG. The same Config always produces the
// same Result.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (Result, error) {
	if cfg.Rounds <= 0 {
		return Result{}, fmt.Errorf("sim: rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Workers > cfg.Rounds {
		cfg.Workers = cfg.Rounds
	}
	if cfg.Bet <= 0 {
		return Result{}, fmt.Errorf("sim: bet must be positive, got %d", cfg.Bet)
	}
	if cfg.StartingChips <= 0 {
		cfg.StartingChips = game.DefaultChips
	}
	if cfg.Bet > cfg.StartingChips {
		return Result{}, fmt.Errorf("sim: bet %d exceeds starting chips %d", cfg.Bet, cfg.StartingChips)
	}

	var (
		mu    sync.Mutex
		total Result
	)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		rounds := cfg.Rounds / cfg.Workers
		if w < cfg.Rounds%cfg.Workers {
			rounds++
		}
		seed := cfg.Seed + int64(w)

		g.Go(func() error {
			partial, err := runWorker(ctx, cfg, seed, rounds)
			if err != nil {
				return err
			}
			mu.Lock()
			total.merge(partial)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	logger.Info("simulation complete",
		"rounds", total.Rounds,
		"wins", total.Wins,
		"losses", total.Losses,
		"pushes", total.Pushes,
		"blackjacks", total.Blackjacks,
		"netChips", total.NetChips)
	return total, nil
}

func runWorker(ctx context.Context, cfg Config, seed int64, rounds int) (Result, error) {
	rng := randutil.New(seed)
	table := game.New(rng, game.WithChips(cfg.StartingChips))

	var r Result
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// Rebuy when the bankroll can no longer cover the bet. The RNG
		// carries over, so the card sequence stays seed-determined.
		if table.Snapshot().Chips < cfg.Bet {
			table = game.New(rng, game.WithChips(cfg.StartingChips))
		}

		before := table.Snapshot().Chips
		if err := playRound(ctx, table, cfg.Bet); err != nil {
			return Result{}, err
		}

		snap := table.Snapshot()
		r.Rounds++
		r.NetChips += snap.Chips - before
		switch snap.Result {
		case game.Win:
			r.Wins++
			if snap.PlayerHand.IsBlackjack {
				r.Blackjacks++
			}
		case game.Lose:
			r.Losses++
		case game.Push:
			r.Pushes++
		}

		if err := table.NewRound(); err != nil {
			return Result{}, err
		}
	}
	return r, nil
}

// playRound bets and then mimics the dealer: hit below 17, stand otherwise.
func playRound(ctx context.Context, table *game.Game, bet int) error {
	if err := table.PlaceBet(ctx, bet); err != nil {
		return err
	}

	for table.Snapshot().Phase == game.PlayerTurn {
		if table.Snapshot().PlayerHand.Value >= 17 {
			return table.Stand(ctx)
		}
		if err := table.Hit(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Result) merge(other Result) {
	r.Rounds += other.Rounds
	r.Wins += other.Wins
	r.Losses += other.Losses
	r.Pushes += other.Pushes
	r.Blackjacks += other.Blackjacks
	r.NetChips += other.NetChips
}
