package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/Ashy333/play-21-alone/internal/config"
	"github.com/Ashy333/play-21-alone/internal/sim"
)

type SimulateCmd struct {
	Rounds  int   `short:"n" help:"Number of rounds to play" default:"10000"`
	Workers int   `short:"w" help:"Parallel workers" default:"4"`
	Seed    int64 `help:"Base RNG seed" default:"1"`
	Bet     int   `help:"Flat bet per round" default:"100"`
	Debug   bool  `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := sim.Run(ctx, sim.Config{
		Rounds:        c.Rounds,
		Workers:       c.Workers,
		Seed:          c.Seed,
		Bet:           c.Bet,
		StartingChips: cfg.Table.StartingChips,
	}, logger)
	if err != nil {
		return err
	}

	wagered := result.Rounds * c.Bet
	fmt.Printf("Rounds:      %d\n", result.Rounds)
	fmt.Printf("Wins:        %d (%.1f%%)\n", result.Wins, percent(result.Wins, result.Rounds))
	fmt.Printf("Losses:      %d (%.1f%%)\n", result.Losses, percent(result.Losses, result.Rounds))
	fmt.Printf("Pushes:      %d (%.1f%%)\n", result.Pushes, percent(result.Pushes, result.Rounds))
	fmt.Printf("Blackjacks:  %d\n", result.Blackjacks)
	fmt.Printf("Net chips:   %+d (%.2f%% of %d wagered)\n",
		result.NetChips, 100*float64(result.NetChips)/float64(wagered), wagered)
	return nil
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
