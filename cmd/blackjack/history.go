package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Ashy333/play-21-alone/internal/config"
	"github.com/Ashy333/play-21-alone/internal/history"
)

type HistoryCmd struct {
	Limit int `short:"n" help:"Number of rounds to show" default:"20"`
}

func (c *HistoryCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.New(os.Stderr)
	ledger, err := history.Open(cfg.Table.HistoryDB, logger)
	if err != nil {
		return fmt.Errorf("open history ledger: %w", err)
	}
	defer func() {
		if err := ledger.Close(); err != nil {
			logger.Error("failed to close ledger", "error", err)
		}
	}()

	rounds, err := ledger.Recent(c.Limit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("%-20s %6s %6s %-6s %-24s %-24s %8s\n",
		"PLAYED", "BET", "PAYOUT", "RESULT", "PLAYER", "DEALER", "CHIPS")
	for _, r := range rounds {
		result := r.Result
		if r.Blackjack {
			result = "bj!"
		}
		fmt.Printf("%-20s %6d %6d %-6s %-24s %-24s %8d\n",
			r.PlayedAt.Local().Format("2006-01-02 15:04:05"),
			r.Bet, r.Payout, result,
			fmt.Sprintf("%s (%d)", r.PlayerHand, r.PlayerValue),
			fmt.Sprintf("%s (%d)", r.DealerHand, r.DealerValue),
			r.ChipsAfter,
		)
	}
	return nil
}
