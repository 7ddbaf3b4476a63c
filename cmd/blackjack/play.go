package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Ashy333/play-21-alone/internal/config"
	"github.com/Ashy333/play-21-alone/internal/game"
	"github.com/Ashy333/play-21-alone/internal/history"
	"github.com/Ashy333/play-21-alone/internal/randutil"
	"github.com/Ashy333/play-21-alone/internal/tui"
)

type PlayCmd struct {
	Seed      int64 `help:"Shuffle RNG seed (0 means time-based)" default:"0"`
	NoHistory bool  `help:"Don't record rounds to the ledger"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Table.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("failed to close log file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.Table.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting session", "seed", seed, "chips", cfg.Table.StartingChips)

	g := game.New(randutil.New(seed),
		game.WithChips(cfg.Table.StartingChips),
		game.WithLogger(logger),
		game.WithPacer(game.NewClockPacer(time.Duration(cfg.Table.DealerDelayMs)*time.Millisecond)),
	)

	if !c.NoHistory {
		ledger, err := history.Open(cfg.Table.HistoryDB, logger)
		if err != nil {
			return fmt.Errorf("open history ledger: %w", err)
		}
		defer func() {
			if err := ledger.Close(); err != nil {
				logger.Error("failed to close ledger", "error", err)
			}
		}()
		g.EventBus().Subscribe(ledger)
	}

	return tui.Run(g, cfg.Table.BetPresets, logger)
}
