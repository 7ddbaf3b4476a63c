// Package config loads the table configuration from an HCL file. A missing
// file means defaults; a partial file has the gaps filled in.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete table configuration.
type Config struct {
	Table TableSettings `hcl:"table,block"`
}

// TableSettings controls the single-player table.
type TableSettings struct {
	StartingChips int    `hcl:"starting_chips,optional"`
	BetPresets    []int  `hcl:"bet_presets,optional"`
	DealerDelayMs int    `hcl:"dealer_delay_ms,optional"`
	HistoryDB     string `hcl:"history_db,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
}

// Default returns the stock configuration: the original table's bankroll
// and bet buttons.
func Default() *Config {
	return &Config{
		Table: TableSettings{
			StartingChips: 1000,
			BetPresets:    []int{50, 100, 250, 500},
			DealerDelayMs: 1000,
			HistoryDB:     "blackjack-history.db",
			LogLevel:      "info",
			LogFile:       "blackjack.log",
		},
	}
}

// Load reads configuration from an HCL file. A nonexistent file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Table.StartingChips == 0 {
		cfg.Table.StartingChips = def.Table.StartingChips
	}
	if len(cfg.Table.BetPresets) == 0 {
		cfg.Table.BetPresets = def.Table.BetPresets
	}
	if cfg.Table.DealerDelayMs == 0 {
		cfg.Table.DealerDelayMs = def.Table.DealerDelayMs
	}
	if cfg.Table.HistoryDB == "" {
		cfg.Table.HistoryDB = def.Table.HistoryDB
	}
	if cfg.Table.LogLevel == "" {
		cfg.Table.LogLevel = def.Table.LogLevel
	}
	if cfg.Table.LogFile == "" {
		cfg.Table.LogFile = def.Table.LogFile
	}
}

func validate(cfg *Config) error {
	if cfg.Table.StartingChips < 0 {
		return fmt.Errorf("starting_chips must not be negative, got %d", cfg.Table.StartingChips)
	}
	for _, preset := range cfg.Table.BetPresets {
		if preset <= 0 {
			return fmt.Errorf("bet presets must be positive, got %d", preset)
		}
	}
	if cfg.Table.DealerDelayMs < 0 {
		return fmt.Errorf("dealer_delay_ms must not be negative, got %d", cfg.Table.DealerDelayMs)
	}
	return nil
}
