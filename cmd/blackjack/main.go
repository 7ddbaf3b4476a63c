package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to the table config (HCL)" default:"blackjack.hcl"`

	Play     PlayCmd     `cmd:"" default:"1" help:"Play blackjack at the terminal"`
	Simulate SimulateCmd `cmd:"" help:"Auto-play rounds headlessly and report tallies"`
	History  HistoryCmd  `cmd:"" help:"Show recent rounds from the ledger"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
