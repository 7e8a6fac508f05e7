package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run a batch of self-play games and summarise the scores"`
	Play     PlayCmd          `cmd:"" help:"Play one self-play game and print the transcript"`
	History  HistoryCmd       `cmd:"" help:"Work with recorded games"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hanabot"),
		kong.Description("Rule-based cooperative card game agent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
