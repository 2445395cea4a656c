package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Play a head-to-head series between two strategies"`
	Arena    ArenaCmd         `cmd:"" help:"Run every matchup in an HCL suite config"`
	Play     PlayCmd          `cmd:"" help:"Play a single game and print each move"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chopsticksforbots"),
		kong.Description("Chopsticks game engine for bot-vs-bot play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
