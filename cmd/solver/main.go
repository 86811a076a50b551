package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level"`

	Generate GenerateCmd `cmd:"" help:"Run the full precomputation pipeline and export the strategy table"`
	Inspect  InspectCmd  `cmd:"" help:"Render strategies from an exported table"`
	Classify ClassifyCmd `cmd:"" help:"Classify a hand and board, optionally showing the table's advice"`
	Compare  CompareCmd  `cmd:"" help:"Diff two exported tables to gauge solver drift"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("solver"),
		kong.Description("Postflop strategy precomputation: abstraction, Monte Carlo equity, CFR+"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.New(os.Stderr)
	switch cli.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
