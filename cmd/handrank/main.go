package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate one or more five-card hands"`
	Compare CompareCmd       `cmd:"" help:"Rank hands against each other and report the winner"`
	Deal    DealCmd          `cmd:"" help:"Deal random hands and show who wins"`
	Verify  VerifyCmd        `cmd:"" help:"Cross-check the fast evaluator against the pattern classifier"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Five-card poker hand evaluator"),
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
