package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/hearthkeep/lootledger/cmd"
)

// completion describes the CLI surface for shell completion. Calling Complete
// is a no-op outside of a completion invocation.
func completion() {
	globalFlags := map[string]complete.Predictor{
		"db":       predict.Files("*.db"),
		"items":    predict.Files("*.yaml"),
		"prices":   predict.Files("*.yaml"),
		"auctions": predict.Files("*.json"),
		"tuning":   predict.Files("*.yaml"),
	}
	c := &complete.Command{
		Flags: globalFlags,
		Sub: map[string]*complete.Command{
			"start":    {Flags: map[string]complete.Predictor{"z": predict.Something}},
			"stop":     {},
			"suspend":  {},
			"resume":   {},
			"record":   {Flags: map[string]complete.Predictor{"f": predict.Files("*.jsonl"), "verify": predict.Nothing}},
			"replay":   {Flags: map[string]complete.Predictor{"f": predict.Files("*.jsonl"), "z": predict.Something}},
			"report":   {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"sessions": {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"check":    {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"topic":    {Args: predict.Set{"accounting", "valuation", "sessions", "prices", "readme", "*"}},
		},
	}
	c.Complete("llg")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
