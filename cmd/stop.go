package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hearthkeep/lootledger"
	"github.com/hearthkeep/lootledger/renderer"
)

type stopCmd struct{}

func (*stopCmd) Name() string     { return "stop" }
func (*stopCmd) Synopsis() string { return "finalize the active session" }
func (*stopCmd) Usage() string {
	return `llg stop

  Stops the active session, archives it and prints its final report.
`
}

func (*stopCmd) SetFlags(f *flag.FlagSet) {}

func (*stopCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	tracker, err := LoadTracker(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := tracker.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := st.Save(s.Record()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SessionMarkdown(s, lootledger.NewMetrics(s, s.EndedAt)))
	return subcommands.ExitSuccess
}
