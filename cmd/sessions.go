package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/hearthkeep/lootledger"
	"github.com/hearthkeep/lootledger/renderer"
)

type sessionsCmd struct {
	limit int
}

func (*sessionsCmd) Name() string     { return "sessions" }
func (*sessionsCmd) Synopsis() string { return "list finished sessions" }
func (*sessionsCmd) Usage() string {
	return `llg sessions [-n <count>]

  Lists finished sessions, most recent first.
`
}

func (c *sessionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of sessions to list (0 lists all)")
}

func (c *sessionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	now := time.Now()
	var metrics []*lootledger.Metrics
	for s := range tracker.Sessions(c.limit) {
		metrics = append(metrics, lootledger.NewMetrics(s, now))
	}
	printMarkdown(renderer.SessionsMarkdown(metrics))
	return subcommands.ExitSuccess
}
