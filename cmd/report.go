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

type reportCmd struct {
	id int64
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a session's economic report" }
func (*reportCmd) Usage() string {
	return `llg report [-i <session_id>]

  Prints the full report of a session: cash flow, unsold inventory by bucket
  and the loot table. Defaults to the active session.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "i", 0, "Session id to report on (defaults to the active session)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := loadOneSession(c.id)
	if s == nil {
		return status
	}
	printMarkdown(renderer.SessionMarkdown(s, lootledger.NewMetrics(s, time.Now())))
	return subcommands.ExitSuccess
}

// loadOneSession resolves a session by id, or the active one for id 0.
func loadOneSession(id int64) (*lootledger.Session, subcommands.ExitStatus) {
	st, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	defer st.Close()

	tracker, err := LoadTracker(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	if id == 0 {
		s := tracker.Active()
		if s == nil {
			fmt.Fprintln(os.Stderr, "Error: no active session; use -i <session_id>")
			return nil, subcommands.ExitFailure
		}
		return s, subcommands.ExitSuccess
	}
	s := tracker.Session(id)
	if s == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown session %d\n", id)
		return nil, subcommands.ExitFailure
	}
	return s, subcommands.ExitSuccess
}
