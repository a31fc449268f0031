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
	"github.com/hearthkeep/lootledger/store"
)

type suspendCmd struct{}

func (*suspendCmd) Name() string     { return "suspend" }
func (*suspendCmd) Synopsis() string { return "pause the session clock" }
func (*suspendCmd) Usage() string {
	return `llg suspend

  Pauses duration accounting on the active session. Suspending an already
  suspended session does nothing.
`
}

func (*suspendCmd) SetFlags(f *flag.FlagSet) {}

func (*suspendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return lifecycle("suspended", func(t *lootledger.Tracker) error { return t.Suspend() })
}

type resumeCmd struct{}

func (*resumeCmd) Name() string     { return "resume" }
func (*resumeCmd) Synopsis() string { return "restart the session clock" }
func (*resumeCmd) Usage() string {
	return `llg resume

  Restarts duration accounting on the active session. Resuming a running
  session does nothing.
`
}

func (*resumeCmd) SetFlags(f *flag.FlagSet) {}

func (*resumeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return lifecycle("resumed", func(t *lootledger.Tracker) error { return t.Resume() })
}

// lifecycle runs one clock mutation against the active session and saves it.
func lifecycle(verb string, mutate func(*lootledger.Tracker) error) subcommands.ExitStatus {
	st, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	tracker, err := loadAndMutate(st, mutate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s := tracker.Active()
	m := lootledger.NewMetrics(s, time.Now())
	fmt.Printf("Session %d in %s %s, played %s.\n",
		s.ID, s.Zone, verb, renderer.FormatDuration(m.DurationSec))
	return subcommands.ExitSuccess
}

func loadAndMutate(st *store.Store, mutate func(*lootledger.Tracker) error) (*lootledger.Tracker, error) {
	tracker, err := LoadTracker(st)
	if err != nil {
		return nil, err
	}
	if err := mutate(tracker); err != nil {
		return nil, err
	}
	if err := SaveActive(st, tracker); err != nil {
		return nil, err
	}
	return tracker, nil
}
