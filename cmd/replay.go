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

type replayCmd struct {
	eventsFile string
	zone       string
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "dry-run an event file against a throwaway session" }
func (*replayCmd) Usage() string {
	return `llg replay -f <events.jsonl> [-z <zone>]

  Replays an event file into a fresh, unsaved session and prints the
  resulting report. Nothing is persisted; use it to preview a capture or to
  sanity-check a parser.
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eventsFile, "f", "", "Events file (JSONL)")
	f.StringVar(&c.zone, "z", "replay", "Zone label for the throwaway session")
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.eventsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <events.jsonl> is required")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.eventsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	events, err := lootledger.DecodeEvents(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tracker := lootledger.NewTracker(nil)
	s, err := tracker.Start(c.zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	recorder, err := NewRecorder(tracker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for i, ev := range events {
		if err := recorder.Record(ev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: event %d: %v\n", i+1, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SessionMarkdown(s, lootledger.NewMetrics(s, time.Now())))
	if report := lootledger.ValidateAll(s); !report.Passed() {
		fmt.Fprintf(os.Stderr, "Warning: invariant checks failed: %s\n", report)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
