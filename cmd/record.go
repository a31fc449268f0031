package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/hearthkeep/lootledger"
)

type recordCmd struct {
	eventsFile string
	verify     bool
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "apply a stream of events to the active session" }
func (*recordCmd) Usage() string {
	return `llg record [-f <events.jsonl>] [-verify]

  Reads events (JSONL, one per line) and applies them to the active session.
  By default events are read from stdin.

Usage Examples:
# Pipe events from the game log parser.
$ parse-combat-log | llg record

# Apply a captured file with invariant checking after every event.
$ llg record -f tonight.jsonl -verify
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eventsFile, "f", "-", "Events file (JSONL); - reads stdin")
	f.BoolVar(&c.verify, "verify", false, "Run the invariant checks after every event")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	events, err := c.readEvents()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

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
	recorder, err := NewRecorder(tracker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	recorder.Verify = c.verify

	for i, ev := range events {
		if err := recorder.Record(ev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: event %d: %v\n", i+1, err)
			return subcommands.ExitFailure
		}
	}
	if err := SaveActive(st, tracker); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %d events into session %d.\n", len(events), tracker.Active().ID)
	return subcommands.ExitSuccess
}

func (c *recordCmd) readEvents() ([]lootledger.Event, error) {
	var r io.Reader = os.Stdin
	if c.eventsFile != "-" {
		f, err := os.Open(c.eventsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return lootledger.DecodeEvents(r)
}
