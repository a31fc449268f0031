package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type startCmd struct {
	zone string
}

func (*startCmd) Name() string     { return "start" }
func (*startCmd) Synopsis() string { return "start a new play session" }
func (*startCmd) Usage() string {
	return `llg start -z <zone>

  Opens a new session in the given zone. Fails if a session is already
  running; stop it first.
`
}

func (c *startCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.zone, "z", "", "Zone or area the session takes place in")
}

func (c *startCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.zone == "" {
		fmt.Fprintln(os.Stderr, "Error: -z <zone> is required")
		return subcommands.ExitUsageError
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

	s, err := tracker.Start(c.zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := st.Save(s.Record()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Started session %d in %s.\n", s.ID, s.Zone)
	return subcommands.ExitSuccess
}
