package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"

	"github.com/hearthkeep/lootledger"
	"github.com/hearthkeep/lootledger/renderer"
)

type checkCmd struct {
	id int64
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "run the invariant checks on a session" }
func (*checkCmd) Usage() string {
	return `llg check [-i <session_id>]

  Recomputes the net-worth, non-negative and reconciliation invariants of a
  session from scratch. Defaults to the active session. Exits non-zero when
  a check fails.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "i", 0, "Session id to check (defaults to the active session)")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := loadOneSession(c.id)
	if s == nil {
		return status
	}
	report := lootledger.ValidateAll(s)
	printMarkdown(renderer.CheckMarkdown(lootledger.NewMetrics(s, time.Now()), report))
	if !report.Passed() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
