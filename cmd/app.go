// Package cmd implements the CLI application to track play-session loot.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/hearthkeep/lootledger"
	"github.com/hearthkeep/lootledger/itemdb"
	"github.com/hearthkeep/lootledger/pricedb"
	"github.com/hearthkeep/lootledger/store"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&startCmd{}, "session")
	c.Register(&stopCmd{}, "session")
	c.Register(&suspendCmd{}, "session")
	c.Register(&resumeCmd{}, "session")

	c.Register(&recordCmd{}, "events")
	c.Register(&replayCmd{}, "events")

	c.Register(&reportCmd{}, "reports")
	c.Register(&sessionsCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application with a short-lived lifecycle, global flag variables
// are fine.

var dbFile = flag.String("db", "sessions.db", "Path to the session database (SQLite)")
var itemsFile = flag.String("items", "items.yaml", "Path to the item catalog (YAML)")
var pricesFile = flag.String("prices", "", "Path to a curated market price file (YAML)")
var auctionsFile = flag.String("auctions", "", "Path to an auction house export (JSON)")
var tuningFile = flag.String("tuning", "", "Path to a valuation tuning file (YAML)")

// OpenStore opens the session database at the app's configured path.
func OpenStore() (*store.Store, error) {
	return store.Open(*dbFile)
}

// LoadTracker rebuilds the tracker from the store: history in id order, plus
// the active session if one is running.
func LoadTracker(st *store.Store) (*lootledger.Tracker, error) {
	tracker := lootledger.NewTracker(nil)

	recs, err := st.Sessions(0)
	if err != nil {
		return nil, err
	}
	// Sessions lists most recent first; history wants id order.
	for i := len(recs) - 1; i >= 0; i-- {
		s, err := lootledger.RestoreSession(recs[i])
		if err != nil {
			return nil, err
		}
		if err := tracker.Restore(s); err != nil {
			return nil, err
		}
	}

	rec, ok, err := st.Active()
	if err != nil {
		return nil, err
	}
	if ok {
		s, err := lootledger.RestoreSession(rec)
		if err != nil {
			return nil, err
		}
		if err := tracker.Adopt(s); err != nil {
			return nil, err
		}
	}
	return tracker, nil
}

// NewRecorder wires a recorder over the configured item catalog, price
// sources and tuning.
func NewRecorder(tracker *lootledger.Tracker) (*lootledger.Recorder, error) {
	items, err := itemdb.Load(*itemsFile)
	if err != nil {
		return nil, err
	}

	var markets []pricedb.MarketSource
	if *pricesFile != "" {
		static, err := pricedb.LoadStatic(*pricesFile)
		if err != nil {
			return nil, err
		}
		markets = append(markets, static)
	}
	if *auctionsFile != "" {
		export, err := pricedb.LoadAuctionExport(*auctionsFile)
		if err != nil {
			return nil, err
		}
		markets = append(markets, export)
	}

	valuer := lootledger.NewValuer(pricedb.NewChain(items, markets...))
	if *tuningFile != "" {
		tuning, err := lootledger.LoadTuning(*tuningFile)
		if err != nil {
			return nil, err
		}
		valuer.Tuning = tuning
	}
	return lootledger.NewRecorder(tracker, items, valuer), nil
}

// SaveActive persists the active session's record.
func SaveActive(st *store.Store, tracker *lootledger.Tracker) error {
	s := tracker.Active()
	if s == nil {
		return fmt.Errorf("no active session to save")
	}
	return st.Save(s.Record())
}
