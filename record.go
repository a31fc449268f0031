package lootledger

import (
	"fmt"
	"time"
)

// SessionRecord is the persistable shape of a session. The engine defines
// only the shape; the encoding and the store belong to the host, so the
// record is plain data with JSON tags and no behavior.
type SessionRecord struct {
	ID        int64     `json:"id"`
	Zone      string    `json:"zone"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt,omitzero"`

	// AccumulatedSec is the logged-in time of closed presence intervals. An
	// active, logged-in session additionally carries the start of its open
	// interval in LoggedInSince, so restoring the record keeps the wall clock
	// running across host restarts.
	AccumulatedSec int64     `json:"accumulatedSec"`
	LoggedInSince  time.Time `json:"loggedInSince,omitzero"`

	Balances map[string]Money         `json:"balances,omitempty"`
	Lots     map[ItemID][]Lot         `json:"lots,omitempty"`
	Items    map[ItemID]ItemAggregate `json:"items,omitempty"`
}

// Record captures the session's state, including the open presence interval
// of an active session.
func (s *Session) Record() SessionRecord {
	rec := SessionRecord{
		ID:             s.ID,
		Zone:           s.Zone,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		AccumulatedSec: int64(s.accumulated / time.Second),
	}
	if s.presence.loggedIn {
		rec.LoggedInSince = s.presence.since
	}

	rec.Balances = make(map[string]Money)
	for _, class := range []AccountClass{Asset, Expense, Income, Equity} {
		for a, bal := range s.Ledger.Accounts(class) {
			rec.Balances[a.String()] = bal
		}
	}

	rec.Lots = make(map[ItemID][]Lot)
	for id, lots := range s.Holdings.Items() {
		rec.Lots[id] = append([]Lot(nil), lots...)
	}

	rec.Items = make(map[ItemID]ItemAggregate)
	for id, agg := range s.Items {
		rec.Items[id] = *agg
	}
	return rec
}

// RestoreSession rebuilds a session from its record. Balances are restored
// through the ledger's single-sided escape hatch: the record is trusted to be
// the snapshot of a ledger whose offsetting entries already balanced.
func RestoreSession(rec SessionRecord) (*Session, error) {
	s := newSession(rec.ID, rec.Zone, rec.StartedAt)
	s.EndedAt = rec.EndedAt
	s.accumulated = time.Duration(rec.AccumulatedSec) * time.Second
	s.presence = presence{}
	if !rec.LoggedInSince.IsZero() && rec.EndedAt.IsZero() {
		s.presence = presence{loggedIn: true, since: rec.LoggedInSince}
	}

	for name, bal := range rec.Balances {
		a, err := ParseAccount(name)
		if err != nil {
			return nil, fmt.Errorf("restore session %d: %w", rec.ID, err)
		}
		s.Ledger.AddBalance(a, bal)
	}

	for id, lots := range rec.Lots {
		for _, lo := range lots {
			if err := s.Holdings.AddLot(id, lo.Count, lo.ExpectedEach, lo.Bucket); err != nil {
				return nil, fmt.Errorf("restore session %d: %w", rec.ID, err)
			}
		}
	}

	for id, agg := range rec.Items {
		agg := agg
		s.Items[id] = &agg
	}
	return s, nil
}
