package lootledger

import "time"

// presence is the suspend/resume state machine of a session: either logged in
// since some instant, or logged out. Modelling it as a tagged variant keeps
// the two states exhaustive; there is no half-set timestamp.
type presence struct {
	loggedIn bool
	since    time.Time
}

// ItemAggregate accumulates, per item, everything looted over the session's
// lifetime. Unlike holdings it is never decremented by sales; it answers
// "what did this session loot" rather than "what is still unsold".
type ItemAggregate struct {
	Name          string `json:"name"`
	Count         int64  `json:"count"`
	ExpectedTotal Money  `json:"expectedTotal"`
}

// Session is one play session: a ledger, a holdings store and the time
// bookkeeping needed to normalize metrics per hour. It is mutated only through
// the Tracker and Recorder while active, and is immutable once stopped and
// moved into history.
type Session struct {
	ID        int64
	Zone      string
	StartedAt time.Time
	EndedAt   time.Time // zero while the session is active

	// accumulated is the total logged-in time of closed presence intervals;
	// the open interval, if any, lives in presence.
	accumulated time.Duration
	presence    presence

	Ledger   *Ledger
	Holdings *Holdings
	Items    map[ItemID]*ItemAggregate
}

func newSession(id int64, zone string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Zone:      zone,
		StartedAt: now,
		presence:  presence{loggedIn: true, since: now},
		Ledger:    NewLedger(),
		Holdings:  NewHoldings(),
		Items:     make(map[ItemID]*ItemAggregate),
	}
}

// Duration returns the logged-in play time as of now. Time elapsed while
// suspended is never counted.
func (s *Session) Duration(now time.Time) time.Duration {
	d := s.accumulated
	if s.presence.loggedIn {
		d += now.Sub(s.presence.since)
	}
	return d
}

// Stopped reports whether the session has been finalized.
func (s *Session) Stopped() bool { return !s.EndedAt.IsZero() }

// suspend folds the open presence interval into the accumulator. Suspending
// an already suspended session does nothing.
func (s *Session) suspend(now time.Time) {
	if !s.presence.loggedIn {
		return
	}
	s.accumulated += now.Sub(s.presence.since)
	s.presence = presence{}
}

// resume re-arms the presence interval. Resuming a running session does
// nothing.
func (s *Session) resume(now time.Time) {
	if s.presence.loggedIn {
		return
	}
	s.presence = presence{loggedIn: true, since: now}
}

// aggregate records a loot event into the per-item lifetime aggregates.
func (s *Session) aggregate(it Item, count int64, value Money) {
	agg := s.Items[it.ID]
	if agg == nil {
		agg = &ItemAggregate{Name: it.Name}
		s.Items[it.ID] = agg
	}
	agg.Count += count
	agg.ExpectedTotal += value
}
