package lootledger

import (
	"fmt"
	"iter"
	"time"
)

// Tracker owns the session lifecycle: at most one active session, plus an
// append-only history of stopped ones. It is single-threaded by design; a
// host introducing real concurrency must serialize all mutating calls.
type Tracker struct {
	clock   func() time.Time
	nextID  int64
	active  *Session
	history []*Session
}

// NewTracker creates a tracker reading time from clock; a nil clock means
// time.Now.
func NewTracker(clock func() time.Time) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{clock: clock, nextID: 1}
}

// Start opens a new session in the given zone. It fails with ErrAlreadyActive
// if one is already running.
func (t *Tracker) Start(zone string) (*Session, error) {
	if t.active != nil {
		return nil, fmt.Errorf("start session in %q: %w (session %d)", zone, ErrAlreadyActive, t.active.ID)
	}
	s := newSession(t.nextID, zone, t.clock())
	t.nextID++
	t.active = s
	return s, nil
}

// Stop finalizes the active session: folds any open presence interval, stamps
// the end time and moves the session into history. It fails with
// ErrNoActiveSession when nothing is running.
func (t *Tracker) Stop() (*Session, error) {
	if t.active == nil {
		return nil, fmt.Errorf("stop session: %w", ErrNoActiveSession)
	}
	s := t.active
	now := t.clock()
	s.suspend(now)
	s.EndedAt = now
	t.history = append(t.history, s)
	t.active = nil
	return s, nil
}

// Suspend pauses duration accounting on the active session (host logged out).
func (t *Tracker) Suspend() error {
	if t.active == nil {
		return fmt.Errorf("suspend session: %w", ErrNoActiveSession)
	}
	t.active.suspend(t.clock())
	return nil
}

// Resume restarts duration accounting on the active session (host logged back
// in).
func (t *Tracker) Resume() error {
	if t.active == nil {
		return fmt.Errorf("resume session: %w", ErrNoActiveSession)
	}
	t.active.resume(t.clock())
	return nil
}

// Active returns the active session, or nil.
func (t *Tracker) Active() *Session { return t.active }

// Session returns a session by id, active or historical, or nil if unknown.
func (t *Tracker) Session(id int64) *Session {
	if t.active != nil && t.active.ID == id {
		return t.active
	}
	for _, s := range t.history {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Sessions iterates over historical sessions, most recent first, up to limit
// (0 means all). Historical sessions are read-only.
func (t *Tracker) Sessions(limit int) iter.Seq[*Session] {
	return func(yield func(*Session) bool) {
		n := 0
		for i := len(t.history) - 1; i >= 0; i-- {
			if limit > 0 && n >= limit {
				return
			}
			if !yield(t.history[i]) {
				return
			}
			n++
		}
	}
}

// Adopt installs a restored, still-unfinished session as the active one, as
// if Start had created it. It fails with ErrAlreadyActive if a session is
// already running, and refuses finalized sessions.
func (t *Tracker) Adopt(s *Session) error {
	if s.Stopped() {
		return fmt.Errorf("adopt session %d: already finalized", s.ID)
	}
	if t.active != nil {
		return fmt.Errorf("adopt session %d: %w (session %d)", s.ID, ErrAlreadyActive, t.active.ID)
	}
	t.active = s
	if s.ID >= t.nextID {
		t.nextID = s.ID + 1
	}
	return nil
}

// Restore loads a previously persisted session into history and bumps the id
// sequence past it. It refuses records of unfinished sessions.
func (t *Tracker) Restore(s *Session) error {
	if !s.Stopped() {
		return fmt.Errorf("restore session %d: not finalized", s.ID)
	}
	t.history = append(t.history, s)
	if s.ID >= t.nextID {
		t.nextID = s.ID + 1
	}
	return nil
}
