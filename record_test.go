package lootledger

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSessionRecordRoundTrip(t *testing.T) {
	r, s, clock := newTestRecorder()
	events := []Event{
		NewCoinLooted(clock.Now(), 3*Gold),
		NewItemLooted(clock.Now(), peacebloom, 7),
		NewItemLooted(clock.Now(), sageBlade, 1),
		NewItemVendorSold(clock.Now(), peacebloom, 2, 20),
		NewRepairPaid(clock.Now(), 40*Silver),
	}
	for _, ev := range events {
		if err := r.Record(ev); err != nil {
			t.Fatalf("Record(%s): %v", ev.What(), err)
		}
	}
	clock.Advance(45 * time.Minute)
	if _, err := r.Tracker.Stop(); err != nil {
		t.Fatal(err)
	}

	rec := s.Record()
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	var decoded SessionRecord
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}

	restored, err := RestoreSession(decoded)
	if err != nil {
		t.Fatal(err)
	}

	if restored.ID != s.ID || restored.Zone != s.Zone {
		t.Errorf("identity = (%d, %q), want (%d, %q)", restored.ID, restored.Zone, s.ID, s.Zone)
	}
	if !restored.Stopped() {
		t.Error("restored session is not stopped")
	}
	if got, want := restored.Duration(clock.Now()), 45*time.Minute; got != want {
		t.Errorf("duration = %s, want %s", got, want)
	}
	for _, a := range []Account{CashAccount, LootedCoinAccount, RepairsAccount, RealizationAccount, InventoryAccount(Gathering), InventoryAccount(RareMulti)} {
		if got, want := restored.Ledger.Balance(a), s.Ledger.Balance(a); got != want {
			t.Errorf("%s = %s, want %s", a, got, want)
		}
	}
	if got, want := restored.Holdings.Count(peacebloom), int64(5); got != want {
		t.Errorf("peacebloom held = %d, want %d", got, want)
	}
	if got, want := restored.Holdings.TotalExpectedValue(), s.Holdings.TotalExpectedValue(); got != want {
		t.Errorf("expected value = %s, want %s", got, want)
	}
	if got, want := restored.Items[peacebloom].Count, int64(7); got != want {
		t.Errorf("aggregate count = %d, want %d", got, want)
	}
	if report := ValidateAll(restored); !report.Passed() {
		t.Errorf("checks failed after restore:\n%s", report)
	}
}

// A record of an active session keeps the open presence interval, so a host
// that restores it later does not lose the time since the last save.
func TestRecordActiveSessionKeepsClockRunning(t *testing.T) {
	r, s, clock := newTestRecorder()
	if err := r.Record(NewCoinLooted(clock.Now(), 100)); err != nil {
		t.Fatal(err)
	}
	clock.Advance(90 * time.Second)
	if err := r.Tracker.Suspend(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Hour)
	if err := r.Tracker.Resume(); err != nil {
		t.Fatal(err)
	}
	resumedAt := clock.Now()
	clock.Advance(30 * time.Second)

	rec := s.Record()
	if rec.AccumulatedSec != 90 {
		t.Errorf("AccumulatedSec = %d, want 90", rec.AccumulatedSec)
	}
	if !rec.LoggedInSince.Equal(resumedAt) {
		t.Errorf("LoggedInSince = %s, want %s", rec.LoggedInSince, resumedAt)
	}
	if !rec.EndedAt.IsZero() {
		t.Errorf("EndedAt = %s on an active session, want zero", rec.EndedAt)
	}

	// A process restart later: the restored session still counts the open
	// interval from where it began.
	clock.Advance(30 * time.Second)
	restored, err := RestoreSession(rec)
	if err != nil {
		t.Fatal(err)
	}
	if got := restored.Duration(clock.Now()); got != 150*time.Second {
		t.Errorf("duration after restore = %s, want 150s", got)
	}

	tracker := NewTracker(clock.Now)
	if err := tracker.Adopt(restored); err != nil {
		t.Fatal(err)
	}
	if tracker.Active() != restored {
		t.Error("adopted session is not active")
	}
	if _, err := tracker.Start("Westfall"); err == nil {
		t.Error("starting over an adopted session should fail")
	}
}

func TestTrackerAdoptRejectsStopped(t *testing.T) {
	clock := newTestClock()
	tracker := NewTracker(clock.Now)
	if _, err := tracker.Start("Badlands"); err != nil {
		t.Fatal(err)
	}
	s, err := tracker.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if err := NewTracker(clock.Now).Adopt(s); err == nil {
		t.Error("adopting a finalized session should fail")
	}
}

func TestRestoreSessionRejectsBadAccount(t *testing.T) {
	rec := SessionRecord{
		ID:        1,
		Zone:      "Duskwood",
		StartedAt: newTestClock().Now(),
		Balances:  map[string]Money{"Liabilities:Loans": 100},
	}
	if _, err := RestoreSession(rec); err == nil {
		t.Fatal("restoring an unknown account class should fail")
	}
}
