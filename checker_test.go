package lootledger

import (
	"strings"
	"testing"
)

// runSession drives a representative event mix through a fresh recorder and
// returns its session.
func runSession(t *testing.T) *Session {
	t.Helper()
	r, s, clock := newTestRecorder()
	events := []Event{
		NewCoinLooted(clock.Now(), 2*Gold),
		NewItemLooted(clock.Now(), linenScrap, 8),
		NewItemLooted(clock.Now(), peacebloom, 20),
		NewItemLooted(clock.Now(), sageBlade, 1),
		NewQuestReward(clock.Now(), 50*Silver),
		NewItemVendorSold(clock.Now(), linenScrap, 8, 104),
		NewRepairPaid(clock.Now(), 30*Silver),
		NewItemVendorSold(clock.Now(), peacebloom, 5, 50),
		NewTravelCost(clock.Now(), 10*Silver),
	}
	for _, ev := range events {
		if err := r.Record(ev); err != nil {
			t.Fatalf("Record(%s): %v", ev.What(), err)
		}
	}
	return s
}

func TestChecker_AllPass(t *testing.T) {
	s := runSession(t)
	report := ValidateAll(s)
	if !report.Passed() {
		t.Fatalf("checks failed:\n%s", report)
	}
	if len(report) != 3 {
		t.Fatalf("report has %d checks, want 3", len(report))
	}
	for _, c := range report {
		if !strings.Contains(c.String(), "ok") {
			t.Errorf("%s: String() = %q, want verdict ok", c.Name, c.String())
		}
	}
}

func TestChecker_DetectsCashDrift(t *testing.T) {
	s := runSession(t)

	// Simulate coins leaking out of the wallet without a posting.
	s.Ledger.AddBalance(CashAccount, -5*Silver)

	if c := CheckNetWorth(s); c.Passed {
		t.Errorf("net-worth passed despite cash drift: %s", c.Diagnostic)
	}
	// The other two checks do not involve cash and still pass.
	if c := CheckReconciliation(s); !c.Passed {
		t.Errorf("reconciliation failed: %s", c.Diagnostic)
	}
}

func TestChecker_DetectsNegativeBalance(t *testing.T) {
	s := runSession(t)
	s.Ledger.AddBalance(TravelAccount, -20*Silver)

	c := CheckNonNegative(s)
	if c.Passed {
		t.Fatal("non-negative passed despite a negative expense balance")
	}
	if !strings.Contains(c.Diagnostic, "Expenses:Travel") {
		t.Errorf("diagnostic %q does not name the account", c.Diagnostic)
	}
}

func TestChecker_DetectsHoldingsDrift(t *testing.T) {
	s := runSession(t)

	// Inflate the gathering inventory account past what the lots hold.
	s.Ledger.AddBalance(InventoryAccount(Gathering), 1*Gold)

	if c := CheckReconciliation(s); c.Passed {
		t.Error("reconciliation passed despite inventory drift")
	}
	if c := CheckNetWorth(s); c.Passed {
		t.Error("net-worth passed despite inventory drift")
	}
	if report := ValidateAll(s); report.Passed() {
		t.Error("Report.Passed() = true, want false")
	}
}

func TestChecker_ReadOnly(t *testing.T) {
	s := runSession(t)
	before := countPostings(s.Ledger)
	cash := s.Ledger.Balance(CashAccount)

	for range 3 {
		ValidateAll(s)
	}

	if got := countPostings(s.Ledger); got != before {
		t.Errorf("postings = %d after checks, want %d", got, before)
	}
	if got := s.Ledger.Balance(CashAccount); got != cash {
		t.Errorf("cash = %s after checks, want %s", got, cash)
	}
}
