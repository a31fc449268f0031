package lootledger

import (
	"fmt"
	"strings"
)

// CheckResult is the outcome of one invariant check: a verdict and a human
// diagnostic. Checks are read-only recomputations; they never mutate and
// never error.
type CheckResult struct {
	Name       string
	Passed     bool
	Diagnostic string
}

func (c CheckResult) String() string {
	verdict := "ok"
	if !c.Passed {
		verdict = "FAIL"
	}
	return fmt.Sprintf("%s: %s (%s)", c.Name, verdict, c.Diagnostic)
}

// Report aggregates the results of every invariant check.
type Report []CheckResult

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, c := range r {
		if !c.Passed {
			return false
		}
	}
	return true
}

func (r Report) String() string {
	lines := make([]string, len(r))
	for i, c := range r {
		lines[i] = c.String()
	}
	return strings.Join(lines, "; ")
}

// CheckNetWorth verifies that realized cash equals cash income minus expenses
// minus the net realization drift, where the drift is the part of
// Equity:InventoryRealization not backed by inventory assets. Well-formed
// loot and sale postings keep the realization account exactly equal to the
// inventory total, so the drift is zero; a missing or malformed posting pair
// somewhere upstream makes it show.
func CheckNetWorth(s *Session) CheckResult {
	cash := s.Ledger.Balance(CashAccount)
	income := s.Ledger.ClassTotal(Income)
	expenses := s.Ledger.ClassTotal(Expense)

	var inventory Money
	for _, b := range TrackedBuckets() {
		inventory += s.Ledger.Balance(InventoryAccount(b))
	}
	realization := s.Ledger.Balance(RealizationAccount) - inventory

	want := income - expenses - realization
	return CheckResult{
		Name:   "net-worth",
		Passed: cash == want,
		Diagnostic: fmt.Sprintf("cash %s, income %s - expenses %s - realization %s = %s",
			cash, income, expenses, realization, want),
	}
}

// CheckNonNegative verifies that no account balance is negative. Every account
// class in this domain is non-negative by construction, so a negative balance
// means debits outran the credits that were supposed to back them.
func CheckNonNegative(s *Session) CheckResult {
	var negatives []string
	for _, class := range []AccountClass{Asset, Expense, Income, Equity} {
		for a, bal := range s.Ledger.Accounts(class) {
			if bal.IsNegative() {
				negatives = append(negatives, fmt.Sprintf("%s=%s", a, bal))
			}
		}
	}
	if len(negatives) > 0 {
		return CheckResult{
			Name:       "non-negative",
			Diagnostic: "negative balances: " + strings.Join(negatives, ", "),
		}
	}
	return CheckResult{Name: "non-negative", Passed: true, Diagnostic: "all balances non-negative"}
}

// CheckReconciliation verifies, bucket by bucket, that the FIFO lots and the
// inventory asset accounts stayed in lockstep through every loot/sell
// sequence. This is the strongest of the three checks.
func CheckReconciliation(s *Session) CheckResult {
	var drift []string
	for _, b := range TrackedBuckets() {
		lots := s.Holdings.BucketValue(b)
		ledger := s.Ledger.Balance(InventoryAccount(b))
		if lots != ledger {
			drift = append(drift, fmt.Sprintf("%s: lots %s vs ledger %s", b, lots, ledger))
		}
	}
	if len(drift) > 0 {
		return CheckResult{
			Name:       "reconciliation",
			Diagnostic: strings.Join(drift, ", "),
		}
	}
	return CheckResult{Name: "reconciliation", Passed: true, Diagnostic: "holdings match ledger in every bucket"}
}

// ValidateAll runs every invariant check against a session. It is a
// diagnostic, not a control-flow mechanism: it never errors and callers
// decide what to do with a failure.
func ValidateAll(s *Session) Report {
	return Report{
		CheckNetWorth(s),
		CheckNonNegative(s),
		CheckReconciliation(s),
	}
}
