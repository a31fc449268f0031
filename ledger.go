package lootledger

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Posting is an atomic double-entry transaction: it moves one amount between
// exactly two accounts. Amount is always positive; a zero posting is never
// recorded.
type Posting struct {
	Debit  Account
	Credit Account
	Amount Money
	Memo   string
}

// Ledger is a double-entry account-balance store.
//
// The sign convention is the classical one: debiting an Asset or Expense
// account adds to it and crediting subtracts; for Income and Equity accounts
// it is the reverse. Because every posting touches exactly two accounts by the
// same magnitude, the identity
//
//	sum(Asset) + sum(Expense) == sum(Income) + sum(Equity)
//
// holds after every posting.
type Ledger struct {
	balances map[Account]Money
	postings []Posting
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[Account]Money)}
}

// Post records an atomic double-entry transaction. It returns
// ErrInvalidAmount for a negative amount and is a no-op for a zero one.
func (l *Ledger) Post(debit, credit Account, amount Money, memo string) error {
	if amount.IsNegative() {
		return fmt.Errorf("post %s -> %s: %w: %s", credit, debit, ErrInvalidAmount, amount)
	}
	if amount.IsZero() {
		return nil
	}
	l.apply(debit, amount, true)
	l.apply(credit, amount, false)
	l.postings = append(l.postings, Posting{Debit: debit, Credit: credit, Amount: amount, Memo: memo})
	return nil
}

func (l *Ledger) apply(a Account, amount Money, debit bool) {
	add := debit
	if a.Class == Income || a.Class == Equity {
		add = !debit
	}
	if add {
		l.balances[a] += amount
	} else {
		l.balances[a] -= amount
	}
}

// Balance returns the current balance of an account, 0 if it was never
// referenced. Reading never creates the account.
func (l *Ledger) Balance(a Account) Money {
	return l.balances[a]
}

// AddBalance applies a single-sided adjustment, bypassing double-entry.
//
// This is an escape hatch for hosts that track the offsetting entry elsewhere
// by convention (e.g. when rebuilding state from a partial record). It can
// silently break the fundamental identity, so the engine itself never calls
// it.
func (l *Ledger) AddBalance(a Account, delta Money) {
	l.balances[a] += delta
}

// ClassTotal sums the balances of every account of one class.
func (l *Ledger) ClassTotal(c AccountClass) Money {
	var total Money
	for a, bal := range l.balances {
		if a.Class == c {
			total += bal
		}
	}
	return total
}

// Accounts iterates over referenced accounts of one class and their balances,
// in deterministic (name) order.
func (l *Ledger) Accounts(c AccountClass) iter.Seq2[Account, Money] {
	return func(yield func(Account, Money) bool) {
		accounts := slices.Collect(maps.Keys(l.balances))
		slices.SortFunc(accounts, func(a, b Account) int {
			if a.Class != b.Class {
				return int(a.Class) - int(b.Class)
			}
			return strings.Compare(a.Name, b.Name)
		})
		for _, a := range accounts {
			if a.Class != c {
				continue
			}
			if !yield(a, l.balances[a]) {
				return
			}
		}
	}
}

// Postings iterates over the journal of recorded postings in posting order.
func (l *Ledger) Postings() iter.Seq2[int, Posting] {
	return func(yield func(int, Posting) bool) {
		for i, p := range l.postings {
			if !yield(i, p) {
				return
			}
		}
	}
}
