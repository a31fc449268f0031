package lootledger

import "time"

// Metrics is the read-only derivation of a session's economic state. Every
// field comes straight from ledger balances and holdings; nothing here is
// stored.
type Metrics struct {
	SessionID   int64
	Zone        string
	DurationSec int64

	Cash Money

	LootedCoin   Money
	QuestRewards Money
	VendorSales  Money
	TotalIncome  Money

	Repairs       Money
	Travel        Money
	TotalExpenses Money

	// Inventory holds the expected value of unsold loot per bucket.
	Inventory         BucketValues
	ExpectedInventory Money

	// TotalValue is cash plus expected inventory: the session's economic
	// worth if every held lot realized its expectation.
	TotalValue Money

	CashPerHour  Money
	TotalPerHour Money
}

// NewMetrics derives the metrics of a session as of now. For a stopped
// session the end time bounds the duration, so now only matters for active
// ones.
func NewMetrics(s *Session, now time.Time) *Metrics {
	if s.Stopped() {
		now = s.EndedAt
	}
	m := &Metrics{
		SessionID:   s.ID,
		Zone:        s.Zone,
		DurationSec: int64(s.Duration(now) / time.Second),
	}

	m.Cash = s.Ledger.Balance(CashAccount)

	m.LootedCoin = s.Ledger.Balance(LootedCoinAccount)
	m.QuestRewards = s.Ledger.Balance(QuestRewardsAccount)
	m.VendorSales = s.Ledger.Balance(VendorSalesAccount)
	m.TotalIncome = s.Ledger.ClassTotal(Income)

	m.Repairs = s.Ledger.Balance(RepairsAccount)
	m.Travel = s.Ledger.Balance(TravelAccount)
	m.TotalExpenses = s.Ledger.ClassTotal(Expense)

	for _, b := range TrackedBuckets() {
		v := s.Ledger.Balance(InventoryAccount(b))
		m.Inventory[b] = v
		m.ExpectedInventory += v
	}
	m.TotalValue = m.Cash + m.ExpectedInventory

	m.CashPerHour = perHour(m.Cash, m.DurationSec)
	m.TotalPerHour = perHour(m.TotalValue, m.DurationSec)
	return m
}

// perHour normalizes an amount over a duration, flooring to whole copper.
// A zero duration yields zero rather than dividing by it.
func perHour(v Money, durationSec int64) Money {
	if durationSec == 0 {
		return 0
	}
	return v * 3600 / Money(durationSec)
}
