package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/hearthkeep/lootledger"
)

func testSession(t *testing.T) (*lootledger.Session, *lootledger.Metrics) {
	t.Helper()
	start := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	rec := lootledger.SessionRecord{
		ID:             3,
		Zone:           "Duskwood",
		StartedAt:      start,
		EndedAt:        start.Add(2 * time.Hour),
		AccumulatedSec: 5400, // 1h30m logged in
		Balances: map[string]lootledger.Money{
			"Assets:Cash":                    12345,
			"Assets:Inventory:Gathering":     850,
			"Assets:Inventory:RareMulti":     1500,
			"Income:LootedCoin":              10000,
			"Income:QuestRewards":            2500,
			"Income:VendorSales":             545,
			"Expenses:Repairs":               600,
			"Expenses:Travel":                100,
			"Equity:InventoryRealization":    2350,
		},
		Lots: map[lootledger.ItemID][]lootledger.Lot{
			2447: {{Count: 10, ExpectedEach: 85, Bucket: lootledger.Gathering}},
			7717: {{Count: 1, ExpectedEach: 1500, Bucket: lootledger.RareMulti}},
		},
		Items: map[lootledger.ItemID]lootledger.ItemAggregate{
			2447: {Name: "Peacebloom", Count: 10, ExpectedTotal: 850},
			7717: {Name: "Sage Blade", Count: 1, ExpectedTotal: 1500},
		},
	}
	s, err := lootledger.RestoreSession(rec)
	if err != nil {
		t.Fatal(err)
	}
	return s, lootledger.NewMetrics(s, start.Add(3*time.Hour))
}

func TestSessionMarkdown(t *testing.T) {
	s, m := testSession(t)
	md := SessionMarkdown(s, m)

	for _, want := range []string{
		"# Session 3: Duskwood",
		"played 1h 30m",
		"| Looted coin | 1g |",
		"| Quest rewards | 25s |",
		"| Repairs | -6s |",
		"| **Cash** | **1g 23s 45c** |",
		"| Gathering | 8s 50c |",
		"| RareMulti | 15s |",
		"| **Total** | **23s 50c** |",
		"| Sage Blade | 1 | 15s |",
		"| Peacebloom | 10 | 8s 50c |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q\n%s", want, md)
		}
	}
	// The loot table is sorted by expected value, best first.
	if strings.Index(md, "Sage Blade") > strings.Index(md, "Peacebloom") {
		t.Error("loot table is not sorted by expected value")
	}
}

func TestSessionsMarkdown(t *testing.T) {
	_, m := testSession(t)
	md := SessionsMarkdown([]*lootledger.Metrics{m})
	if !strings.Contains(md, "| 3 | Duskwood | 1h 30m |") {
		t.Errorf("history table missing session row:\n%s", md)
	}

	if md := SessionsMarkdown(nil); !strings.Contains(md, "No finished sessions.") {
		t.Errorf("empty history = %q", md)
	}
}

func TestCheckMarkdown(t *testing.T) {
	s, m := testSession(t)
	md := CheckMarkdown(m, lootledger.ValidateAll(s))
	if !strings.Contains(md, "All checks passed.") {
		t.Errorf("report of a clean session:\n%s", md)
	}

	s.Ledger.AddBalance(lootledger.CashAccount, -100)
	md = CheckMarkdown(m, lootledger.ValidateAll(s))
	if !strings.Contains(md, "❌ net-worth") || !strings.Contains(md, "Invariant violation detected.") {
		t.Errorf("report of a broken session:\n%s", md)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		sec  int64
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{300, "5m"},
		{5400, "1h 30m"},
		{7215, "2h 0m"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.sec); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.sec, got, c.want)
		}
	}
}
