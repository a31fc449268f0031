// Package renderer formats sessions and reports as markdown. It only reads
// engine state; everything it prints is recomputed from the ledger and
// holdings on the fly.
package renderer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hearthkeep/lootledger"
)

// mdRenderer accumulates markdown output.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// SessionMarkdown renders the full report of one session: header, cash flow,
// inventory by bucket and the loot table.
func SessionMarkdown(s *lootledger.Session, m *lootledger.Metrics) string {
	r := &mdRenderer{Builder: &strings.Builder{}}

	r.renderHeader(s, m)
	r.renderCashFlow(m)
	r.renderInventory(m)
	r.renderLoot(s)
	return r.String()
}

func (r *mdRenderer) renderHeader(s *lootledger.Session, m *lootledger.Metrics) {
	state := "active"
	if s.Stopped() {
		state = "ended " + s.EndedAt.Format("2006-01-02 15:04")
	}
	r.Printf("# Session %d: %s\n\n", m.SessionID, m.Zone)
	r.Printf("Started %s, %s, played %s.\n\n",
		s.StartedAt.Format("2006-01-02 15:04"), state, FormatDuration(m.DurationSec))
}

func (r *mdRenderer) renderCashFlow(m *lootledger.Metrics) {
	r.Printf("## Cash Flow\n\n")
	r.Printf("| Flow | Amount |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Looted coin | %s |\n", m.LootedCoin)
	r.Printf("| Quest rewards | %s |\n", m.QuestRewards)
	r.Printf("| Vendor sales | %s |\n", m.VendorSales)
	r.Printf("| Repairs | %s |\n", m.Repairs.Neg().SignedString())
	r.Printf("| Travel | %s |\n", m.Travel.Neg().SignedString())
	r.Printf("| **Cash** | **%s** |\n", m.Cash)
	r.Printf("\n")
	r.Printf("Rate: %s/h cash, %s/h total.\n\n", m.CashPerHour, m.TotalPerHour)
}

func (r *mdRenderer) renderInventory(m *lootledger.Metrics) {
	r.Printf("## Unsold Inventory\n\n")
	r.Printf("| Bucket | Expected Value |\n")
	r.Printf("|:---|---:|\n")
	for _, b := range lootledger.TrackedBuckets() {
		r.Printf("| %s | %s |\n", b, m.Inventory[b])
	}
	r.Printf("| **Total** | **%s** |\n", m.ExpectedInventory)
	r.Printf("\n")
	r.Printf("Session worth if all of it sells: **%s**.\n\n", m.TotalValue)
}

func (r *mdRenderer) renderLoot(s *lootledger.Session) {
	if len(s.Items) == 0 {
		return
	}
	type row struct {
		id  lootledger.ItemID
		agg lootledger.ItemAggregate
	}
	rows := make([]row, 0, len(s.Items))
	for id, agg := range s.Items {
		rows = append(rows, row{id, *agg})
	}
	slices.SortFunc(rows, func(a, b row) int {
		if a.agg.ExpectedTotal != b.agg.ExpectedTotal {
			if a.agg.ExpectedTotal > b.agg.ExpectedTotal {
				return -1
			}
			return 1
		}
		return int(a.id - b.id)
	})

	r.Printf("## Loot\n\n")
	r.Printf("| Item | Count | Expected Value |\n")
	r.Printf("|:---|---:|---:|\n")
	for _, row := range rows {
		r.Printf("| %s | %d | %s |\n", row.agg.Name, row.agg.Count, row.agg.ExpectedTotal)
	}
	r.Printf("\n")
}

// SessionsMarkdown renders a one-line-per-session history table.
func SessionsMarkdown(metrics []*lootledger.Metrics) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Sessions\n\n")
	if len(metrics) == 0 {
		r.Printf("No finished sessions.\n")
		return r.String()
	}
	r.Printf("| ID | Zone | Played | Cash | Total Value | Total/h |\n")
	r.Printf("|---:|:---|---:|---:|---:|---:|\n")
	for _, m := range metrics {
		r.Printf("| %d | %s | %s | %s | %s | %s |\n",
			m.SessionID, m.Zone, FormatDuration(m.DurationSec), m.Cash, m.TotalValue, m.TotalPerHour)
	}
	return r.String()
}

// CheckMarkdown renders an invariant check report.
func CheckMarkdown(m *lootledger.Metrics, report lootledger.Report) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Checks: Session %d\n\n", m.SessionID)
	for _, c := range report {
		mark := "✅"
		if !c.Passed {
			mark = "❌"
		}
		r.Printf("- %s %s: %s\n", mark, c.Name, c.Diagnostic)
	}
	r.Printf("\n")
	if report.Passed() {
		r.Printf("All checks passed.\n")
	} else {
		r.Printf("**Invariant violation detected.**\n")
	}
	return r.String()
}

// FormatDuration renders a second count as "1h 23m" (or "45m", "30s").
func FormatDuration(sec int64) string {
	d := time.Duration(sec) * time.Second
	h := int64(d / time.Hour)
	m := int64(d % time.Hour / time.Minute)
	s := int64(d % time.Minute / time.Second)
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
