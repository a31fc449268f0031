// Package lootledger tracks a player's economic activity during a play
// session and reports real-time and historical profitability.
//
// The core is an accounting engine:
//   - Ledger: a double-entry account-balance store whose posting rules keep
//     the fundamental identity sum(Asset)+sum(Expense) == sum(Income)+sum(Equity)
//     true after every transaction.
//   - Valuation: classifies looted items into value buckets and computes a
//     conservative expected per-unit value from vendor, disenchant and market
//     prices.
//   - Holdings: per-item FIFO queues of acquisition lots, consumed oldest
//     first on sale so reported net worth never double-counts value between
//     expected inventory worth and realized proceeds.
//   - Tracker and Recorder: session lifecycle with suspend/resume duration
//     accounting, and the mapping from normalized domain events to postings.
//   - Invariant checks: read-only auditors that recompute the accounting
//     identities from ledger and holdings and report any drift.
//
// All money is an integer count of copper, the smallest coin; the engine is
// single-threaded and synchronous, consumed in-process by a host that owns
// event delivery, item metadata, market prices and persistence. Those
// collaborators are bound through the ItemSource and PriceSource interfaces
// and the SessionRecord shape; reference implementations live in the itemdb,
// pricedb and store subpackages, and the llg command drives the engine from
// the terminal.
package lootledger
