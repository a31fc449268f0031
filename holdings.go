package lootledger

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Lot is one acquisition batch of an item: count units, each carried at the
// expected value computed when the batch was looted. Lots are immutable except
// for the remaining count consumed away by sales.
type Lot struct {
	Count        int64  `json:"count"`
	ExpectedEach Money  `json:"expectedEach"`
	Bucket       Bucket `json:"bucket"`
}

// Value returns the carried value of the remaining units.
func (lo Lot) Value() Money { return lo.ExpectedEach.MulCount(lo.Count) }

// holding is the per-item aggregate: total remaining count plus the ordered
// lot queue, oldest first. Consumption advances head instead of re-slicing so
// heavy loot/sell cycling does not shuffle memory; the consumed prefix is
// dropped whenever the queue drains or grows past it.
type holding struct {
	total int64
	lots  []Lot
	head  int
}

func (h *holding) live() []Lot { return h.lots[h.head:] }

// BucketValues maps each tracked bucket to a money amount. It is the result
// shape of a FIFO consumption.
type BucketValues [numBuckets]Money

// Total sums the per-bucket amounts.
func (bv BucketValues) Total() Money {
	var total Money
	for _, v := range bv {
		total += v
	}
	return total
}

// Holdings tracks looted-but-unsold inventory per item as FIFO queues of
// acquisition lots. It is a pure data structure: it knows nothing about the
// ledger it must reconcile with.
type Holdings struct {
	items map[ItemID]*holding
}

// NewHoldings creates an empty holdings store.
func NewHoldings() *Holdings {
	return &Holdings{items: make(map[ItemID]*holding)}
}

// AddLot appends a new acquisition lot to the tail of the item's queue.
// Count must be positive; expectedEach may be zero (lockboxes are held at
// zero until opened).
func (h *Holdings) AddLot(id ItemID, count int64, expectedEach Money, bucket Bucket) error {
	if count <= 0 {
		return fmt.Errorf("add lot for item %d: %w: count %d", id, ErrInvalidAmount, count)
	}
	if expectedEach.IsNegative() {
		return fmt.Errorf("add lot for item %d: %w: %s each", id, ErrInvalidAmount, expectedEach)
	}
	hd := h.items[id]
	if hd == nil {
		hd = &holding{}
		h.items[id] = hd
	}
	if hd.head == len(hd.lots) {
		hd.lots = hd.lots[:0]
		hd.head = 0
	}
	hd.lots = append(hd.lots, Lot{Count: count, ExpectedEach: expectedEach, Bucket: bucket})
	hd.total += count
	return nil
}

// ConsumeFIFO removes count units of the item, oldest lots first, and returns
// the carried value removed from each bucket. Selling reverses exactly the
// expected value that was added when those units were looted: no more, no
// less.
//
// It fails with ErrInsufficientHoldings, leaving the store unchanged, when
// count exceeds the held total. An item with no lots at all has a held total
// of zero, so consuming from it fails the same way; the caller decides how to
// treat such pre-session stock.
func (h *Holdings) ConsumeFIFO(id ItemID, count int64) (BucketValues, error) {
	var consumed BucketValues
	if count <= 0 {
		return consumed, fmt.Errorf("consume item %d: %w: count %d", id, ErrInvalidAmount, count)
	}
	hd := h.items[id]
	if hd == nil || hd.total < count {
		var held int64
		if hd != nil {
			held = hd.total
		}
		return consumed, fmt.Errorf("consume %d of item %d: %w: %d held", count, id, ErrInsufficientHoldings, held)
	}

	remaining := count
	for remaining > 0 {
		lo := &hd.lots[hd.head]
		units := min(lo.Count, remaining)
		consumed[lo.Bucket] += lo.ExpectedEach.MulCount(units)
		lo.Count -= units
		remaining -= units
		if lo.Count == 0 {
			hd.head++
		}
	}
	hd.total -= count
	if hd.total == 0 {
		delete(h.items, id)
	}
	return consumed, nil
}

// Count returns the number of units currently held for an item.
func (h *Holdings) Count(id ItemID) int64 {
	hd := h.items[id]
	if hd == nil {
		return 0
	}
	return hd.total
}

// TotalExpectedValue sums the carried value of every lot across all items.
func (h *Holdings) TotalExpectedValue() Money {
	var total Money
	for _, hd := range h.items {
		for _, lo := range hd.live() {
			total += lo.Value()
		}
	}
	return total
}

// BucketValue sums the carried value of every lot in one bucket.
func (h *Holdings) BucketValue(b Bucket) Money {
	var total Money
	for _, hd := range h.items {
		for _, lo := range hd.live() {
			if lo.Bucket == b {
				total += lo.Value()
			}
		}
	}
	return total
}

// Items iterates over held items in ascending id order, yielding the live
// lots oldest first. The yielded slice must not be mutated.
func (h *Holdings) Items() iter.Seq2[ItemID, []Lot] {
	return func(yield func(ItemID, []Lot) bool) {
		ids := slices.Collect(maps.Keys(h.items))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(id, h.items[id].live()) {
				return
			}
		}
	}
}
