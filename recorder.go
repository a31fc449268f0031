package lootledger

import (
	"fmt"
	"log"
)

// Recorder turns inbound domain events into ledger postings and holdings
// mutations against the tracker's active session.
//
// Every event either applies completely or fails completely: all
// preconditions are checked before the first balance or lot is touched, so a
// failed event leaves the session byte-for-byte unchanged. Duplicate or
// out-of-order deliveries are the host's problem; the recorder only
// guarantees it never half-applies one.
type Recorder struct {
	Tracker *Tracker
	Items   ItemSource
	Valuer  *Valuer

	// Verify runs the invariant checks after every applied event and logs
	// failures. Diagnostics never block recording.
	Verify bool
}

// NewRecorder binds a recorder to its collaborators.
func NewRecorder(tracker *Tracker, items ItemSource, valuer *Valuer) *Recorder {
	return &Recorder{Tracker: tracker, Items: items, Valuer: valuer}
}

// Record applies one domain event to the active session.
func (r *Recorder) Record(ev Event) error {
	s := r.Tracker.Active()
	if s == nil {
		return fmt.Errorf("record %s: %w", ev.What(), ErrNoActiveSession)
	}

	var err error
	switch e := ev.(type) {
	case CoinLooted:
		err = s.Ledger.Post(CashAccount, LootedCoinAccount, e.Amount, "coin looted")
	case QuestReward:
		err = s.Ledger.Post(CashAccount, QuestRewardsAccount, e.Amount, "quest reward")
	case RepairPaid:
		err = r.payExpense(s, RepairsAccount, e.Amount, "repair bill")
	case TravelCost:
		err = r.payExpense(s, TravelAccount, e.Amount, "travel cost")
	case ItemLooted:
		err = r.recordLoot(s, e)
	case ItemVendorSold:
		err = r.recordSale(s, e)
	default:
		err = fmt.Errorf("unsupported event type %T", ev)
	}
	if err != nil {
		return fmt.Errorf("record %s: %w", ev.What(), err)
	}

	if r.Verify {
		if report := ValidateAll(s); !report.Passed() {
			log.Printf("session %d: invariant failure after %s: %s", s.ID, ev.What(), report)
		}
	}
	return nil
}

func (r *Recorder) payExpense(s *Session, account Account, amount Money, memo string) error {
	return s.Ledger.Post(account, CashAccount, amount, memo)
}

// recordLoot values the looted items, adds the acquisition lot and posts the
// expected value into the bucket's inventory asset, backed by the realization
// equity account.
func (r *Recorder) recordLoot(s *Session, e ItemLooted) error {
	if e.Count <= 0 {
		return fmt.Errorf("item %d: %w: count %d", e.Item, ErrInvalidAmount, e.Count)
	}
	it, err := r.Items.Item(e.Item)
	if err != nil {
		return fmt.Errorf("item %d: %w: %v", e.Item, ErrInvalidItem, err)
	}
	bucket := Classify(it)
	if bucket == Other {
		// nothing to track
		return nil
	}
	each := r.Valuer.ExpectedValue(it.ID, bucket)
	value := each.MulCount(e.Count)

	if err := s.Holdings.AddLot(it.ID, e.Count, each, bucket); err != nil {
		return err
	}
	if err := s.Ledger.Post(InventoryAccount(bucket), RealizationAccount, value, "looted "+it.Name); err != nil {
		return err
	}
	s.aggregate(it, e.Count, value)
	return nil
}

// recordSale posts the proceeds, then reverses from inventory exactly the
// expected value of the units actually consumed, oldest lots first. Units the
// session never looted (pre-session stock) have no lots to walk, so they
// reverse nothing and the sale posts proceeds only.
func (r *Recorder) recordSale(s *Session, e ItemVendorSold) error {
	if e.Count <= 0 {
		return fmt.Errorf("item %d: %w: count %d", e.Item, ErrInvalidAmount, e.Count)
	}
	if e.Proceeds.IsNegative() {
		return fmt.Errorf("item %d: %w: proceeds %s", e.Item, ErrInvalidAmount, e.Proceeds)
	}

	consume := min(e.Count, s.Holdings.Count(e.Item))

	if err := s.Ledger.Post(CashAccount, VendorSalesAccount, e.Proceeds, "vendor sale"); err != nil {
		return err
	}
	if consume == 0 {
		return nil
	}
	consumed, err := s.Holdings.ConsumeFIFO(e.Item, consume)
	if err != nil {
		return err
	}
	for _, b := range TrackedBuckets() {
		if err := s.Ledger.Post(RealizationAccount, InventoryAccount(b), consumed[b], "inventory realized"); err != nil {
			return err
		}
	}
	return nil
}
