package lootledger

import (
	"errors"
	"testing"
)

func TestHoldings_ConsumeFIFO(t *testing.T) {
	h := NewHoldings()
	// Lot A: 3 units at 5 each; lot B: 4 units at 7 each.
	if err := h.AddLot(peacebloom, 3, 5, Gathering); err != nil {
		t.Fatal(err)
	}
	if err := h.AddLot(peacebloom, 4, 7, Gathering); err != nil {
		t.Fatal(err)
	}

	// Consuming 5 takes all of A (3x5) plus 2 of B (2x7).
	consumed, err := h.ConsumeFIFO(peacebloom, 5)
	if err != nil {
		t.Fatalf("ConsumeFIFO: %v", err)
	}
	if got, want := consumed[Gathering], Money(29); got != want {
		t.Errorf("consumed = %s, want %s", got, want)
	}
	if got, want := h.Count(peacebloom), int64(2); got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
	if got, want := h.TotalExpectedValue(), Money(14); got != want {
		t.Errorf("TotalExpectedValue = %s, want %s", got, want)
	}
}

func TestHoldings_ConsumeTooManyFails(t *testing.T) {
	h := NewHoldings()
	if err := h.AddLot(linenScrap, 3, 13, VendorTrash); err != nil {
		t.Fatal(err)
	}

	_, err := h.ConsumeFIFO(linenScrap, 4)
	if !errors.Is(err, ErrInsufficientHoldings) {
		t.Fatalf("ConsumeFIFO(4 of 3): got %v, want ErrInsufficientHoldings", err)
	}
	// The failed consumption must leave holdings unchanged.
	if got, want := h.Count(linenScrap), int64(3); got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
	if got, want := h.TotalExpectedValue(), Money(39); got != want {
		t.Errorf("TotalExpectedValue = %s, want %s", got, want)
	}
}

func TestHoldings_ConsumeUnknownItemFails(t *testing.T) {
	h := NewHoldings()
	if _, err := h.ConsumeFIFO(unknownItem, 1); !errors.Is(err, ErrInsufficientHoldings) {
		t.Fatalf("ConsumeFIFO on empty holdings: got %v, want ErrInsufficientHoldings", err)
	}
}

func TestHoldings_AddLotValidation(t *testing.T) {
	h := NewHoldings()
	if err := h.AddLot(linenScrap, 0, 13, VendorTrash); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddLot(count 0): got %v, want ErrInvalidAmount", err)
	}
	if err := h.AddLot(linenScrap, 1, -1, VendorTrash); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddLot(negative each): got %v, want ErrInvalidAmount", err)
	}
	if got := h.Count(linenScrap); got != 0 {
		t.Errorf("Count = %d after rejected lots, want 0", got)
	}
}

func TestHoldings_BucketValue(t *testing.T) {
	h := NewHoldings()
	if err := h.AddLot(linenScrap, 2, 13, VendorTrash); err != nil {
		t.Fatal(err)
	}
	if err := h.AddLot(peacebloom, 10, 85, Gathering); err != nil {
		t.Fatal(err)
	}
	if err := h.AddLot(heavyLockbox, 1, 0, ContainerLockbox); err != nil {
		t.Fatal(err)
	}

	if got, want := h.BucketValue(VendorTrash), Money(26); got != want {
		t.Errorf("BucketValue(VendorTrash) = %s, want %s", got, want)
	}
	if got, want := h.BucketValue(Gathering), Money(850); got != want {
		t.Errorf("BucketValue(Gathering) = %s, want %s", got, want)
	}
	if got := h.BucketValue(ContainerLockbox); got != 0 {
		t.Errorf("BucketValue(ContainerLockbox) = %s, want 0c", got)
	}
	if got, want := h.TotalExpectedValue(), Money(876); got != want {
		t.Errorf("TotalExpectedValue = %s, want %s", got, want)
	}
}

func TestHoldings_HeadReuseAfterDrain(t *testing.T) {
	h := NewHoldings()
	// Cycle loot and sell repeatedly; counts and values must stay exact.
	for i := 0; i < 100; i++ {
		if err := h.AddLot(peacebloom, 2, 85, Gathering); err != nil {
			t.Fatal(err)
		}
		consumed, err := h.ConsumeFIFO(peacebloom, 2)
		if err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
		if got, want := consumed[Gathering], Money(170); got != want {
			t.Fatalf("cycle %d: consumed = %s, want %s", i, got, want)
		}
	}
	if got := h.Count(peacebloom); got != 0 {
		t.Errorf("Count = %d after drain, want 0", got)
	}
}
