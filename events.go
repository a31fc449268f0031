package lootledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// EventType is a typed string identifying inbound domain events.
type EventType string

// Event types produced by the host's event-parsing collaborator.
const (
	EvCoinLooted     EventType = "coin-looted"
	EvItemLooted     EventType = "item-looted"
	EvItemVendorSold EventType = "item-vendor-sold"
	EvRepairPaid     EventType = "repair-paid"
	EvTravelCost     EventType = "travel-cost"
	EvQuestReward    EventType = "quest-reward"
)

// Event is a normalized domain event. The engine never assumes anything about
// how an event arrived, only that it is well formed.
type Event interface {
	What() EventType  // What returns the event type ("coin-looted", ...).
	When() time.Time  // When returns the instant the event occurred.
}

type baseEvent struct {
	Event EventType `json:"event"`
	At    time.Time `json:"at"`
}

func (e baseEvent) What() EventType { return e.Event }
func (e baseEvent) When() time.Time { return e.At }

func (e baseEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("event", e.Event)
	w.Append("at", e.At)
	return w.MarshalJSON()
}

// CoinLooted reports coins picked up from a kill or container.
type CoinLooted struct {
	baseEvent
	Amount Money `json:"amount"`
}

// NewCoinLooted creates a coin-looted event.
func NewCoinLooted(at time.Time, amount Money) CoinLooted {
	return CoinLooted{baseEvent{EvCoinLooted, at}, amount}
}

func (e CoinLooted) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// ItemLooted reports items picked up. Metadata and valuation are resolved by
// the engine's collaborators, not carried on the event.
type ItemLooted struct {
	baseEvent
	Item  ItemID `json:"item"`
	Count int64  `json:"count"`
}

// NewItemLooted creates an item-looted event.
func NewItemLooted(at time.Time, item ItemID, count int64) ItemLooted {
	return ItemLooted{baseEvent{EvItemLooted, at}, item, count}
}

func (e ItemLooted) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("item", e.Item)
	w.Append("count", e.Count)
	return w.MarshalJSON()
}

// ItemVendorSold reports a vendor sale: count units gone, proceeds received.
type ItemVendorSold struct {
	baseEvent
	Item     ItemID `json:"item"`
	Count    int64  `json:"count"`
	Proceeds Money  `json:"proceeds"`
}

// NewItemVendorSold creates an item-vendor-sold event.
func NewItemVendorSold(at time.Time, item ItemID, count int64, proceeds Money) ItemVendorSold {
	return ItemVendorSold{baseEvent{EvItemVendorSold, at}, item, count, proceeds}
}

func (e ItemVendorSold) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("item", e.Item)
	w.Append("count", e.Count)
	w.Append("proceeds", e.Proceeds)
	return w.MarshalJSON()
}

// RepairPaid reports a repair bill.
type RepairPaid struct {
	baseEvent
	Amount Money `json:"amount"`
}

// NewRepairPaid creates a repair-paid event.
func NewRepairPaid(at time.Time, amount Money) RepairPaid {
	return RepairPaid{baseEvent{EvRepairPaid, at}, amount}
}

func (e RepairPaid) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// TravelCost reports a flight, ferry or reagent travel expense.
type TravelCost struct {
	baseEvent
	Amount Money `json:"amount"`
}

// NewTravelCost creates a travel-cost event.
func NewTravelCost(at time.Time, amount Money) TravelCost {
	return TravelCost{baseEvent{EvTravelCost, at}, amount}
}

func (e TravelCost) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// QuestReward reports the coin reward of a quest turn-in.
type QuestReward struct {
	baseEvent
	Amount Money `json:"amount"`
}

// NewQuestReward creates a quest-reward event.
func NewQuestReward(at time.Time, amount Money) QuestReward {
	return QuestReward{baseEvent{EvQuestReward, at}, amount}
}

func (e QuestReward) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEvent)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// EncodeEvent appends one event as a JSONL line.
func EncodeEvent(w io.Writer, e Event) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", e.What(), err)
	}
	raw = append(raw, '\n')
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("encode %s event: %w", e.What(), err)
	}
	return nil
}

// DecodeEvents reads a JSONL stream of events, skipping empty lines. Events
// are returned in stream order; the caller replays them through a Recorder.
func DecodeEvents(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Event EventType `json:"event"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify event in line %q: %w", string(line), err)
		}

		var decoded Event
		var err error
		switch identifier.Event {
		case EvCoinLooted:
			var e CoinLooted
			err = json.Unmarshal(line, &e)
			decoded = e
		case EvItemLooted:
			var e ItemLooted
			err = json.Unmarshal(line, &e)
			decoded = e
		case EvItemVendorSold:
			var e ItemVendorSold
			err = json.Unmarshal(line, &e)
			decoded = e
		case EvRepairPaid:
			var e RepairPaid
			err = json.Unmarshal(line, &e)
			decoded = e
		case EvTravelCost:
			var e TravelCost
			err = json.Unmarshal(line, &e)
			decoded = e
		case EvQuestReward:
			var e QuestReward
			err = json.Unmarshal(line, &e)
			decoded = e
		default:
			return nil, fmt.Errorf("unknown event type %q", identifier.Event)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s event: %w", identifier.Event, err)
		}
		events = append(events, decoded)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}
