package pricedb

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"

	"github.com/hearthkeep/lootledger"
)

/*
	An auction house export, as produced by scanner addons:

	{
	    "realm": "Zandalar Tribe",
	    "scannedAt": "2024-03-01T19:45:00Z",
	    "auctions": [
	        {"item": 2447, "quantity": 20, "buyout": 2000},
	        {"item": 2447, "quantity": 5, "buyout": 450}
	    ]
	}
*/

// AuctionExport is a market source built from an auction house scan. Each
// item is priced at the cheapest per-unit buyout seen in the scan.
type AuctionExport map[lootledger.ItemID]lootledger.Money

// LoadAuctionExport reads a scan from a JSON file.
func LoadAuctionExport(path string) (AuctionExport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load auction export: %w", err)
	}
	defer f.Close()
	a, err := DecodeAuctionExport(f)
	if err != nil {
		return nil, fmt.Errorf("load auction export %q: %w", path, err)
	}
	return a, nil
}

// DecodeAuctionExport reads a scan from a JSON stream.
func DecodeAuctionExport(r io.Reader) (AuctionExport, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}

	items, err := pathInts(jobj, "$.auctions[*].item")
	if err != nil {
		return nil, err
	}
	quantities, err := pathInts(jobj, "$.auctions[*].quantity")
	if err != nil {
		return nil, err
	}
	buyouts, err := pathInts(jobj, "$.auctions[*].buyout")
	if err != nil {
		return nil, err
	}
	if len(quantities) != len(items) || len(buyouts) != len(items) {
		return nil, fmt.Errorf("ragged export: %d items, %d quantities, %d buyouts",
			len(items), len(quantities), len(buyouts))
	}

	a := make(AuctionExport)
	for i, item := range items {
		id := lootledger.ItemID(item)
		qty, buyout := quantities[i], buyouts[i]
		if qty <= 0 || buyout <= 0 {
			// bid-only auction
			continue
		}
		unit := lootledger.Money(buyout / qty)
		if best, seen := a[id]; !seen || unit < best {
			a[id] = unit
		}
	}
	return a, nil
}

// pathInts evaluates a jsonpath expression expected to yield a list of
// numbers.
func pathInts(jobj any, path string) ([]int64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// jsonpath may return a single value for a one-element match
		jlist = []any{jval}
	}
	out := make([]int64, 0, len(jlist))
	for _, jv := range jlist {
		f, ok := jv.(float64)
		if !ok {
			return nil, fmt.Errorf("evaluating %q: %v is not a number", path, jv)
		}
		out = append(out, int64(f))
	}
	return out, nil
}

func (a AuctionExport) Market(id lootledger.ItemID) (lootledger.Money, bool) {
	price, ok := a[id]
	return price, ok
}
