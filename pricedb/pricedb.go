// Package pricedb assembles the price source the valuation engine reads.
//
// Vendor and disenchant prices are game data and come from the item catalog.
// Market prices are observations, and several providers may know the same
// item: a manual override, a curated static file, an auction house export.
// The chain queries them in order and the first one that knows the item wins.
package pricedb

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hearthkeep/lootledger"
)

// MarketSource is one provider of market price observations.
type MarketSource interface {
	// Market returns the per-unit market price and whether this source
	// knows the item at all. A source may legitimately answer (0, true).
	Market(id lootledger.ItemID) (lootledger.Money, bool)
}

// VendorSource supplies the game-data price legs. *itemdb.DB satisfies it.
type VendorSource interface {
	VendorPrice(id lootledger.ItemID) lootledger.Money
	Disenchant(id lootledger.ItemID) lootledger.Money
}

// Chain is a complete lootledger.PriceSource: game-data legs from Vendor,
// market leg from the first Markets entry that knows the item.
type Chain struct {
	Vendor  VendorSource
	Markets []MarketSource
}

// NewChain builds a chain over the given market sources, highest precedence
// first.
func NewChain(vendor VendorSource, markets ...MarketSource) *Chain {
	return &Chain{Vendor: vendor, Markets: markets}
}

func (c *Chain) VendorPrice(id lootledger.ItemID) lootledger.Money {
	return c.Vendor.VendorPrice(id)
}

func (c *Chain) Disenchant(id lootledger.ItemID) lootledger.Money {
	return c.Vendor.Disenchant(id)
}

// MarketPrice returns the highest-precedence observation, 0 when no source
// knows the item.
func (c *Chain) MarketPrice(id lootledger.ItemID) lootledger.Money {
	for _, src := range c.Markets {
		if m, ok := src.Market(id); ok {
			return m
		}
	}
	return 0
}

// Manual is an in-memory override table, the highest-precedence market source.
type Manual map[lootledger.ItemID]lootledger.Money

// Set records an override.
func (m Manual) Set(id lootledger.ItemID, price lootledger.Money) { m[id] = price }

func (m Manual) Market(id lootledger.ItemID) (lootledger.Money, bool) {
	price, ok := m[id]
	return price, ok
}

// Static is a curated market price table loaded from a YAML file.
type Static map[lootledger.ItemID]lootledger.Money

type staticFile struct {
	Prices []struct {
		ID     lootledger.ItemID `yaml:"id"`
		Market lootledger.Money  `yaml:"market"`
	} `yaml:"prices"`
}

// LoadStatic reads a static price table from a YAML file.
func LoadStatic(path string) (Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load price db: %w", err)
	}
	defer f.Close()
	s, err := DecodeStatic(f)
	if err != nil {
		return nil, fmt.Errorf("load price db %q: %w", path, err)
	}
	return s, nil
}

// DecodeStatic reads a static price table from a YAML stream.
func DecodeStatic(r io.Reader) (Static, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc staticFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	s := make(Static, len(doc.Prices))
	for _, p := range doc.Prices {
		if p.ID == 0 {
			return nil, fmt.Errorf("price entry: missing id")
		}
		s[p.ID] = p.Market
	}
	return s, nil
}

func (s Static) Market(id lootledger.ItemID) (lootledger.Money, bool) {
	price, ok := s[id]
	return price, ok
}
