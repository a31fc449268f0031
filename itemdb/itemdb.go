// Package itemdb is a file-backed item metadata catalog. It resolves item
// ids to their name, quality and class, and carries the vendor and disenchant
// prices that ship with the game data rather than with a market.
package itemdb

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hearthkeep/lootledger"
)

// entry is the YAML shape of one catalog item.
type entry struct {
	ID         lootledger.ItemID `yaml:"id"`
	Name       string            `yaml:"name"`
	Quality    string            `yaml:"quality"`
	Class      string            `yaml:"class"`
	Vendor     lootledger.Money  `yaml:"vendor"`
	Disenchant lootledger.Money  `yaml:"disenchant"`
}

type file struct {
	Items []entry `yaml:"items"`
}

// DB is an in-memory item catalog. It implements lootledger.ItemSource and
// supplies the vendor and disenchant legs of a price source.
type DB struct {
	items      map[lootledger.ItemID]lootledger.Item
	vendor     map[lootledger.ItemID]lootledger.Money
	disenchant map[lootledger.ItemID]lootledger.Money
}

// Load reads a catalog from a YAML file.
func Load(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load item db: %w", err)
	}
	defer f.Close()
	db, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load item db %q: %w", path, err)
	}
	return db, nil
}

// Decode reads a catalog from a YAML stream.
func Decode(r io.Reader) (*DB, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc file
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	db := &DB{
		items:      make(map[lootledger.ItemID]lootledger.Item, len(doc.Items)),
		vendor:     make(map[lootledger.ItemID]lootledger.Money),
		disenchant: make(map[lootledger.ItemID]lootledger.Money),
	}
	for _, e := range doc.Items {
		if e.ID == 0 {
			return nil, fmt.Errorf("item %q: missing id", e.Name)
		}
		if _, dup := db.items[e.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id", e.ID)
		}
		quality, err := lootledger.ParseQuality(e.Quality)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", e.ID, err)
		}
		db.items[e.ID] = lootledger.Item{ID: e.ID, Name: e.Name, Quality: quality, Class: e.Class}
		if e.Vendor > 0 {
			db.vendor[e.ID] = e.Vendor
		}
		if e.Disenchant > 0 {
			db.disenchant[e.ID] = e.Disenchant
		}
	}
	return db, nil
}

// Item resolves an item id. Unknown ids are an error.
func (db *DB) Item(id lootledger.ItemID) (lootledger.Item, error) {
	it, ok := db.items[id]
	if !ok {
		return lootledger.Item{}, fmt.Errorf("unknown item %d", id)
	}
	return it, nil
}

// VendorPrice returns the per-unit vendor sell price, 0 when the item has
// none.
func (db *DB) VendorPrice(id lootledger.ItemID) lootledger.Money {
	return db.vendor[id]
}

// Disenchant returns the expected per-unit disenchant yield, 0 when the item
// cannot be disenchanted.
func (db *DB) Disenchant(id lootledger.ItemID) lootledger.Money {
	return db.disenchant[id]
}

// Len returns the number of cataloged items.
func (db *DB) Len() int { return len(db.items) }
