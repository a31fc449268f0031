package itemdb

import (
	"strings"
	"testing"

	"github.com/hearthkeep/lootledger"
)

const sampleCatalog = `
items:
  - id: 2447
    name: Peacebloom
    quality: common
    class: trade-goods
    vendor: 10
  - id: 7717
    name: Sage Blade
    quality: rare
    class: weapon
    vendor: 5s
    disenchant: 2s
  - id: 2589
    name: Linen Scrap
    quality: poor
    class: junk
    vendor: 13c
`

func TestDecode(t *testing.T) {
	db, err := Decode(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatal(err)
	}
	if db.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", db.Len())
	}

	it, err := db.Item(7717)
	if err != nil {
		t.Fatal(err)
	}
	if it.Name != "Sage Blade" || it.Quality != lootledger.QualityRare || it.Class != "weapon" {
		t.Errorf("Item(7717) = %+v", it)
	}

	if got, want := db.VendorPrice(7717), 5*lootledger.Silver; got != want {
		t.Errorf("VendorPrice(7717) = %s, want %s", got, want)
	}
	if got, want := db.Disenchant(7717), 2*lootledger.Silver; got != want {
		t.Errorf("Disenchant(7717) = %s, want %s", got, want)
	}
	// Bare integers are copper; disenchant defaults to zero.
	if got, want := db.VendorPrice(2447), lootledger.Money(10); got != want {
		t.Errorf("VendorPrice(2447) = %s, want %s", got, want)
	}
	if got := db.Disenchant(2447); got != 0 {
		t.Errorf("Disenchant(2447) = %s, want 0c", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing id", "items:\n  - name: Ghost\n    quality: poor\n"},
		{"duplicate id", "items:\n  - id: 1\n    name: A\n    quality: poor\n  - id: 1\n    name: B\n    quality: poor\n"},
		{"bad quality", "items:\n  - id: 1\n    name: A\n    quality: legendary\n"},
		{"bad money", "items:\n  - id: 1\n    name: A\n    quality: poor\n    vendor: lots\n"},
		{"not yaml", "{{"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(c.doc)); err == nil {
				t.Error("Decode succeeded, want error")
			}
		})
	}
}

func TestUnknownItem(t *testing.T) {
	db, err := Decode(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Item(99999); err == nil {
		t.Error("Item(99999) succeeded, want error")
	}
}
