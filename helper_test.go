package lootledger

import "time"

// The test item catalog.
const (
	linenScrap    ItemID = 2589 // poor quality vendor trash
	peacebloom    ItemID = 2447 // common trade goods, gathered
	copperBar     ItemID = 2840 // common trade goods with no market price
	wornDagger    ItemID = 1413 // common equipment, vendors only
	sageBlade     ItemID = 7717 // rare equipment
	heavyLockbox  ItemID = 4638 // container, worthless until opened
	hearthstone   ItemID = 6948 // quality outside every bucket
	unknownItem   ItemID = 99999
)

type fixture struct {
	items  map[ItemID]Item
	vendor map[ItemID]Money
	market map[ItemID]Money
	dis    map[ItemID]Money
}

// testdata returns the item metadata and prices shared by the engine tests.
func testdata() *fixture {
	return &fixture{
		items: map[ItemID]Item{
			linenScrap:   {ID: linenScrap, Name: "Linen Scrap", Quality: QualityPoor, Class: "junk"},
			peacebloom:   {ID: peacebloom, Name: "Peacebloom", Quality: QualityCommon, Class: TradeGoodsClass},
			copperBar:    {ID: copperBar, Name: "Copper Bar", Quality: QualityCommon, Class: TradeGoodsClass},
			wornDagger:   {ID: wornDagger, Name: "Worn Dagger", Quality: QualityCommon, Class: "weapon"},
			sageBlade:    {ID: sageBlade, Name: "Sage Blade", Quality: QualityRare, Class: "weapon"},
			heavyLockbox: {ID: heavyLockbox, Name: "Heavy Lockbox", Quality: QualityCommon, Class: "container"},
			hearthstone:  {ID: hearthstone, Name: "Hearthstone", Quality: Quality(9), Class: "misc"},
		},
		vendor: map[ItemID]Money{
			linenScrap: 13,
			peacebloom: 10,
			copperBar:  25,
			wornDagger: 87,
			sageBlade:  5 * Silver,
		},
		market: map[ItemID]Money{
			peacebloom: 100,
			sageBlade:  90 * Silver,
		},
		dis: map[ItemID]Money{
			sageBlade: 2 * Silver,
		},
	}
}

func (f *fixture) Item(id ItemID) (Item, error) {
	it, ok := f.items[id]
	if !ok {
		return Item{}, ErrInvalidItem
	}
	return it, nil
}

func (f *fixture) VendorPrice(id ItemID) Money { return f.vendor[id] }
func (f *fixture) MarketPrice(id ItemID) Money { return f.market[id] }
func (f *fixture) Disenchant(id ItemID) Money  { return f.dis[id] }

// testClock is a manually advanced clock.
type testClock struct{ now time.Time }

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time            { return c.now }
func (c *testClock) Advance(d time.Duration)   { c.now = c.now.Add(d) }

// newTestRecorder wires a tracker, recorder and clock over the test fixture,
// with a session already started.
func newTestRecorder() (*Recorder, *Session, *testClock) {
	f := testdata()
	clock := newTestClock()
	tracker := NewTracker(clock.Now)
	s, err := tracker.Start("Elwynn Forest")
	if err != nil {
		panic(err)
	}
	return NewRecorder(tracker, f, NewValuer(f)), s, clock
}
