package lootledger

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// ItemID identifies an item in the host game's item database.
type ItemID int64

// Quality is the host game's item quality tier.
type Quality int

const (
	QualityPoor Quality = iota
	QualityCommon
	QualityUncommon
	QualityRare
	QualityEpic
)

func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "poor"
	case QualityCommon:
		return "common"
	case QualityUncommon:
		return "uncommon"
	case QualityRare:
		return "rare"
	case QualityEpic:
		return "epic"
	default:
		return "unknown"
	}
}

// ParseQuality parses a quality tier name.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "poor":
		return QualityPoor, nil
	case "common":
		return QualityCommon, nil
	case "uncommon":
		return QualityUncommon, nil
	case "rare":
		return QualityRare, nil
	case "epic":
		return QualityEpic, nil
	default:
		return 0, fmt.Errorf("unknown quality: %q", s)
	}
}

// TradeGoodsClass is the item class of gatherable trade goods (herbs, ores,
// leather...). Common items of this class are valued against the market
// rather than the vendor.
const TradeGoodsClass = "trade-goods"

// Item is the metadata the engine needs about one item. It is resolved by an
// external ItemSource; the engine never looks items up on its own.
type Item struct {
	ID      ItemID
	Name    string
	Quality Quality
	Class   string
}

// ItemSource resolves item metadata. An unknown id must return an error; the
// recorder maps it to ErrInvalidItem.
type ItemSource interface {
	Item(id ItemID) (Item, error)
}

// PriceSource supplies per-item prices. VendorPrice is what a vendor pays for
// one unit; MarketPrice is the going market rate, 0 when unknown; Disenchant
// is the expected disenchant yield, 0 when unknown. Precedence among several
// market providers is the adapter's concern, invisible here.
type PriceSource interface {
	VendorPrice(id ItemID) Money
	MarketPrice(id ItemID) Money
	Disenchant(id ItemID) Money
}

// Bucket is the valuation category assigned to an item. It selects the pricing
// formula and the inventory sub-account.
type Bucket int

const (
	VendorTrash Bucket = iota
	RareMulti
	Gathering
	ContainerLockbox
	// Other items are never valued, posted, or tracked in holdings.
	Other

	numBuckets = int(Other) + 1
)

func (b Bucket) String() string {
	switch b {
	case VendorTrash:
		return "VendorTrash"
	case RareMulti:
		return "RareMulti"
	case Gathering:
		return "Gathering"
	case ContainerLockbox:
		return "ContainerLockbox"
	case Other:
		return "Other"
	default:
		return "unknown"
	}
}

// ParseBucket parses a bucket name.
func ParseBucket(s string) (Bucket, error) {
	switch s {
	case "VendorTrash":
		return VendorTrash, nil
	case "RareMulti":
		return RareMulti, nil
	case "Gathering":
		return Gathering, nil
	case "ContainerLockbox":
		return ContainerLockbox, nil
	case "Other":
		return Other, nil
	default:
		return 0, fmt.Errorf("unknown bucket: %q", s)
	}
}

// MarshalJSON renders the bucket by name.
func (b Bucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Bucket) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBucket(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// TrackedBuckets lists the buckets that carry ledger and holdings state.
func TrackedBuckets() []Bucket {
	return []Bucket{VendorTrash, RareMulti, Gathering, ContainerLockbox}
}

// lockboxPattern spots containers that only realize value when opened.
var lockboxPattern = regexp.MustCompile(`(?i)\b(lock|strong|junk)box\b`)

// Classify assigns an item to its valuation bucket. It is a pure function of
// the item metadata: same input, same bucket.
func Classify(it Item) Bucket {
	switch {
	case lockboxPattern.MatchString(it.Name):
		return ContainerLockbox
	case it.Quality == QualityPoor:
		return VendorTrash
	case it.Quality == QualityUncommon || it.Quality == QualityRare || it.Quality == QualityEpic:
		return RareMulti
	case it.Quality == QualityCommon && it.Class == TradeGoodsClass:
		return Gathering
	case it.Quality == QualityCommon:
		return VendorTrash
	default:
		return Other
	}
}

// Valuer computes the conservative expected per-unit value of an item, the
// worth assigned to held inventory before it is sold.
type Valuer struct {
	Prices PriceSource
	Tuning Tuning
}

// NewValuer creates a valuer with the default tuning.
func NewValuer(prices PriceSource) *Valuer {
	return &Valuer{Prices: prices, Tuning: DefaultTuning()}
}

// ExpectedValue returns the expected realizable value of one unit of the item
// in the given bucket. It never returns a negative amount.
//
// Lockboxes realize value only when opened, an event outside this engine, so
// they are held at zero. Other items are untracked and also zero.
func (v *Valuer) ExpectedValue(id ItemID, b Bucket) Money {
	switch b {
	case ContainerLockbox, Other:
		return 0
	case VendorTrash:
		return v.Prices.VendorPrice(id)
	case Gathering:
		market := v.Prices.MarketPrice(id)
		if market <= 0 {
			return v.Prices.VendorPrice(id)
		}
		friction := decimal.NewFromFloat(v.Tuning.MarketFriction)
		return floorMoney(decimal.NewFromInt(int64(market)).Mul(friction))
	case RareMulti:
		vendor := decimal.NewFromInt(int64(v.Prices.VendorPrice(id)))
		disenchant := decimal.NewFromInt(int64(v.Prices.Disenchant(id)))
		market := decimal.NewFromInt(int64(v.Prices.MarketPrice(id)))

		ev := decimal.NewFromFloat(v.Tuning.RareVendorWeight).Mul(vendor).
			Add(decimal.NewFromFloat(v.Tuning.RareDisenchantWeight).Mul(disenchant)).
			Add(decimal.NewFromFloat(v.Tuning.RareMarketWeight).Mul(market))

		// The market price can wildly overstate realizable value; cap the
		// estimate against what the item is worth in hand.
		cap := decimal.NewFromFloat(v.Tuning.RareCapFactor).Mul(decimal.Max(vendor, disenchant))
		return floorMoney(decimal.Min(ev, cap))
	default:
		return 0
	}
}

func floorMoney(d decimal.Decimal) Money {
	m := Money(d.Floor().IntPart())
	if m < 0 {
		return 0
	}
	return m
}
