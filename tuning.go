package lootledger

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the valuation parameters. None of the defaults are
// load-bearing for correctness; hosts tune them to their economy.
type Tuning struct {
	// MarketFriction discounts the market price of gathered trade goods for
	// sale friction and fees. Must be in (0, 1].
	MarketFriction float64 `yaml:"market_friction"`

	// Weights of the RareMulti blend. Must sum to 1.
	RareVendorWeight     float64 `yaml:"rare_vendor_weight"`
	RareDisenchantWeight float64 `yaml:"rare_disenchant_weight"`
	RareMarketWeight     float64 `yaml:"rare_market_weight"`

	// RareCapFactor caps the RareMulti estimate at a multiple of the item's
	// in-hand worth, max(vendor, disenchant).
	RareCapFactor float64 `yaml:"rare_cap_factor"`
}

// DefaultTuning returns the stock parameters.
func DefaultTuning() Tuning {
	return Tuning{
		MarketFriction:       0.85,
		RareVendorWeight:     0.30,
		RareDisenchantWeight: 0.50,
		RareMarketWeight:     0.20,
		RareCapFactor:        3.0,
	}
}

// Validate checks the tuning for internal consistency.
func (t Tuning) Validate() error {
	if t.MarketFriction <= 0 || t.MarketFriction > 1 {
		return fmt.Errorf("market_friction must be in (0, 1], got %v", t.MarketFriction)
	}
	sum := t.RareVendorWeight + t.RareDisenchantWeight + t.RareMarketWeight
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("rare weights must sum to 1, got %v", sum)
	}
	if t.RareCapFactor <= 0 {
		return fmt.Errorf("rare_cap_factor must be positive, got %v", t.RareCapFactor)
	}
	return nil
}

// LoadTuning reads tuning from a YAML file and validates it.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}
