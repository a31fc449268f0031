package lootledger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Money is an amount of game currency counted in copper, the smallest coin.
// 1 gold = 100 silver = 10000 copper. There are no fractional coins, so all
// arithmetic is exact integer arithmetic.
type Money int64

const (
	Copper Money = 1
	Silver Money = 100 * Copper
	Gold   Money = 100 * Silver
)

// Coins builds an amount from its gold, silver and copper parts.
func Coins(gold, silver, copper int64) Money {
	return Money(gold)*Gold + Money(silver)*Silver + Money(copper)
}

func (m Money) IsZero() bool     { return m == 0 }
func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsPositive() bool { return m > 0 }

// Neg returns the negated amount.
func (m Money) Neg() Money { return -m }

// MulCount returns the amount for n units worth m each.
func (m Money) MulCount(n int64) Money { return m * Money(n) }

// String formats the amount as "12g 34s 56c", omitting zero denominations.
// The zero amount is "0c".
func (m Money) String() string {
	if m == 0 {
		return "0c"
	}
	v := m
	var sign string
	if v < 0 {
		sign = "-"
		v = -v
	}
	g := v / Gold
	s := v % Gold / Silver
	c := v % Silver

	var parts []string
	if g > 0 {
		parts = append(parts, strconv.FormatInt(int64(g), 10)+"g")
	}
	if s > 0 {
		parts = append(parts, strconv.FormatInt(int64(s), 10)+"s")
	}
	if c > 0 || len(parts) == 0 {
		parts = append(parts, strconv.FormatInt(int64(c), 10)+"c")
	}
	return sign + strings.Join(parts, " ")
}

// SignedString is like String with an explicit leading sign, and "-" for zero.
func (m Money) SignedString() string {
	if m == 0 {
		return "-"
	}
	if m > 0 {
		return "+" + m.String()
	}
	return m.String()
}

var moneyPattern = regexp.MustCompile(`^\s*(-)?\s*(?:(\d+)\s*g)?\s*(?:(\d+)\s*s)?\s*(?:(\d+)\s*c?)?\s*$`)

// ParseMoney reads an amount written either as a bare copper integer ("12345")
// or in coin notation ("1g 23s 45c", any denomination may be omitted).
func ParseMoney(s string) (Money, error) {
	groups := moneyPattern.FindStringSubmatch(s)
	if groups == nil || (groups[2] == "" && groups[3] == "" && groups[4] == "") {
		return 0, fmt.Errorf("invalid money %q", s)
	}
	part := func(g string) Money {
		if g == "" {
			return 0
		}
		v, _ := strconv.ParseInt(g, 10, 64)
		return Money(v)
	}
	m := part(groups[2])*Gold + part(groups[3])*Silver + part(groups[4])
	if groups[1] == "-" {
		m = -m
	}
	return m, nil
}

// MarshalYAML renders the amount in coin notation.
func (m Money) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML accepts the same forms as ParseMoney, so YAML files may write
// either `vendor: 10` or `vendor: 1g 23s 45c`.
func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseMoney(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
