package lootledger

import (
	"fmt"
	"strings"
)

// AccountClass determines the debit/credit sign convention of an account.
type AccountClass int

const (
	Asset AccountClass = iota
	Expense
	Income
	Equity
)

func (c AccountClass) String() string {
	switch c {
	case Asset:
		return "Assets"
	case Expense:
		return "Expenses"
	case Income:
		return "Income"
	case Equity:
		return "Equity"
	default:
		return "unknown"
	}
}

// ParseAccountClass parses the class segment of an account name.
func ParseAccountClass(s string) (AccountClass, error) {
	switch s {
	case "Assets":
		return Asset, nil
	case "Expenses":
		return Expense, nil
	case "Income":
		return Income, nil
	case "Equity":
		return Equity, nil
	default:
		return 0, fmt.Errorf("unknown account class: %q", s)
	}
}

// Account identifies a ledger account by structured identity rather than by a
// raw string, so a typo cannot silently create a new account in the wrong
// class. The rendered form keeps the hierarchical namespace ("Assets:Cash",
// "Assets:Inventory:Gathering") for display and persistence.
type Account struct {
	Class AccountClass
	Name  string // sub-name within the class, may itself contain ':'
}

// The accounts the engine posts to.
var (
	CashAccount         = Account{Asset, "Cash"}
	LootedCoinAccount   = Account{Income, "LootedCoin"}
	QuestRewardsAccount = Account{Income, "QuestRewards"}
	VendorSalesAccount  = Account{Income, "VendorSales"}
	RepairsAccount      = Account{Expense, "Repairs"}
	TravelAccount       = Account{Expense, "Travel"}
	RealizationAccount  = Account{Equity, "InventoryRealization"}
)

// InventoryAccount returns the asset account holding the expected value of
// unsold loot for one valuation bucket.
func InventoryAccount(b Bucket) Account {
	return Account{Asset, "Inventory:" + b.String()}
}

// IsInventory reports whether a is one of the Assets:Inventory:* accounts.
func (a Account) IsInventory() bool {
	return a.Class == Asset && strings.HasPrefix(a.Name, "Inventory:")
}

func (a Account) String() string {
	return a.Class.String() + ":" + a.Name
}

// ParseAccount is the inverse of String. It is used when loading a persisted
// session record.
func ParseAccount(s string) (Account, error) {
	class, name, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return Account{}, fmt.Errorf("invalid account %q", s)
	}
	c, err := ParseAccountClass(class)
	if err != nil {
		return Account{}, fmt.Errorf("invalid account %q: %w", s, err)
	}
	return Account{Class: c, Name: name}, nil
}
