package domain

import (
	"github.com/shopspring/decimal"
)

// RateSlab is one tenor bracket of a deposit rate card. A slab covers every
// period up to and including UpperBoundDays that the previous slab does not.
type RateSlab struct {
	PeriodLabel    string                            `yaml:"period" json:"period"`
	UpperBoundDays int                               `yaml:"upper_bound_days" json:"upper_bound_days"`
	Rates          map[CustomerClass]decimal.Decimal `yaml:"rates" json:"rates"`
}

// Rate returns the annual percentage rate for the class and whether the slab
// quotes one
func (s RateSlab) Rate(class CustomerClass) (decimal.Decimal, bool) {
	rate, ok := s.Rates[class]
	return rate, ok
}

// RateTable is an ordered rate card. Slabs are ascending by UpperBoundDays.
// Special slabs are named products (Tax Saver Deposit) that are quoted
// alongside the card but never matched by period length.
type RateTable struct {
	Name    string     `yaml:"name" json:"name"`
	Slabs   []RateSlab `yaml:"slabs" json:"slabs"`
	Special []RateSlab `yaml:"special,omitempty" json:"special,omitempty"`
}

// FindSpecial looks up a special slab by its label
func (t RateTable) FindSpecial(label string) (RateSlab, bool) {
	for _, s := range t.Special {
		if s.PeriodLabel == label {
			return s, true
		}
	}
	return RateSlab{}, false
}

// BestRate is the highest rate on a card for one customer class
type BestRate struct {
	Class       CustomerClass   `json:"class"`
	Rate        decimal.Decimal `json:"rate"`
	PeriodLabel string          `json:"period"`
}
