package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductType is an interbank transfer scheme with its own fee schedule
type ProductType string

const (
	NEFT ProductType = "NEFT"
	IMPS ProductType = "IMPS"
)

// ParseProductType accepts neft/imps in any case
func ParseProductType(s string) (ProductType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NEFT":
		return NEFT, nil
	case "IMPS":
		return IMPS, nil
	}
	return "", fmt.Errorf("unknown product type %q", s)
}

// ChargeSlab is one fee bracket. A nil UpperBoundAmount is unbounded.
type ChargeSlab struct {
	UpperBoundAmount *decimal.Decimal `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"`
	BaseFee          decimal.Decimal  `yaml:"base_fee" json:"base_fee"`
}

// Covers reports whether amount falls under this slab's upper bound
func (s ChargeSlab) Covers(amount decimal.Decimal) bool {
	return s.UpperBoundAmount == nil || amount.LessThanOrEqual(*s.UpperBoundAmount)
}

// ChargeTable is the fee schedule for one product
type ChargeTable struct {
	Product ProductType     `yaml:"product" json:"product"`
	Slabs   []ChargeSlab    `yaml:"slabs" json:"slabs"`
	GSTRate decimal.Decimal `yaml:"gst_rate" json:"gst_rate"`
}

// ChargeRequest asks for the fee on a transfer
type ChargeRequest struct {
	Product ProductType     `yaml:"product" json:"product"`
	Amount  decimal.Decimal `yaml:"amount" json:"amount"`
}

// ChargeBreakdown is the fee on a transfer, GST inclusive
type ChargeBreakdown struct {
	Product     ProductType     `json:"product"`
	Amount      decimal.Decimal `json:"amount"`
	BaseFee     decimal.Decimal `json:"base_fee"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	TotalCharge decimal.Decimal `json:"total_charge"`
}
