package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateCharges returns the transfer fee for amount under table. The first
// slab whose upper bound is at least amount applies. An amount above every
// bounded slab of a table without an open-ended slab carries no base fee.
func CalculateCharges(table domain.ChargeTable, amount decimal.Decimal) (*domain.ChargeBreakdown, error) {
	if amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount cannot be negative, got %s", domain.ErrInvalidAmount, amount.String())
	}

	baseFee := decimal.Zero
	for _, s := range table.Slabs {
		if s.Covers(amount) {
			baseFee = s.BaseFee
			break
		}
	}

	gst := baseFee.Mul(table.GSTRate)
	return &domain.ChargeBreakdown{
		Product:     table.Product,
		Amount:      amount,
		BaseFee:     baseFee,
		GSTRate:     table.GSTRate,
		GSTAmount:   gst,
		TotalCharge: baseFee.Add(gst),
	}, nil
}
