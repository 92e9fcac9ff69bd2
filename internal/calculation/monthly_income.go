package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var monthlyDivisor = decimal.NewFromInt(1200)

// CalculateMonthlyIncome computes the fixed monthly payout P×R/1200 over
// floor(days/30) whole months. Amounts are rounded to paise; the total is
// taken from the unrounded monthly figure.
func CalculateMonthlyIncome(principal, ratePercent decimal.Decimal, span domain.PeriodSpan) (*domain.MonthlyIncomeResult, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal must be greater than zero, got %s", domain.ErrInvalidAmount, principal.String())
	}
	if ratePercent.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be greater than zero, got %s", domain.ErrInvalidRate, ratePercent.String())
	}
	if span.TotalDays < 0 {
		return nil, fmt.Errorf("%w: %d days", domain.ErrInvalidPeriod, span.TotalDays)
	}

	monthly := principal.Mul(ratePercent).Div(monthlyDivisor)
	months := span.TotalDays / DaysPerMonth
	total := monthly.Mul(decimal.NewFromInt(int64(months)))

	return &domain.MonthlyIncomeResult{
		Principal:         principal,
		AppliedRate:       ratePercent,
		TotalDays:         span.TotalDays,
		Months:            months,
		MonthlyIncome:     monthly.Round(2),
		TotalIncome:       total.Round(2),
		PrincipalReturned: principal,
	}, nil
}
