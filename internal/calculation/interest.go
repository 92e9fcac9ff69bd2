package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// CompoundingPeriodsPerYear is quarterly compounding
	CompoundingPeriodsPerYear = 4

	// PrematurePenaltyPoints is deducted from the contracted rate when a
	// deposit is closed before maturity
	PrematurePenaltyPoints = 1
)

var (
	hundred         = decimal.NewFromInt(100)
	compoundDivisor = decimal.NewFromInt(100 * CompoundingPeriodsPerYear)
	prematurePoints = decimal.NewFromInt(PrematurePenaltyPoints)
)

// CompoundInterest returns the maturity value, rounded to whole rupees, of
// principal compounded quarterly at ratePercent for years:
//
//	maturity = P × (1 + R/400)^(4T)
//
// A zero rate or zero term returns the principal with no interest. A growth
// factor too large for float64 is rejected with ErrInvalidRate when a single
// year already overflows, and with ErrInvalidPeriod otherwise.
func CompoundInterest(principal, ratePercent, years decimal.Decimal) (maturity, interest decimal.Decimal, err error) {
	base := decimal.NewFromInt(1).Add(ratePercent.Div(compoundDivisor))
	exponent := years.Mul(decimal.NewFromInt(CompoundingPeriodsPerYear))

	// The exponent is fractional for most terms, which decimal.Pow does not
	// handle, so the growth factor is computed in float64.
	b, _ := base.Float64()
	e, _ := exponent.Float64()
	f := math.Pow(b, e)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		yearly := math.Pow(b, CompoundingPeriodsPerYear)
		if math.IsInf(yearly, 0) || math.IsNaN(yearly) {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: rate %s%% overflows the growth factor", domain.ErrInvalidRate, ratePercent.String())
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: term of %s years overflows the growth factor", domain.ErrInvalidPeriod, years.StringFixed(2))
	}
	factor := decimal.NewFromFloat(f)

	maturity = principal.Mul(factor).Round(0)
	interest = maturity.Sub(principal)
	return maturity, interest, nil
}

// ReducedRate is the rate paid on a premature closure, never below zero
func ReducedRate(ratePercent decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, ratePercent.Sub(prematurePoints))
}

// CalculateInterest computes a deposit's maturity for the resolved span.
//
// When premature is set the deposit is paid at ReducedRate over the same span:
// MaturityAmount becomes the reduced payout, InterestEarned keeps the interest
// at the contracted rate, and PenaltyAmount is the difference between the two.
func CalculateInterest(principal, ratePercent decimal.Decimal, span domain.PeriodSpan, premature bool) (*domain.CalculationResult, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal must be greater than zero, got %s", domain.ErrInvalidAmount, principal.String())
	}
	if ratePercent.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be greater than zero, got %s", domain.ErrInvalidRate, ratePercent.String())
	}
	if span.TotalDays < 0 {
		return nil, fmt.Errorf("%w: %d days", domain.ErrInvalidPeriod, span.TotalDays)
	}

	maturity, interest, err := CompoundInterest(principal, ratePercent, span.TotalYears)
	if err != nil {
		return nil, err
	}

	result := &domain.CalculationResult{
		Principal:      principal,
		MaturityAmount: maturity,
		InterestEarned: interest,
		AppliedRate:    ratePercent,
		TotalDays:      span.TotalDays,
		TotalYears:     span.TotalYears,
	}

	if !premature {
		return result, nil
	}

	reducedRate := ReducedRate(ratePercent)
	reducedMaturity, reducedInterest, err := CompoundInterest(principal, reducedRate, span.TotalYears)
	if err != nil {
		return nil, err
	}
	penalty := interest.Sub(reducedInterest)

	result.Premature = true
	result.MaturityAmount = reducedMaturity
	result.PenaltyRate = reducedRate
	result.PenaltyAmount = &penalty
	result.NetInterestAfterPenalty = &reducedInterest
	return result, nil
}
