package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/fdcalc/internal/config"
	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs every calculator over one set of tables
type CalculationEngine struct {
	Tables *domain.Tables
	Logger Logger

	// Clock supplies the as-of date when a request leaves it empty
	Clock func() time.Time
}

// NewCalculationEngine creates an engine over the built-in tables
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithTables(config.DefaultTables())
}

// NewCalculationEngineWithTables creates an engine over the given tables
func NewCalculationEngineWithTables(tables *domain.Tables) *CalculationEngine {
	if tables == nil {
		tables = config.DefaultTables()
	}
	return &CalculationEngine{
		Tables: tables,
		Logger: NopLogger{},
		Clock:  config.Today,
	}
}

// SetLogger sets the logger for the engine
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CalculateDeposit resolves the term, selects the rate and computes the
// maturity. A date period with an early-exit date is a premature closure.
func (ce *CalculationEngine) CalculateDeposit(ctx context.Context, req domain.DepositRequest) (*domain.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span, err := ResolvePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	class := classOrDefault(req.CustomerClass)

	rate, slabLabel, err := SelectRate(ce.Tables.InterestRates, span.TotalDays, class, req.RateOverride)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("deposit: %d days (%s years), slab %q, %s rate %s%%",
		span.TotalDays, span.TotalYears.StringFixed(4), slabLabel, class, rate.String())

	premature := false
	switch dp := req.Period.(type) {
	case domain.DatePeriod:
		premature = dp.IsPremature()
	case *domain.DatePeriod:
		premature = dp.IsPremature()
	}

	result, err := CalculateInterest(req.Principal, rate, span, premature)
	if err != nil {
		return nil, err
	}
	result.RateSlab = slabLabel
	result.CustomerClass = class

	if result.Premature {
		ce.Logger.Infof("premature closure: rate reduced to %s%%, penalty %s",
			result.PenaltyRate.String(), result.PenaltyAmount.String())
	}
	return result, nil
}

// CalculateMonthlyIncome computes the payout schedule of a monthly income
// deposit using the monthly income rate card
func (ce *CalculationEngine) CalculateMonthlyIncome(ctx context.Context, req domain.MonthlyIncomeRequest) (*domain.MonthlyIncomeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span, err := ResolvePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	class := classOrDefault(req.CustomerClass)

	rate, slabLabel, err := SelectRate(ce.Tables.MonthlyIncome, span.TotalDays, class, req.RateOverride)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("monthly income: %d days, slab %q, %s rate %s%%", span.TotalDays, slabLabel, class, rate.String())

	result, err := CalculateMonthlyIncome(req.Principal, rate, span)
	if err != nil {
		return nil, err
	}
	result.RateSlab = slabLabel
	result.CustomerClass = class
	return result, nil
}

// CalculateCharges computes the fee on a transfer
func (ce *CalculationEngine) CalculateCharges(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, ok := ce.Tables.Charges[req.Product]
	if !ok {
		return nil, fmt.Errorf("no charge table for product %q", req.Product)
	}

	result, err := CalculateCharges(table, req.Amount)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("charges: %s %s -> base %s, gst %s", req.Product, req.Amount.String(), result.BaseFee.String(), result.GSTAmount.String())
	return result, nil
}

// CheckEligibility evaluates scheme eligibility. An empty AsOf means today.
func (ce *CalculationEngine) CheckEligibility(ctx context.Context, req domain.EligibilityRequest) (*domain.AgeEligibility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = ce.Clock()
	}

	result, err := CheckEligibility(ce.Tables.Schemes, ce.Tables.APY, req.BirthDate, asOf)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("eligibility: age %d on %s (pmsby=%t pmjjby=%t apy=%t)",
		result.Age, asOf.Format(domain.DateLayout), result.EligiblePMSBY, result.EligiblePMJJBY, result.EligibleAPY)
	return result, nil
}

// TaxSaverRate quotes the tax saver deposit rate for a class
func (ce *CalculationEngine) TaxSaverRate(class domain.CustomerClass) (decimal.Decimal, error) {
	return SpecialRate(ce.Tables.InterestRates, config.TaxSaverLabel, classOrDefault(class))
}

func classOrDefault(c domain.CustomerClass) domain.CustomerClass {
	if c == "" {
		return domain.GeneralPublic
	}
	return c
}
