package scenes

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fdcalc/internal/calculation"
	"github.com/rgehrsitz/fdcalc/internal/config"
	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/rgehrsitz/fdcalc/internal/output"
	"github.com/rgehrsitz/fdcalc/internal/tui/components"
)

// Calculator names, also used to route CalculationCompleteMsg
const (
	InterestCalculator      = "interest"
	MonthlyIncomeCalculator = "monthly-income"
	ChargesCalculator       = "charges"
	EligibilityCalculator   = "eligibility"
)

const (
	periodByTerm  = "Years / months / days"
	periodByDates = "Start & maturity dates"
)

// NewInterestModel builds the term deposit calculator. The period mode field
// decides whether the term or the date fields are read.
func NewInterestModel(engine *calculation.CalculationEngine, builder *output.ReportBuilder) *CalculatorModel {
	fields := []*components.Field{
		components.TextField("Principal (₹)", "100000", "deposit amount"),
		components.ChoiceField("Category", classOptions()...),
		components.TextField("Custom rate (%)", "", "leave blank for the card rate"),
		components.ChoiceField("Period", periodByTerm, periodByDates),
		components.TextField("Years", "1", ""),
		components.TextField("Months", "0", ""),
		components.TextField("Days", "0", ""),
		components.TextField("Start date", "YYYY-MM-DD", "date mode only"),
		components.TextField("Maturity date", "YYYY-MM-DD", "date mode only"),
		components.TextField("Early exit date", "", "optional, applies the 1% penalty"),
	}

	compute := func(ctx context.Context, v []string) (*output.Report, error) {
		in, err := depositInputFromValues(v)
		if err != nil {
			return nil, err
		}
		req, err := in.ToRequest()
		if err != nil {
			return nil, err
		}
		result, err := engine.CalculateDeposit(ctx, req)
		if err != nil {
			return nil, err
		}
		return builder.Deposit(req, result), nil
	}

	return NewCalculatorModel(InterestCalculator, "Term Deposit Interest",
		"Quarterly compounding with premature closure penalty", compute, fields...)
}

func depositInputFromValues(v []string) (config.DepositInput, error) {
	principal, err := parseAmount("Principal", v[0])
	if err != nil {
		return config.DepositInput{}, err
	}
	rate, err := parseOptionalRate(v[2])
	if err != nil {
		return config.DepositInput{}, err
	}
	in := config.DepositInput{Principal: principal, CustomerClass: v[1], RateOverride: rate}

	if v[3] == periodByDates {
		in.Period = config.PeriodInput{Start: v[7], Maturity: v[8], EarlyExit: v[9]}
		if in.Period.Start == "" || in.Period.Maturity == "" {
			return config.DepositInput{}, fmt.Errorf("%w: start and maturity dates are required", domain.ErrInvalidDate)
		}
		return in, nil
	}

	counts := make([]int, 3)
	for i, label := range []string{"Years", "Months", "Days"} {
		if counts[i], err = parseCount(label, v[4+i]); err != nil {
			return config.DepositInput{}, err
		}
	}
	in.Period = config.PeriodInput{Years: counts[0], Months: counts[1], Days: counts[2]}
	return in, nil
}

// NewMonthlyIncomeModel builds the monthly income scheme calculator
func NewMonthlyIncomeModel(engine *calculation.CalculationEngine, builder *output.ReportBuilder) *CalculatorModel {
	fields := []*components.Field{
		components.TextField("Principal (₹)", "100000", "deposit amount"),
		components.ChoiceField("Category", classOptions()...),
		components.TextField("Custom rate (%)", "", "leave blank for the card rate"),
		components.TextField("Years", "1", "1 to 10"),
		components.TextField("Months", "0", ""),
	}

	compute := func(ctx context.Context, v []string) (*output.Report, error) {
		principal, err := parseAmount("Principal", v[0])
		if err != nil {
			return nil, err
		}
		rate, err := parseOptionalRate(v[2])
		if err != nil {
			return nil, err
		}
		years, err := parseCount("Years", v[3])
		if err != nil {
			return nil, err
		}
		months, err := parseCount("Months", v[4])
		if err != nil {
			return nil, err
		}
		req, err := config.MonthlyIncomeInput{
			Principal:     principal,
			CustomerClass: v[1],
			RateOverride:  rate,
			Years:         years,
			Months:        months,
		}.ToRequest()
		if err != nil {
			return nil, err
		}
		result, err := engine.CalculateMonthlyIncome(ctx, req)
		if err != nil {
			return nil, err
		}
		return builder.MonthlyIncome(req, result), nil
	}

	return NewCalculatorModel(MonthlyIncomeCalculator, "Monthly Income Scheme",
		"Interest paid out every month, principal returned at maturity", compute, fields...)
}

// NewChargesModel builds the NEFT/IMPS charge calculator
func NewChargesModel(engine *calculation.CalculationEngine, builder *output.ReportBuilder) *CalculatorModel {
	fields := []*components.Field{
		components.ChoiceField("Product", string(domain.NEFT), string(domain.IMPS)),
		components.TextField("Amount (₹)", "50000", "transfer amount"),
	}

	compute := func(ctx context.Context, v []string) (*output.Report, error) {
		amount, err := parseAmount("Amount", v[1])
		if err != nil {
			return nil, err
		}
		req, err := config.ChargeInput{Product: v[0], Amount: amount}.ToRequest()
		if err != nil {
			return nil, err
		}
		result, err := engine.CalculateCharges(ctx, req)
		if err != nil {
			return nil, err
		}
		return builder.Charges(result), nil
	}

	return NewCalculatorModel(ChargesCalculator, "NEFT / IMPS Charges",
		"Slab fee plus GST", compute, fields...)
}

// NewEligibilityModel builds the PMSBY/PMJJBY/APY age eligibility checker
func NewEligibilityModel(engine *calculation.CalculationEngine, builder *output.ReportBuilder) *CalculatorModel {
	fields := []*components.Field{
		components.TextField("Date of birth", "YYYY-MM-DD", ""),
		components.TextField("As of", "YYYY-MM-DD", "leave blank for today"),
	}

	compute := func(ctx context.Context, v []string) (*output.Report, error) {
		if strings.TrimSpace(v[0]) == "" {
			return nil, fmt.Errorf("%w: date of birth is required", domain.ErrInvalidDate)
		}
		req, err := config.EligibilityInput{BirthDate: v[0], AsOf: v[1]}.ToRequest()
		if err != nil {
			return nil, err
		}
		result, err := engine.CheckEligibility(ctx, req)
		if err != nil {
			return nil, err
		}
		return builder.Eligibility(result), nil
	}

	return NewCalculatorModel(EligibilityCalculator, "Social Security Scheme Eligibility",
		"PMSBY, PMJJBY and APY age windows", compute, fields...)
}
