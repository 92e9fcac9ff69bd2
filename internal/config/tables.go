package config

import (
	"time"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxSaverLabel is the special slab quoted for the five-year tax saver deposit
const TaxSaverLabel = "Tax Saver Deposit Scheme"

// slab builds a rate slab from the card columns in published order:
// general public, staff, staff senior citizens, senior citizens, super senior citizens.
func slab(label string, upperBoundDays int, general, staff, staffSenior, senior, superSenior float64) domain.RateSlab {
	return domain.RateSlab{
		PeriodLabel:    label,
		UpperBoundDays: upperBoundDays,
		Rates: map[domain.CustomerClass]decimal.Decimal{
			domain.GeneralPublic:      decimal.NewFromFloat(general),
			domain.Staff:              decimal.NewFromFloat(staff),
			domain.StaffSeniorCitizen: decimal.NewFromFloat(staffSenior),
			domain.SeniorCitizen:      decimal.NewFromFloat(senior),
			domain.SuperSeniorCitizen: decimal.NewFromFloat(superSenior),
		},
	}
}

// longTermSlabs are shared by both rate cards. Each call returns fresh maps.
func longTermSlabs() []domain.RateSlab {
	return []domain.RateSlab{
		slab("One year only", 365, 6.05, 7.05, 7.55, 6.55, 6.80),
		slab("More than 1 year to less than 2 years", 730, 6.00, 7.00, 7.50, 6.50, 6.75),
		slab("2 years to less than 3 years", 1095, 5.90, 6.90, 7.40, 6.40, 6.65),
		slab("3 years to less than 5 years", 1825, 5.95, 6.95, 7.45, 6.45, 6.70),
		slab("5 years to less than 8 years", 2920, 5.85, 6.85, 7.35, 6.35, 6.60),
		slab("8 years & above (upto 10 years)", 3650, 5.75, 6.75, 7.25, 6.25, 6.50),
	}
}

// DefaultInterestRates is the full term deposit rate card: 7 days to 10 years
// plus the tax saver product.
func DefaultInterestRates() domain.RateTable {
	short := []domain.RateSlab{
		slab("7-14 days", 14, 2.65, 3.65, 4.15, 2.65, 2.65),
		slab("15-29 days", 29, 2.75, 3.75, 4.25, 2.75, 2.75),
		slab("30-45 days", 45, 2.75, 3.75, 4.25, 2.75, 2.75),
		slab("46-60 days", 60, 2.75, 3.75, 4.25, 2.75, 2.75),
		slab("61-90 days", 90, 2.75, 3.75, 4.25, 2.75, 2.75),
		slab("91-120 days", 120, 3.75, 4.75, 5.25, 3.75, 3.75),
		slab("121-150 days", 150, 4.00, 5.00, 5.50, 4.00, 4.00),
		slab("151-179 days", 179, 4.00, 5.00, 5.50, 4.00, 4.00),
		slab("180-210 days", 210, 4.50, 5.50, 6.00, 5.00, 5.25),
		slab("211-270 days", 270, 4.50, 5.50, 6.00, 5.00, 5.25),
		slab("271 days to less than 1 year", 364, 4.75, 5.75, 6.25, 5.25, 5.50),
	}
	return domain.RateTable{
		Name:  "Term Deposit",
		Slabs: append(short, longTermSlabs()...),
		Special: []domain.RateSlab{
			slab(TaxSaverLabel, 1825, 5.85, 6.85, 7.35, 5.85, 5.85),
		},
	}
}

// DefaultMonthlyIncomeRates is the reduced card offered on the monthly
// income scheme, one to ten years only.
func DefaultMonthlyIncomeRates() domain.RateTable {
	return domain.RateTable{
		Name:  "Monthly Income Scheme",
		Slabs: longTermSlabs(),
	}
}

func amountPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultChargeTables are the outward NEFT (branch) and IMPS fee schedules.
// IMPS has no bracket above 2,00,000, so larger transfers carry no base fee.
func DefaultChargeTables() map[domain.ProductType]domain.ChargeTable {
	gst := decimal.NewFromFloat(0.18)
	return map[domain.ProductType]domain.ChargeTable{
		domain.NEFT: {
			Product: domain.NEFT,
			GSTRate: gst,
			Slabs: []domain.ChargeSlab{
				{UpperBoundAmount: amountPtr(10000), BaseFee: decimal.NewFromFloat(2.50)},
				{UpperBoundAmount: amountPtr(100000), BaseFee: decimal.NewFromFloat(5.00)},
				{UpperBoundAmount: amountPtr(200000), BaseFee: decimal.NewFromFloat(15.00)},
				{BaseFee: decimal.NewFromFloat(25.00)},
			},
		},
		domain.IMPS: {
			Product: domain.IMPS,
			GSTRate: gst,
			Slabs: []domain.ChargeSlab{
				{UpperBoundAmount: amountPtr(100000), BaseFee: decimal.NewFromFloat(5.00)},
				{UpperBoundAmount: amountPtr(200000), BaseFee: decimal.NewFromFloat(15.00)},
			},
		},
	}
}

// DefaultSchemeRules are the PMSBY, PMJJBY and APY age windows and premiums
func DefaultSchemeRules() domain.SchemeRules {
	return domain.SchemeRules{
		PMSBY:              domain.AgeRange{Min: 18, Max: 70},
		PMJJBY:             domain.AgeRange{Min: 18, Max: 50},
		APY:                domain.AgeRange{Min: 18, Max: 40},
		PMSBYAnnualPremium: decimal.NewFromInt(20),
		PMJJBYPremiums: []domain.PMJJBYPremiumBand{
			{EnrollmentMonths: []time.Month{time.June, time.July, time.August}, CoverageMonths: 12, Premium: decimal.NewFromInt(436)},
			{EnrollmentMonths: []time.Month{time.September, time.October, time.November}, CoverageMonths: 9, Premium: decimal.NewFromInt(342)},
			{EnrollmentMonths: []time.Month{time.December, time.January, time.February}, CoverageMonths: 6, Premium: decimal.NewFromInt(228)},
			{EnrollmentMonths: []time.Month{time.March, time.April, time.May}, CoverageMonths: 3, Premium: decimal.NewFromInt(114)},
		},
	}
}

// DefaultAPYContributions is the APY monthly contribution chart
func DefaultAPYContributions() domain.APYContributionMatrix {
	return domain.APYContributionMatrix{
		Pensions: []int{1000, 2000, 3000, 4000, 5000},
		Buckets: []domain.APYBucket{
			{Age: 18, Contributions: map[int]int{1000: 42, 2000: 84, 3000: 126, 4000: 168, 5000: 210}},
			{Age: 20, Contributions: map[int]int{1000: 50, 2000: 100, 3000: 150, 4000: 200, 5000: 250}},
			{Age: 25, Contributions: map[int]int{1000: 76, 2000: 151, 3000: 226, 4000: 301, 5000: 376}},
			{Age: 30, Contributions: map[int]int{1000: 116, 2000: 231, 3000: 347, 4000: 462, 5000: 577}},
			{Age: 35, Contributions: map[int]int{1000: 181, 2000: 362, 3000: 543, 4000: 724, 5000: 902}},
			{Age: 40, Contributions: map[int]int{1000: 291, 2000: 582, 3000: 873, 4000: 1164, 5000: 1454}},
		},
	}
}

// DefaultTables returns the built-in tables
func DefaultTables() *domain.Tables {
	return &domain.Tables{
		Metadata: domain.TableMetadata{
			Bank:        "Odisha Grameen Bank",
			Description: "Built-in deposit rate card, transfer charges and scheme rules",
		},
		InterestRates: DefaultInterestRates(),
		MonthlyIncome: DefaultMonthlyIncomeRates(),
		Charges:       DefaultChargeTables(),
		Schemes:       DefaultSchemeRules(),
		APY:           DefaultAPYContributions(),
	}
}
