package domain

import (
	"github.com/shopspring/decimal"
)

// DepositRequest asks for the maturity of a fixed deposit. RateOverride, when
// set, replaces the rate card lookup.
type DepositRequest struct {
	Principal     decimal.Decimal  `yaml:"principal" json:"principal"`
	CustomerClass CustomerClass    `yaml:"customer_class" json:"customer_class"`
	RateOverride  *decimal.Decimal `yaml:"rate_override,omitempty" json:"rate_override,omitempty"`
	Period        Period           `yaml:"-" json:"-"`
}

// CalculationResult is the outcome of a deposit calculation.
//
// For a premature closure InterestEarned is the gross interest the deposit
// would have earned at the nominal rate, NetInterestAfterPenalty is what is
// actually paid at the reduced rate, and MaturityAmount is the net payable.
type CalculationResult struct {
	Principal               decimal.Decimal  `json:"principal"`
	MaturityAmount          decimal.Decimal  `json:"maturity_amount"`
	InterestEarned          decimal.Decimal  `json:"interest_earned"`
	AppliedRate             decimal.Decimal  `json:"applied_rate"`
	RateSlab                string           `json:"rate_slab,omitempty"`
	CustomerClass           CustomerClass    `json:"customer_class,omitempty"`
	TotalDays               int              `json:"total_days"`
	TotalYears              decimal.Decimal  `json:"total_years"`
	Premature               bool             `json:"premature"`
	PenaltyRate             decimal.Decimal  `json:"penalty_rate,omitempty"`
	PenaltyAmount           *decimal.Decimal `json:"penalty_amount,omitempty"`
	NetInterestAfterPenalty *decimal.Decimal `json:"net_interest_after_penalty,omitempty"`
}

// MonthlyIncomeRequest asks for the payout of a monthly income deposit
type MonthlyIncomeRequest struct {
	Principal     decimal.Decimal  `yaml:"principal" json:"principal"`
	CustomerClass CustomerClass    `yaml:"customer_class" json:"customer_class"`
	RateOverride  *decimal.Decimal `yaml:"rate_override,omitempty" json:"rate_override,omitempty"`
	Period        ManualPeriod     `yaml:"period" json:"period"`
}

// MonthlyIncomeResult is the payout schedule of a monthly income deposit.
// The principal is returned unchanged at the end of the term.
type MonthlyIncomeResult struct {
	Principal         decimal.Decimal `json:"principal"`
	AppliedRate       decimal.Decimal `json:"applied_rate"`
	RateSlab          string          `json:"rate_slab,omitempty"`
	CustomerClass     CustomerClass   `json:"customer_class,omitempty"`
	TotalDays         int             `json:"total_days"`
	Months            int             `json:"months"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	PrincipalReturned decimal.Decimal `json:"principal_returned"`
}
