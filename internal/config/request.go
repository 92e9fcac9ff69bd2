package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RequestFile is a calculation request saved as YAML. Exactly one section
// must be present.
type RequestFile struct {
	Deposit       *DepositInput       `yaml:"deposit,omitempty"`
	MonthlyIncome *MonthlyIncomeInput `yaml:"monthly_income,omitempty"`
	Charges       *ChargeInput        `yaml:"charges,omitempty"`
	Eligibility   *EligibilityInput   `yaml:"eligibility,omitempty"`
}

// PeriodInput holds either the manual or the date form of a deposit term
type PeriodInput struct {
	Years     int    `yaml:"years,omitempty"`
	Months    int    `yaml:"months,omitempty"`
	Days      int    `yaml:"days,omitempty"`
	Start     string `yaml:"start,omitempty"`
	Maturity  string `yaml:"maturity,omitempty"`
	EarlyExit string `yaml:"early_exit,omitempty"`
}

// DepositInput is the file form of domain.DepositRequest
type DepositInput struct {
	Principal     decimal.Decimal  `yaml:"principal"`
	CustomerClass string           `yaml:"customer_class,omitempty"`
	RateOverride  *decimal.Decimal `yaml:"rate_override,omitempty"`
	Period        PeriodInput      `yaml:"period"`
}

// MonthlyIncomeInput is the file form of domain.MonthlyIncomeRequest
type MonthlyIncomeInput struct {
	Principal     decimal.Decimal  `yaml:"principal"`
	CustomerClass string           `yaml:"customer_class,omitempty"`
	RateOverride  *decimal.Decimal `yaml:"rate_override,omitempty"`
	Years         int              `yaml:"years,omitempty"`
	Months        int              `yaml:"months,omitempty"`
}

// ChargeInput is the file form of domain.ChargeRequest
type ChargeInput struct {
	Product string          `yaml:"product"`
	Amount  decimal.Decimal `yaml:"amount"`
}

// EligibilityInput is the file form of domain.EligibilityRequest
type EligibilityInput struct {
	BirthDate string `yaml:"birth_date"`
	AsOf      string `yaml:"as_of,omitempty"`
}

// ToPeriod converts the input to a domain period. Any date field selects the
// date form.
func (p PeriodInput) ToPeriod() (domain.Period, error) {
	if p.Start == "" && p.Maturity == "" && p.EarlyExit == "" {
		return domain.ManualPeriod{Years: p.Years, Months: p.Months, Days: p.Days}, nil
	}

	start, err := domain.ParseDate(p.Start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	maturity, err := domain.ParseDate(p.Maturity)
	if err != nil {
		return nil, fmt.Errorf("maturity date: %w", err)
	}
	period := domain.DatePeriod{Start: start, Maturity: maturity}
	if p.EarlyExit != "" {
		exit, err := domain.ParseDate(p.EarlyExit)
		if err != nil {
			return nil, fmt.Errorf("early exit date: %w", err)
		}
		period.EarlyExit = &exit
	}
	return period, nil
}

// ToRequest converts the input to a domain request
func (d DepositInput) ToRequest() (domain.DepositRequest, error) {
	class, err := domain.ParseCustomerClass(d.CustomerClass)
	if err != nil {
		return domain.DepositRequest{}, err
	}
	period, err := d.Period.ToPeriod()
	if err != nil {
		return domain.DepositRequest{}, err
	}
	return domain.DepositRequest{
		Principal:     d.Principal,
		CustomerClass: class,
		RateOverride:  d.RateOverride,
		Period:        period,
	}, nil
}

// ToRequest converts the input to a domain request
func (m MonthlyIncomeInput) ToRequest() (domain.MonthlyIncomeRequest, error) {
	class, err := domain.ParseCustomerClass(m.CustomerClass)
	if err != nil {
		return domain.MonthlyIncomeRequest{}, err
	}
	return domain.MonthlyIncomeRequest{
		Principal:     m.Principal,
		CustomerClass: class,
		RateOverride:  m.RateOverride,
		Period:        domain.ManualPeriod{Years: m.Years, Months: m.Months},
	}, nil
}

// ToRequest converts the input to a domain request
func (c ChargeInput) ToRequest() (domain.ChargeRequest, error) {
	product, err := domain.ParseProductType(c.Product)
	if err != nil {
		return domain.ChargeRequest{}, err
	}
	return domain.ChargeRequest{Product: product, Amount: c.Amount}, nil
}

// ToRequest converts the input to a domain request
func (e EligibilityInput) ToRequest() (domain.EligibilityRequest, error) {
	birth, err := domain.ParseDate(e.BirthDate)
	if err != nil {
		return domain.EligibilityRequest{}, fmt.Errorf("birth date: %w", err)
	}
	req := domain.EligibilityRequest{BirthDate: birth}
	if e.AsOf != "" {
		asOf, err := domain.ParseDate(e.AsOf)
		if err != nil {
			return domain.EligibilityRequest{}, fmt.Errorf("as-of date: %w", err)
		}
		req.AsOf = asOf
	}
	return req, nil
}

// LoadRequestFromFile reads a request file
func (ip *InputParser) LoadRequestFromFile(filename string) (*RequestFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req RequestFile
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	sections := 0
	for _, present := range []bool{req.Deposit != nil, req.MonthlyIncome != nil, req.Charges != nil, req.Eligibility != nil} {
		if present {
			sections++
		}
	}
	if sections != 1 {
		return nil, fmt.Errorf("request file must contain exactly one of deposit, monthly_income, charges, eligibility (found %d)", sections)
	}

	return &req, nil
}

// SaveTables writes tables to a YAML file
func SaveTables(tables *domain.Tables, filename string) error {
	data, err := yaml.Marshal(tables)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// Today returns the current calendar date in UTC
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
