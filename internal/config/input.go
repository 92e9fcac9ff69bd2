package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of table and request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadTablesFromFile loads rate, charge and scheme tables from a YAML file.
// Sections left out of the file keep their built-in values.
func (ip *InputParser) LoadTablesFromFile(filename string) (*domain.Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var tables domain.Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeDefaults(&tables)

	if err := ip.ValidateTables(&tables); err != nil {
		return nil, fmt.Errorf("table validation failed: %w", err)
	}

	return &tables, nil
}

// mergeDefaults fills empty sections with the built-in tables
func mergeDefaults(t *domain.Tables) {
	defaults := DefaultTables()
	if t.Metadata.Bank == "" {
		t.Metadata.Bank = defaults.Metadata.Bank
	}
	if len(t.InterestRates.Slabs) == 0 {
		t.InterestRates = defaults.InterestRates
	}
	if len(t.MonthlyIncome.Slabs) == 0 {
		t.MonthlyIncome = defaults.MonthlyIncome
	}
	if len(t.Charges) == 0 {
		t.Charges = defaults.Charges
	}
	mergeSchemeRules(&t.Schemes, defaults.Schemes)
	if len(t.APY.Buckets) == 0 {
		t.APY = defaults.APY
	}
}

// mergeSchemeRules fills each unset scheme field on its own, so a file that
// only moves an age window keeps the built-in premiums
func mergeSchemeRules(r *domain.SchemeRules, defaults domain.SchemeRules) {
	if r.PMSBY == (domain.AgeRange{}) {
		r.PMSBY = defaults.PMSBY
	}
	if r.PMJJBY == (domain.AgeRange{}) {
		r.PMJJBY = defaults.PMJJBY
	}
	if r.APY == (domain.AgeRange{}) {
		r.APY = defaults.APY
	}
	if r.PMSBYAnnualPremium.IsZero() {
		r.PMSBYAnnualPremium = defaults.PMSBYAnnualPremium
	}
	if len(r.PMJJBYPremiums) == 0 {
		r.PMJJBYPremiums = defaults.PMJJBYPremiums
	}
}

// ValidateTables checks the structural rules every lookup depends on
func (ip *InputParser) ValidateTables(t *domain.Tables) error {
	if err := ip.validateRateTable(&t.InterestRates); err != nil {
		return fmt.Errorf("interest rates: %w", err)
	}
	if err := ip.validateRateTable(&t.MonthlyIncome); err != nil {
		return fmt.Errorf("monthly income rates: %w", err)
	}
	for product, table := range t.Charges {
		if err := ip.validateChargeTable(product, &table); err != nil {
			return fmt.Errorf("%s charges: %w", product, err)
		}
	}
	if err := ip.validateSchemeRules(&t.Schemes); err != nil {
		return fmt.Errorf("schemes: %w", err)
	}
	if err := ip.validateAPYMatrix(&t.APY); err != nil {
		return fmt.Errorf("apy contributions: %w", err)
	}
	return nil
}

func (ip *InputParser) validateRateTable(t *domain.RateTable) error {
	if len(t.Slabs) == 0 {
		return fmt.Errorf("at least one slab is required")
	}

	previous := 0
	for i, s := range t.Slabs {
		if s.UpperBoundDays <= previous {
			return fmt.Errorf("slab %d (%s): upper bound %d must be greater than %d", i, s.PeriodLabel, s.UpperBoundDays, previous)
		}
		previous = s.UpperBoundDays
		if err := validateSlabRates(s); err != nil {
			return fmt.Errorf("slab %d (%s): %w", i, s.PeriodLabel, err)
		}
	}

	for i, s := range t.Special {
		if s.PeriodLabel == "" {
			return fmt.Errorf("special slab %d: period label is required", i)
		}
		if err := validateSlabRates(s); err != nil {
			return fmt.Errorf("special slab %s: %w", s.PeriodLabel, err)
		}
	}
	return nil
}

func validateSlabRates(s domain.RateSlab) error {
	for _, class := range domain.CustomerClasses {
		rate, ok := s.Rate(class)
		if !ok {
			return fmt.Errorf("missing rate for %s", class)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("rate for %s must be positive", class)
		}
	}
	for class := range s.Rates {
		if !class.Valid() {
			return fmt.Errorf("unknown customer class %q", class)
		}
	}
	return nil
}

func (ip *InputParser) validateChargeTable(product domain.ProductType, t *domain.ChargeTable) error {
	if t.Product != "" && t.Product != product {
		return fmt.Errorf("product mismatch: keyed as %s, declared as %s", product, t.Product)
	}
	if len(t.Slabs) == 0 {
		return fmt.Errorf("at least one slab is required")
	}
	if t.GSTRate.LessThan(decimal.Zero) || t.GSTRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("gst rate must be between 0 and 1")
	}

	previous := decimal.Zero
	for i, s := range t.Slabs {
		if s.BaseFee.LessThan(decimal.Zero) {
			return fmt.Errorf("slab %d: base fee cannot be negative", i)
		}
		if s.UpperBoundAmount == nil {
			if i != len(t.Slabs)-1 {
				return fmt.Errorf("slab %d: only the last slab may be unbounded", i)
			}
			continue
		}
		if s.UpperBoundAmount.LessThanOrEqual(previous) {
			return fmt.Errorf("slab %d: upper bound %s must be greater than %s", i, s.UpperBoundAmount.String(), previous.String())
		}
		previous = *s.UpperBoundAmount
	}
	return nil
}

func (ip *InputParser) validateSchemeRules(r *domain.SchemeRules) error {
	for name, window := range map[string]domain.AgeRange{"pmsby": r.PMSBY, "pmjjby": r.PMJJBY, "apy": r.APY} {
		if window.Min < 0 || window.Max < window.Min {
			return fmt.Errorf("%s age range %d-%d is invalid", name, window.Min, window.Max)
		}
	}
	if r.PMSBYAnnualPremium.LessThan(decimal.Zero) {
		return fmt.Errorf("pmsby annual premium cannot be negative")
	}

	seen := make(map[int]bool)
	for i, band := range r.PMJJBYPremiums {
		if band.CoverageMonths <= 0 || band.CoverageMonths > 12 {
			return fmt.Errorf("pmjjby band %d: coverage months must be between 1 and 12", i)
		}
		for _, m := range band.EnrollmentMonths {
			if m < 1 || m > 12 {
				return fmt.Errorf("pmjjby band %d: month %d is invalid", i, m)
			}
			if seen[int(m)] {
				return fmt.Errorf("pmjjby band %d: month %s listed twice", i, m)
			}
			seen[int(m)] = true
		}
	}
	return nil
}

func (ip *InputParser) validateAPYMatrix(m *domain.APYContributionMatrix) error {
	if len(m.Buckets) == 0 {
		return fmt.Errorf("at least one age bucket is required")
	}
	if len(m.Pensions) == 0 {
		return fmt.Errorf("at least one pension target is required")
	}

	previous := -1
	for _, b := range m.Buckets {
		if b.Age <= previous {
			return fmt.Errorf("bucket ages must be strictly ascending (%d after %d)", b.Age, previous)
		}
		previous = b.Age
		for _, pension := range m.Pensions {
			if _, ok := b.Contributions[pension]; !ok {
				return fmt.Errorf("bucket %d: missing contribution for pension %d", b.Age, pension)
			}
		}
	}
	return nil
}
