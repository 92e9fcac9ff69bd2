package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CustomRateLabel is reported as the slab when a caller supplies the rate
const CustomRateLabel = "Custom rate"

// SelectRate returns the annual percentage rate for a term of totalDays.
//
// The first slab whose upper bound is at least totalDays applies; terms longer
// than the last bound take the last slab. A non-nil override skips the lookup
// and must be positive.
func SelectRate(table domain.RateTable, totalDays int, class domain.CustomerClass, override *decimal.Decimal) (decimal.Decimal, string, error) {
	if override != nil {
		if override.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, "", fmt.Errorf("%w: custom rate must be greater than zero, got %s", domain.ErrInvalidRate, override.String())
		}
		return *override, CustomRateLabel, nil
	}

	if totalDays < 0 {
		return decimal.Zero, "", fmt.Errorf("%w: %d days", domain.ErrInvalidPeriod, totalDays)
	}
	if len(table.Slabs) == 0 {
		return decimal.Zero, "", fmt.Errorf("%w: rate table %q has no slabs", domain.ErrInvalidRate, table.Name)
	}

	slab := table.Slabs[len(table.Slabs)-1]
	for _, s := range table.Slabs {
		if totalDays <= s.UpperBoundDays {
			slab = s
			break
		}
	}

	rate, ok := slab.Rate(class)
	if !ok {
		return decimal.Zero, "", fmt.Errorf("%w: no %s rate for customer class %q", domain.ErrInvalidRate, slab.PeriodLabel, class)
	}
	return rate, slab.PeriodLabel, nil
}

// SpecialRate returns the rate a special product slab quotes for the class
func SpecialRate(table domain.RateTable, label string, class domain.CustomerClass) (decimal.Decimal, error) {
	slab, ok := table.FindSpecial(label)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: rate table %q has no %q slab", domain.ErrInvalidRate, table.Name, label)
	}
	rate, ok := slab.Rate(class)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no %s rate for customer class %q", domain.ErrInvalidRate, label, class)
	}
	return rate, nil
}

// BestRates finds the highest tenor rate per customer class. Ties keep the
// shorter tenor.
func BestRates(table domain.RateTable) []domain.BestRate {
	best := make([]domain.BestRate, 0, len(domain.CustomerClasses))
	for _, class := range domain.CustomerClasses {
		var top *domain.BestRate
		for _, s := range table.Slabs {
			rate, ok := s.Rate(class)
			if !ok {
				continue
			}
			if top == nil || rate.GreaterThan(top.Rate) {
				top = &domain.BestRate{Class: class, Rate: rate, PeriodLabel: s.PeriodLabel}
			}
		}
		if top != nil {
			best = append(best, *top)
		}
	}
	return best
}
