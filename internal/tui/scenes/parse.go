package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fdcalc/internal/domain"
)

// parseAmount reads a rupee amount, allowing digit-group commas
func parseAmount(label, s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", domain.ErrInvalidAmount, strings.ToLower(label))
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidAmount, strings.ToLower(label), s)
	}
	return d, nil
}

// parseOptionalRate returns nil for an empty rate
func parseOptionalRate(s string) (*decimal.Decimal, error) {
	clean := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if clean == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: custom rate %q is not a number", domain.ErrInvalidRate, s)
	}
	return &d, nil
}

// parseCount reads a non-negative whole number, empty meaning zero
func parseCount(label, s string) (int, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a whole number", domain.ErrInvalidPeriod, strings.ToLower(label), s)
	}
	return n, nil
}

// classOptions lists customer classes by label for choice fields
func classOptions() []string {
	labels := make([]string, len(domain.CustomerClasses))
	for i, c := range domain.CustomerClasses {
		labels[i] = c.Label()
	}
	return labels
}
