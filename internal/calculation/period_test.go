package calculation

import (
	"testing"
	"time"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		period    domain.Period
		wantDays  int
		wantYears string
	}{
		{"one year", domain.ManualPeriod{Years: 1}, 365, "1.0000"},
		{"mixed components", domain.ManualPeriod{Years: 1, Months: 6, Days: 10}, 555, "1.5205"},
		{"days only", domain.ManualPeriod{Days: 7}, 7, "0.0192"},
		{"pointer manual", &domain.ManualPeriod{Months: 3}, 90, "0.2466"},
		{"dates", domain.DatePeriod{Start: date(2024, 1, 1), Maturity: date(2025, 1, 1)}, 366, "1.0027"},
		{
			"early exit shortens term",
			domain.DatePeriod{Start: date(2024, 1, 1), Maturity: date(2026, 1, 1), EarlyExit: timePtr(date(2024, 7, 1))},
			182, "0.4986",
		},
		{"pointer dates", &domain.DatePeriod{Start: date(2025, 3, 1), Maturity: date(2025, 3, 31)}, 30, "0.0822"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := ResolvePeriod(tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, span.TotalDays)
			assert.Equal(t, tt.wantYears, span.TotalYears.StringFixed(4))
		})
	}
}

func TestResolvePeriod_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		period domain.Period
	}{
		{"nil", nil},
		{"all zero", domain.ManualPeriod{}},
		{"negative months", domain.ManualPeriod{Years: 1, Months: -1}},
		{"nil pointer", (*domain.ManualPeriod)(nil)},
		{"missing start", domain.DatePeriod{Maturity: date(2025, 1, 1)}},
		{"maturity before start", domain.DatePeriod{Start: date(2025, 1, 1), Maturity: date(2024, 1, 1)}},
		{"maturity equals start", domain.DatePeriod{Start: date(2025, 1, 1), Maturity: date(2025, 1, 1)}},
		{
			"early exit after maturity",
			domain.DatePeriod{Start: date(2024, 1, 1), Maturity: date(2025, 1, 1), EarlyExit: timePtr(date(2025, 2, 1))},
		},
		{
			"early exit on start",
			domain.DatePeriod{Start: date(2024, 1, 1), Maturity: date(2025, 1, 1), EarlyExit: timePtr(date(2024, 1, 1))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.period)
			assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
		})
	}
}
