package calculation

import (
	"testing"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundInterest(t *testing.T) {
	tests := []struct {
		name         string
		principal    int64
		rate         float64
		days         int
		wantMaturity int64
	}{
		{"one year general public", 100000, 6.05, 365, 106189},
		{"two years", 100000, 6.00, 730, 112649},
		{"leap year span", 100000, 6.00, 366, 106154},
		{"short term", 100000, 2.65, 10, 100072},
		{"staff one year", 50000, 7.05, 365, 53619},
		{"eight years", 250000, 5.85, 2920, 397849},
		{"zero rate", 100000, 0, 365, 100000},
		{"zero term", 100000, 6.05, 0, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := SpanFromDays(tt.days)
			maturity, interest, err := CompoundInterest(decimal.NewFromInt(tt.principal), decimal.NewFromFloat(tt.rate), span.TotalYears)
			require.NoError(t, err)
			assert.True(t, maturity.Equal(decimal.NewFromInt(tt.wantMaturity)), "got %s", maturity)
			assert.True(t, interest.Equal(decimal.NewFromInt(tt.wantMaturity-tt.principal)), "got %s", interest)
			assert.True(t, maturity.GreaterThanOrEqual(decimal.NewFromInt(tt.principal)))
		})
	}
}

func TestCompoundInterest_Idempotent(t *testing.T) {
	p := decimal.NewFromInt(123456)
	r := decimal.NewFromFloat(6.45)
	y := SpanFromDays(1000).TotalYears

	m1, i1, err := CompoundInterest(p, r, y)
	require.NoError(t, err)
	m2, i2, err := CompoundInterest(p, r, y)
	require.NoError(t, err)
	assert.True(t, m1.Equal(m2))
	assert.True(t, i1.Equal(i2))
}

func TestCalculateInterest_Premature(t *testing.T) {
	span := SpanFromDays(366)

	result, err := CalculateInterest(decimal.NewFromInt(100000), decimal.NewFromInt(6), span, true)
	require.NoError(t, err)

	assert.True(t, result.Premature)
	assert.True(t, result.InterestEarned.Equal(decimal.NewFromInt(6154)))
	assert.True(t, result.NetInterestAfterPenalty.Equal(decimal.NewFromInt(5109)))
	assert.True(t, result.PenaltyAmount.Equal(decimal.NewFromInt(1045)))
	assert.True(t, result.MaturityAmount.Equal(decimal.NewFromInt(105109)))
	assert.True(t, result.PenaltyAmount.GreaterThanOrEqual(decimal.Zero))
}

func TestCalculateInterest_PrematureRateBelowPenalty(t *testing.T) {
	span := SpanFromDays(366)

	result, err := CalculateInterest(decimal.NewFromInt(100000), decimal.NewFromFloat(0.5), span, true)
	require.NoError(t, err)

	assert.True(t, result.PenaltyRate.Equal(decimal.Zero), "reduced rate clamps at zero")
	assert.True(t, result.NetInterestAfterPenalty.Equal(decimal.Zero))
	assert.True(t, result.InterestEarned.Equal(decimal.NewFromInt(502)))
	assert.True(t, result.PenaltyAmount.Equal(result.InterestEarned))
	assert.True(t, result.MaturityAmount.Equal(decimal.NewFromInt(100000)))
}

func TestCalculateInterest_Invalid(t *testing.T) {
	span := SpanFromDays(365)

	_, err := CalculateInterest(decimal.NewFromInt(-5), decimal.NewFromInt(6), span, false)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = CalculateInterest(decimal.NewFromInt(1000), decimal.Zero, span, false)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	_, err = CalculateInterest(decimal.NewFromInt(1000), decimal.NewFromInt(6), domain.PeriodSpan{TotalDays: -1}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestCalculateInterest_Overflow(t *testing.T) {
	tests := []struct {
		name    string
		rate    decimal.Decimal
		span    domain.PeriodSpan
		wantErr error
	}{
		{"huge rate over one year", decimal.RequireFromString("1e300"), SpanFromDays(365), domain.ErrInvalidRate},
		{"huge rate fractional term", decimal.RequireFromString("1e300"), SpanFromDays(400), domain.ErrInvalidRate},
		{"very long term", decimal.NewFromFloat(5.75), SpanFromDays(20000 * DaysPerYear), domain.ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result *domain.CalculationResult
			var err error
			assert.NotPanics(t, func() {
				result, err = CalculateInterest(decimal.NewFromInt(100000), tt.rate, tt.span, true)
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestReducedRate(t *testing.T) {
	assert.True(t, ReducedRate(decimal.NewFromFloat(6.05)).Equal(decimal.NewFromFloat(5.05)))
	assert.True(t, ReducedRate(decimal.NewFromInt(1)).Equal(decimal.Zero))
	assert.True(t, ReducedRate(decimal.NewFromFloat(0.25)).Equal(decimal.Zero))
}
