package calculation

import (
	"testing"
	"time"

	"github.com/rgehrsitz/fdcalc/internal/config"
	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedYears(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		asOf  time.Time
		want  int
	}{
		{"day before birthday", date(2000, 5, 15), date(2025, 5, 14), 24},
		{"on birthday", date(2000, 5, 15), date(2025, 5, 15), 25},
		{"month before birthday", date(2000, 5, 15), date(2025, 4, 30), 24},
		{"leap day birthday in common year", date(2004, 2, 29), date(2025, 2, 28), 20},
		{"leap day birthday after", date(2004, 2, 29), date(2025, 3, 1), 21},
		{"born today", date(2025, 5, 15), date(2025, 5, 15), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletedYears(tt.birth, tt.asOf))
		})
	}
}

func TestCheckEligibility(t *testing.T) {
	rules := config.DefaultSchemeRules()
	matrix := config.DefaultAPYContributions()
	asOf := date(2025, 10, 18)

	tests := []struct {
		name       string
		age        int
		wantPMSBY  bool
		wantPMJJBY bool
		wantAPY    bool
		wantBucket int
	}{
		{"under age", 17, false, false, false, 0},
		{"youngest", 18, true, true, true, 18},
		{"between buckets", 24, true, true, true, 20},
		{"bucket edge", 25, true, true, true, 25},
		{"apy upper bound", 40, true, true, true, 40},
		{"past apy", 41, true, true, false, 0},
		{"pmjjby upper bound", 50, true, true, false, 0},
		{"pmsby only", 51, true, false, false, 0},
		{"pmsby upper bound", 70, true, false, false, 0},
		{"over age", 71, false, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birth := asOf.AddDate(-tt.age, 0, 0)
			result, err := CheckEligibility(rules, matrix, birth, asOf)
			require.NoError(t, err)

			assert.Equal(t, tt.age, result.Age)
			assert.Equal(t, tt.wantPMSBY, result.EligiblePMSBY, "pmsby")
			assert.Equal(t, tt.wantPMJJBY, result.EligiblePMJJBY, "pmjjby")
			assert.Equal(t, tt.wantAPY, result.EligibleAPY, "apy")
			assert.Equal(t, tt.wantBucket, result.APYBucketAge)

			if tt.wantAPY {
				assert.Len(t, result.APYContributions, len(matrix.Pensions))
			} else {
				assert.Empty(t, result.APYContributions)
			}
			assert.Equal(t, tt.wantPMSBY, result.PMSBYAnnualPremium != nil)
			assert.Equal(t, tt.wantPMJJBY, result.PMJJBYPremium != nil)
		})
	}
}

func TestCheckEligibility_Contributions(t *testing.T) {
	result, err := CheckEligibility(config.DefaultSchemeRules(), config.DefaultAPYContributions(), date(2000, 1, 1), date(2025, 6, 1))
	require.NoError(t, err)

	assert.Equal(t, []domain.APYContribution{
		{Pension: 1000, Monthly: 76},
		{Pension: 2000, Monthly: 151},
		{Pension: 3000, Monthly: 226},
		{Pension: 4000, Monthly: 301},
		{Pension: 5000, Monthly: 376},
	}, result.APYContributions)

	require.NotNil(t, result.PMSBYAnnualPremium)
	assert.True(t, result.PMSBYAnnualPremium.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, result.PMJJBYPremium)
	assert.Equal(t, 12, result.PMJJBYPremium.CoverageMonths)
	assert.True(t, result.PMJJBYPremium.Premium.Equal(decimal.NewFromInt(436)))
}

func TestCheckEligibility_PMJJBYPremiumByMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  int64
	}{
		{time.June, 436},
		{time.August, 436},
		{time.September, 342},
		{time.November, 342},
		{time.December, 228},
		{time.February, 228},
		{time.March, 114},
		{time.May, 114},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			result, err := CheckEligibility(config.DefaultSchemeRules(), config.DefaultAPYContributions(), date(1990, 1, 1), date(2025, tt.month, 10))
			require.NoError(t, err)
			require.NotNil(t, result.PMJJBYPremium)
			assert.True(t, result.PMJJBYPremium.Premium.Equal(decimal.NewFromInt(tt.want)))
		})
	}
}

func TestCheckEligibility_InvalidDates(t *testing.T) {
	rules := config.DefaultSchemeRules()
	matrix := config.DefaultAPYContributions()

	_, err := CheckEligibility(rules, matrix, date(2030, 1, 1), date(2025, 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = CheckEligibility(rules, matrix, time.Time{}, date(2025, 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestAPYBucketFor(t *testing.T) {
	matrix := domain.APYContributionMatrix{
		Pensions: []int{1000},
		Buckets: []domain.APYBucket{
			{Age: 20, Contributions: map[int]int{1000: 50}},
			{Age: 30, Contributions: map[int]int{1000: 116}},
		},
	}

	b, ok := APYBucketFor(matrix, 18)
	require.True(t, ok)
	assert.Equal(t, 20, b.Age, "falls back to first bucket")

	b, _ = APYBucketFor(matrix, 29)
	assert.Equal(t, 20, b.Age)

	b, _ = APYBucketFor(matrix, 35)
	assert.Equal(t, 30, b.Age)

	_, ok = APYBucketFor(domain.APYContributionMatrix{}, 25)
	assert.False(t, ok)
}
