package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomerClass(t *testing.T) {
	tests := []struct {
		input   string
		want    CustomerClass
		wantErr bool
	}{
		{"", GeneralPublic, false},
		{"general", GeneralPublic, false},
		{"General Public", GeneralPublic, false},
		{"staff", Staff, false},
		{"staff-senior", StaffSeniorCitizen, false},
		{"senior", SeniorCitizen, false},
		{"Senior Citizens", SeniorCitizen, false},
		{"super_senior_citizen", SuperSeniorCitizen, false},
		{"  SUPER-SENIOR ", SuperSeniorCitizen, false},
		{"pensioner", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCustomerClass(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestCustomerClass_Label(t *testing.T) {
	assert.Equal(t, "Staff Senior Citizens", StaffSeniorCitizen.Label())
	assert.Equal(t, "other", CustomerClass("other").Label())
	assert.False(t, CustomerClass("other").Valid())
}

func TestParseProductType(t *testing.T) {
	p, err := ParseProductType(" neft ")
	require.NoError(t, err)
	assert.Equal(t, NEFT, p)

	p, err = ParseProductType("IMPS")
	require.NoError(t, err)
	assert.Equal(t, IMPS, p)

	_, err = ParseProductType("upi")
	assert.Error(t, err)
}

func TestChargeSlab_Covers(t *testing.T) {
	bound := decimal.NewFromInt(10000)
	bounded := ChargeSlab{UpperBoundAmount: &bound}
	open := ChargeSlab{}

	assert.True(t, bounded.Covers(decimal.NewFromInt(10000)))
	assert.False(t, bounded.Covers(decimal.NewFromFloat(10000.01)))
	assert.True(t, open.Covers(decimal.NewFromInt(1_000_000_000)))
}

func TestAgeRange_Contains(t *testing.T) {
	r := AgeRange{Min: 18, Max: 40}
	assert.False(t, r.Contains(17))
	assert.True(t, r.Contains(18))
	assert.True(t, r.Contains(40))
	assert.False(t, r.Contains(41))
}

func TestPMJJBYPremiumBand_Covers(t *testing.T) {
	band := PMJJBYPremiumBand{EnrollmentMonths: []time.Month{time.December, time.January, time.February}}
	assert.True(t, band.Covers(time.January))
	assert.False(t, band.Covers(time.March))
}

func TestRateTable_FindSpecial(t *testing.T) {
	table := RateTable{Special: []RateSlab{{PeriodLabel: "Tax Saver", UpperBoundDays: 1825}}}

	s, ok := table.FindSpecial("Tax Saver")
	require.True(t, ok)
	assert.Equal(t, 1825, s.UpperBoundDays)

	_, ok = table.FindSpecial("Recurring")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2023-02-29", "29/02/2024"} {
		_, err := ParseDate(bad)
		assert.True(t, errors.Is(err, ErrInvalidDate), "%q: %v", bad, err)
	}
}

func TestDatePeriod_IsPremature(t *testing.T) {
	exit := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, DatePeriod{}.IsPremature())
	assert.True(t, DatePeriod{EarlyExit: &exit}.IsPremature())
}
