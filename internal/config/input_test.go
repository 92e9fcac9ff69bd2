package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadTablesFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	tables, err := parser.LoadTablesFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, tables, "Should return nil tables")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadTablesFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	tables, err := NewInputParser().LoadTablesFromFile(path)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, tables)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadTablesFromFile_PartialOverride(t *testing.T) {
	path := writeFile(t, "charges.yaml", `
metadata:
  bank: "Test Bank"
charges:
  NEFT:
    product: NEFT
    gst_rate: 0.18
    slabs:
      - upper_bound: 50000
        base_fee: 1.00
      - base_fee: 10.00
`)

	tables, err := NewInputParser().LoadTablesFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Bank", tables.Metadata.Bank)
	require.Contains(t, tables.Charges, domain.NEFT)
	neft := tables.Charges[domain.NEFT]
	require.Len(t, neft.Slabs, 2)
	assert.True(t, neft.Slabs[0].BaseFee.Equal(decimal.NewFromInt(1)))
	assert.Nil(t, neft.Slabs[1].UpperBoundAmount)

	// sections left out keep the built-in values
	assert.Equal(t, DefaultInterestRates().Slabs[0].PeriodLabel, tables.InterestRates.Slabs[0].PeriodLabel)
	assert.Len(t, tables.MonthlyIncome.Slabs, 6)
	assert.Equal(t, 18, tables.Schemes.APY.Min)
	assert.Len(t, tables.APY.Buckets, 6)
}

func TestInputParser_LoadTablesFromFile_PartialSchemes(t *testing.T) {
	path := writeFile(t, "schemes.yaml", `
schemes:
  pmsby: {min: 18, max: 65}
`)

	tables, err := NewInputParser().LoadTablesFromFile(path)
	require.NoError(t, err)

	defaults := DefaultSchemeRules()
	assert.Equal(t, domain.AgeRange{Min: 18, Max: 65}, tables.Schemes.PMSBY)
	assert.Equal(t, defaults.PMJJBY, tables.Schemes.PMJJBY)
	assert.Equal(t, defaults.APY, tables.Schemes.APY)
	assert.True(t, tables.Schemes.PMSBYAnnualPremium.Equal(decimal.NewFromInt(20)))
	require.Len(t, tables.Schemes.PMJJBYPremiums, 4)
	assert.True(t, tables.Schemes.PMJJBYPremiums[0].Premium.Equal(decimal.NewFromInt(436)))
}

func TestInputParser_LoadTablesFromFile_InvalidTables(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
interest_rates:
  name: "Broken"
  slabs:
    - period: "long"
      upper_bound_days: 365
      rates: {general_public: 6, staff: 7, staff_senior_citizen: 7.5, senior_citizen: 6.5, super_senior_citizen: 6.75}
    - period: "short"
      upper_bound_days: 30
      rates: {general_public: 3, staff: 4, staff_senior_citizen: 4.5, senior_citizen: 3, super_senior_citizen: 3}
`)

	tables, err := NewInputParser().LoadTablesFromFile(path)

	assert.Nil(t, tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table validation failed")
	assert.Contains(t, err.Error(), "upper bound 30 must be greater than 365")
}

func TestInputParser_ValidateTables_Defaults(t *testing.T) {
	assert.NoError(t, NewInputParser().ValidateTables(DefaultTables()))
}

func TestInputParser_ValidateTables(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Tables)
		wantErr string
	}{
		{
			name: "missing class rate",
			mutate: func(tb *domain.Tables) {
				delete(tb.InterestRates.Slabs[3].Rates, domain.Staff)
			},
			wantErr: "missing rate for staff",
		},
		{
			name: "non-positive rate",
			mutate: func(tb *domain.Tables) {
				tb.MonthlyIncome.Slabs[0].Rates[domain.GeneralPublic] = decimal.Zero
			},
			wantErr: "rate for general_public must be positive",
		},
		{
			name: "unknown class",
			mutate: func(tb *domain.Tables) {
				tb.InterestRates.Slabs[0].Rates["nri"] = decimal.NewFromInt(5)
			},
			wantErr: "unknown customer class",
		},
		{
			name: "unlabelled special slab",
			mutate: func(tb *domain.Tables) {
				tb.InterestRates.Special[0].PeriodLabel = ""
			},
			wantErr: "period label is required",
		},
		{
			name: "unbounded charge slab in the middle",
			mutate: func(tb *domain.Tables) {
				neft := tb.Charges[domain.NEFT]
				neft.Slabs[1].UpperBoundAmount = nil
				tb.Charges[domain.NEFT] = neft
			},
			wantErr: "only the last slab may be unbounded",
		},
		{
			name: "gst rate out of range",
			mutate: func(tb *domain.Tables) {
				imps := tb.Charges[domain.IMPS]
				imps.GSTRate = decimal.NewFromInt(18)
				tb.Charges[domain.IMPS] = imps
			},
			wantErr: "gst rate must be between 0 and 1",
		},
		{
			name: "product mismatch",
			mutate: func(tb *domain.Tables) {
				imps := tb.Charges[domain.IMPS]
				imps.Product = domain.NEFT
				tb.Charges[domain.IMPS] = imps
			},
			wantErr: "product mismatch",
		},
		{
			name: "inverted age range",
			mutate: func(tb *domain.Tables) {
				tb.Schemes.APY = domain.AgeRange{Min: 40, Max: 18}
			},
			wantErr: "apy age range 40-18 is invalid",
		},
		{
			name: "repeated pmjjby month",
			mutate: func(tb *domain.Tables) {
				tb.Schemes.PMJJBYPremiums[1].EnrollmentMonths[0] = tb.Schemes.PMJJBYPremiums[0].EnrollmentMonths[0]
			},
			wantErr: "listed twice",
		},
		{
			name: "apy buckets out of order",
			mutate: func(tb *domain.Tables) {
				tb.APY.Buckets[0], tb.APY.Buckets[1] = tb.APY.Buckets[1], tb.APY.Buckets[0]
			},
			wantErr: "bucket ages must be strictly ascending",
		},
		{
			name: "apy bucket missing pension",
			mutate: func(tb *domain.Tables) {
				delete(tb.APY.Buckets[2].Contributions, 3000)
			},
			wantErr: "bucket 25: missing contribution for pension 3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := DefaultTables()
			tt.mutate(tables)

			err := NewInputParser().ValidateTables(tables)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveTables_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, SaveTables(DefaultTables(), path))

	tables, err := NewInputParser().LoadTablesFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, len(DefaultInterestRates().Slabs), len(tables.InterestRates.Slabs))
	rate, ok := tables.InterestRates.Slabs[11].Rate(domain.GeneralPublic)
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(6.05)), "got %s", rate)

	special, ok := tables.InterestRates.FindSpecial(TaxSaverLabel)
	require.True(t, ok)
	assert.Equal(t, 1825, special.UpperBoundDays)
}
