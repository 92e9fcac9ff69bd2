package calculation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Tables, "Should load built-in tables")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.NotNil(t, engine.Clock, "Should initialize clock")
	assert.NotEmpty(t, engine.Tables.InterestRates.Slabs)
	assert.NotEmpty(t, engine.Tables.MonthlyIncome.Slabs)
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// nil falls back to the no-op logger
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_CalculateDeposit(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	result, err := engine.CalculateDeposit(context.Background(), domain.DepositRequest{
		Principal: decimal.NewFromInt(100000),
		Period:    domain.ManualPeriod{Years: 1},
	})
	require.NoError(t, err)

	assert.True(t, result.MaturityAmount.Equal(decimal.NewFromInt(106189)), "got %s", result.MaturityAmount)
	assert.True(t, result.InterestEarned.Equal(decimal.NewFromInt(6189)))
	assert.True(t, result.AppliedRate.Equal(decimal.NewFromFloat(6.05)))
	assert.Equal(t, "One year only", result.RateSlab)
	assert.Equal(t, domain.GeneralPublic, result.CustomerClass, "empty class defaults to general public")
	assert.Equal(t, 365, result.TotalDays)
	assert.False(t, result.Premature)
	assert.Nil(t, result.PenaltyAmount)
	assert.NotEmpty(t, logger.messages, "Should log the selected slab")
}

func TestCalculationEngine_CalculateDeposit_CustomerClass(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateDeposit(context.Background(), domain.DepositRequest{
		Principal:     decimal.NewFromInt(100000),
		CustomerClass: domain.StaffSeniorCitizen,
		Period:        domain.ManualPeriod{Years: 1},
	})
	require.NoError(t, err)

	assert.True(t, result.AppliedRate.Equal(decimal.NewFromFloat(7.55)))
	assert.True(t, result.MaturityAmount.Equal(decimal.NewFromInt(107766)), "got %s", result.MaturityAmount)
}

func TestCalculationEngine_CalculateDeposit_Premature(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	exit := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	result, err := engine.CalculateDeposit(context.Background(), domain.DepositRequest{
		Principal: decimal.NewFromInt(100000),
		Period: domain.DatePeriod{
			Start:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Maturity:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EarlyExit: &exit,
		},
	})
	require.NoError(t, err)

	// 2024 is a leap year
	assert.Equal(t, 366, result.TotalDays)
	assert.Equal(t, "More than 1 year to less than 2 years", result.RateSlab)
	assert.True(t, result.Premature)
	assert.True(t, result.AppliedRate.Equal(decimal.NewFromInt(6)))
	assert.True(t, result.PenaltyRate.Equal(decimal.NewFromInt(5)))
	assert.True(t, result.InterestEarned.Equal(decimal.NewFromInt(6154)), "got %s", result.InterestEarned)
	require.NotNil(t, result.NetInterestAfterPenalty)
	assert.True(t, result.NetInterestAfterPenalty.Equal(decimal.NewFromInt(5109)), "got %s", result.NetInterestAfterPenalty)
	require.NotNil(t, result.PenaltyAmount)
	assert.True(t, result.PenaltyAmount.Equal(decimal.NewFromInt(1045)), "got %s", result.PenaltyAmount)
	assert.True(t, result.MaturityAmount.Equal(decimal.NewFromInt(105109)), "got %s", result.MaturityAmount)

	var sawPenalty bool
	for _, m := range logger.messages {
		if m == "INFO: premature closure: rate reduced to %s%%, penalty %s" {
			sawPenalty = true
		}
	}
	assert.True(t, sawPenalty, "Should log the premature closure")
}

func TestCalculationEngine_CalculateDeposit_Errors(t *testing.T) {
	engine := NewCalculationEngine()
	negative := decimal.NewFromInt(-1)
	huge := decimal.RequireFromString("1e300")

	tests := []struct {
		name    string
		req     domain.DepositRequest
		wantErr error
	}{
		{
			name:    "zero principal",
			req:     domain.DepositRequest{Principal: decimal.Zero, Period: domain.ManualPeriod{Years: 1}},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "empty period",
			req:     domain.DepositRequest{Principal: decimal.NewFromInt(1000), Period: domain.ManualPeriod{}},
			wantErr: domain.ErrInvalidPeriod,
		},
		{
			name:    "missing period",
			req:     domain.DepositRequest{Principal: decimal.NewFromInt(1000)},
			wantErr: domain.ErrInvalidPeriod,
		},
		{
			name: "negative override",
			req: domain.DepositRequest{
				Principal:    decimal.NewFromInt(1000),
				RateOverride: &negative,
				Period:       domain.ManualPeriod{Years: 1},
			},
			wantErr: domain.ErrInvalidRate,
		},
		{
			name: "override overflows growth factor",
			req: domain.DepositRequest{
				Principal:    decimal.NewFromInt(100000),
				RateOverride: &huge,
				Period:       domain.ManualPeriod{Years: 1},
			},
			wantErr: domain.ErrInvalidRate,
		},
		{
			name:    "term overflows growth factor",
			req:     domain.DepositRequest{Principal: decimal.NewFromInt(100000), Period: domain.ManualPeriod{Years: 20000}},
			wantErr: domain.ErrInvalidPeriod,
		},
		{
			name: "unknown customer class",
			req: domain.DepositRequest{
				Principal:     decimal.NewFromInt(1000),
				CustomerClass: domain.CustomerClass("pensioner"),
				Period:        domain.ManualPeriod{Years: 1},
			},
			wantErr: domain.ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateDeposit(context.Background(), tt.req)
			assert.Nil(t, result, "Should return nil result")
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCalculationEngine_CanceledContext(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.CalculateDeposit(ctx, domain.DepositRequest{
		Principal: decimal.NewFromInt(1000),
		Period:    domain.ManualPeriod{Years: 1},
	})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = engine.CalculateCharges(ctx, domain.ChargeRequest{Product: domain.NEFT, Amount: decimal.NewFromInt(1000)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculationEngine_CalculateMonthlyIncome(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateMonthlyIncome(context.Background(), domain.MonthlyIncomeRequest{
		Principal: decimal.NewFromInt(100000),
		Period:    domain.ManualPeriod{Years: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "504.17", result.MonthlyIncome.StringFixed(2))
	assert.Equal(t, 12, result.Months)
	assert.Equal(t, "6050.00", result.TotalIncome.StringFixed(2))
	assert.True(t, result.PrincipalReturned.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, "One year only", result.RateSlab)
}

func TestCalculationEngine_CalculateMonthlyIncome_ShortTermUsesFirstSlab(t *testing.T) {
	engine := NewCalculationEngine()

	// the monthly income card starts at one year, so shorter terms take its first slab
	result, err := engine.CalculateMonthlyIncome(context.Background(), domain.MonthlyIncomeRequest{
		Principal: decimal.NewFromInt(100000),
		Period:    domain.ManualPeriod{Months: 6},
	})
	require.NoError(t, err)

	assert.True(t, result.AppliedRate.Equal(decimal.NewFromFloat(6.05)))
	assert.Equal(t, 6, result.Months)
}

func TestCalculationEngine_CalculateCharges(t *testing.T) {
	engine := NewCalculationEngine()

	result, err := engine.CalculateCharges(context.Background(), domain.ChargeRequest{
		Product: domain.IMPS,
		Amount:  decimal.NewFromInt(150000),
	})
	require.NoError(t, err)
	assert.Equal(t, "17.70", result.TotalCharge.StringFixed(2))

	_, err = engine.CalculateCharges(context.Background(), domain.ChargeRequest{
		Product: domain.ProductType("RTGS"),
		Amount:  decimal.NewFromInt(150000),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no charge table for product")
}

func TestCalculationEngine_CheckEligibility_UsesClock(t *testing.T) {
	engine := NewCalculationEngine()
	engine.Clock = func() time.Time { return time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC) }

	result, err := engine.CheckEligibility(context.Background(), domain.EligibilityRequest{
		BirthDate: time.Date(2000, 10, 18, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 25, result.Age)
	assert.True(t, result.EligiblePMSBY)
	assert.True(t, result.EligiblePMJJBY)
	assert.True(t, result.EligibleAPY)
	require.NotEmpty(t, result.APYContributions)
	assert.Equal(t, domain.APYContribution{Pension: 1000, Monthly: 76}, result.APYContributions[0])
	require.NotNil(t, result.PMJJBYPremium)
	assert.True(t, result.PMJJBYPremium.Premium.Equal(decimal.NewFromInt(342)))
}

func TestCalculationEngine_TaxSaverRate(t *testing.T) {
	engine := NewCalculationEngine()

	rate, err := engine.TaxSaverRate(domain.Staff)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(6.85)))

	rate, err = engine.TaxSaverRate("")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(5.85)))
}

// TestLogger records log formats for assertions
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
