package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// DaysPerYear and DaysPerMonth are the fixed conventions used for manual
	// periods and for converting days to years
	DaysPerYear  = 365
	DaysPerMonth = 30
)

var daysPerYear = decimal.NewFromInt(DaysPerYear)

// ResolvePeriod converts a requested term into a day count and a fractional
// year count (days / 365)
func ResolvePeriod(p domain.Period) (domain.PeriodSpan, error) {
	var days int
	var err error

	switch period := p.(type) {
	case domain.ManualPeriod:
		days, err = manualDays(period)
	case *domain.ManualPeriod:
		if period == nil {
			return domain.PeriodSpan{}, fmt.Errorf("%w: period is required", domain.ErrInvalidPeriod)
		}
		days, err = manualDays(*period)
	case domain.DatePeriod:
		days, err = dateDays(period)
	case *domain.DatePeriod:
		if period == nil {
			return domain.PeriodSpan{}, fmt.Errorf("%w: period is required", domain.ErrInvalidPeriod)
		}
		days, err = dateDays(*period)
	default:
		return domain.PeriodSpan{}, fmt.Errorf("%w: period is required", domain.ErrInvalidPeriod)
	}
	if err != nil {
		return domain.PeriodSpan{}, err
	}

	return SpanFromDays(days), nil
}

// SpanFromDays builds a span for a known day count
func SpanFromDays(days int) domain.PeriodSpan {
	return domain.PeriodSpan{
		TotalDays:  days,
		TotalYears: decimal.NewFromInt(int64(days)).Div(daysPerYear),
	}
}

func manualDays(p domain.ManualPeriod) (int, error) {
	if p.Years < 0 || p.Months < 0 || p.Days < 0 {
		return 0, fmt.Errorf("%w: period values cannot be negative", domain.ErrInvalidPeriod)
	}
	if p.Years == 0 && p.Months == 0 && p.Days == 0 {
		return 0, fmt.Errorf("%w: enter at least one of years, months or days", domain.ErrInvalidPeriod)
	}
	return p.Years*DaysPerYear + p.Months*DaysPerMonth + p.Days, nil
}

func dateDays(p domain.DatePeriod) (int, error) {
	if p.Start.IsZero() || p.Maturity.IsZero() {
		return 0, fmt.Errorf("%w: start and maturity dates are required", domain.ErrInvalidPeriod)
	}
	if !p.Maturity.After(p.Start) {
		return 0, fmt.Errorf("%w: maturity date %s must be after start date %s",
			domain.ErrInvalidPeriod, p.Maturity.Format(domain.DateLayout), p.Start.Format(domain.DateLayout))
	}

	end := p.Maturity
	if p.EarlyExit != nil {
		exit := *p.EarlyExit
		if !exit.After(p.Start) || !exit.Before(p.Maturity) {
			return 0, fmt.Errorf("%w: premature closure date %s must be between start and maturity dates",
				domain.ErrInvalidPeriod, exit.Format(domain.DateLayout))
		}
		end = exit
	}

	return int(math.Round(end.Sub(p.Start).Hours() / 24)), nil
}
