package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a requested deposit term. It is either a ManualPeriod or a
// DatePeriod.
type Period interface {
	isPeriod()
}

// ManualPeriod is a term entered as years, months and days. Years count as
// 365 days and months as 30 days.
type ManualPeriod struct {
	Years  int `yaml:"years" json:"years"`
	Months int `yaml:"months" json:"months"`
	Days   int `yaml:"days" json:"days"`
}

func (ManualPeriod) isPeriod() {}

// DatePeriod is a term between a start and a maturity date. EarlyExit, when
// set, is the premature closure date and ends the term instead of Maturity.
type DatePeriod struct {
	Start     time.Time  `yaml:"start" json:"start"`
	Maturity  time.Time  `yaml:"maturity" json:"maturity"`
	EarlyExit *time.Time `yaml:"early_exit,omitempty" json:"early_exit,omitempty"`
}

func (DatePeriod) isPeriod() {}

// IsPremature reports whether the deposit is closed before maturity
func (p DatePeriod) IsPremature() bool {
	return p.EarlyExit != nil
}

// PeriodSpan is a resolved term
type PeriodSpan struct {
	TotalDays  int             `json:"total_days"`
	TotalYears decimal.Decimal `json:"total_years"`
}
