package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgeRange is an inclusive eligibility window in completed years
type AgeRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether age is inside the window
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// PMJJBYPremiumBand is the pro-rata premium for enrolling in the given months
type PMJJBYPremiumBand struct {
	EnrollmentMonths []time.Month    `yaml:"enrollment_months" json:"enrollment_months"`
	CoverageMonths   int             `yaml:"coverage_months" json:"coverage_months"`
	Premium          decimal.Decimal `yaml:"premium" json:"premium"`
}

// Covers reports whether enrolling in month m falls in this band
func (b PMJJBYPremiumBand) Covers(m time.Month) bool {
	for _, em := range b.EnrollmentMonths {
		if em == m {
			return true
		}
	}
	return false
}

// SchemeRules are the age windows and premiums of the government schemes
type SchemeRules struct {
	PMSBY              AgeRange            `yaml:"pmsby" json:"pmsby"`
	PMJJBY             AgeRange            `yaml:"pmjjby" json:"pmjjby"`
	APY                AgeRange            `yaml:"apy" json:"apy"`
	PMSBYAnnualPremium decimal.Decimal     `yaml:"pmsby_annual_premium" json:"pmsby_annual_premium"`
	PMJJBYPremiums     []PMJJBYPremiumBand `yaml:"pmjjby_premiums" json:"pmjjby_premiums"`
}

// APYBucket holds monthly contributions, keyed by monthly pension target,
// for subscribers joining at Age or older (up to the next bucket).
type APYBucket struct {
	Age           int         `yaml:"age" json:"age"`
	Contributions map[int]int `yaml:"contributions" json:"contributions"`
}

// APYContributionMatrix is the Atal Pension Yojana contribution chart.
// Buckets are ascending by Age.
type APYContributionMatrix struct {
	Pensions []int       `yaml:"pensions" json:"pensions"`
	Buckets  []APYBucket `yaml:"buckets" json:"buckets"`
}

// APYContribution is the monthly contribution needed for a pension target
type APYContribution struct {
	Pension int `json:"pension"`
	Monthly int `json:"monthly"`
}

// EligibilityRequest asks for scheme eligibility. AsOf defaults to today.
type EligibilityRequest struct {
	BirthDate time.Time `yaml:"birth_date" json:"birth_date"`
	AsOf      time.Time `yaml:"as_of,omitempty" json:"as_of,omitempty"`
}

// AgeEligibility is the outcome of a scheme eligibility check
type AgeEligibility struct {
	BirthDate          time.Time          `json:"birth_date"`
	AsOf               time.Time          `json:"as_of"`
	Age                int                `json:"age"`
	EligiblePMSBY      bool               `json:"eligible_pmsby"`
	EligiblePMJJBY     bool               `json:"eligible_pmjjby"`
	EligibleAPY        bool               `json:"eligible_apy"`
	APYBucketAge       int                `json:"apy_bucket_age,omitempty"`
	APYContributions   []APYContribution  `json:"apy_contributions,omitempty"`
	PMSBYAnnualPremium *decimal.Decimal   `json:"pmsby_annual_premium,omitempty"`
	PMJJBYPremium      *PMJJBYPremiumBand `json:"pmjjby_premium,omitempty"`
}
