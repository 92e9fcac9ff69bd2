package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/fdcalc/internal/domain"
)

// CompletedYears returns the age in whole years on asOf
func CompletedYears(birthDate, asOf time.Time) int {
	years := asOf.Year() - birthDate.Year()
	if asOf.Month() < birthDate.Month() || (asOf.Month() == birthDate.Month() && asOf.Day() < birthDate.Day()) {
		years--
	}
	return years
}

// CheckEligibility evaluates PMSBY, PMJJBY and APY eligibility on asOf.
// Eligible APY subscribers get the contribution schedule of the largest
// bucket not above their age.
func CheckEligibility(rules domain.SchemeRules, matrix domain.APYContributionMatrix, birthDate, asOf time.Time) (*domain.AgeEligibility, error) {
	if birthDate.IsZero() {
		return nil, fmt.Errorf("%w: birth date is required", domain.ErrInvalidDate)
	}
	if birthDate.After(asOf) {
		return nil, fmt.Errorf("%w: birth date %s is after %s",
			domain.ErrInvalidDate, birthDate.Format(domain.DateLayout), asOf.Format(domain.DateLayout))
	}

	age := CompletedYears(birthDate, asOf)
	result := &domain.AgeEligibility{
		BirthDate:      birthDate,
		AsOf:           asOf,
		Age:            age,
		EligiblePMSBY:  rules.PMSBY.Contains(age),
		EligiblePMJJBY: rules.PMJJBY.Contains(age),
		EligibleAPY:    rules.APY.Contains(age),
	}

	if result.EligiblePMSBY {
		premium := rules.PMSBYAnnualPremium
		result.PMSBYAnnualPremium = &premium
	}

	if result.EligiblePMJJBY {
		for _, band := range rules.PMJJBYPremiums {
			if band.Covers(asOf.Month()) {
				b := band
				result.PMJJBYPremium = &b
				break
			}
		}
	}

	if result.EligibleAPY {
		bucket, ok := APYBucketFor(matrix, age)
		if ok {
			result.APYBucketAge = bucket.Age
			result.APYContributions = make([]domain.APYContribution, 0, len(matrix.Pensions))
			for _, pension := range matrix.Pensions {
				result.APYContributions = append(result.APYContributions, domain.APYContribution{
					Pension: pension,
					Monthly: bucket.Contributions[pension],
				})
			}
		}
	}

	return result, nil
}

// APYBucketFor returns the largest bucket whose age does not exceed age,
// falling back to the first bucket
func APYBucketFor(matrix domain.APYContributionMatrix, age int) (domain.APYBucket, bool) {
	if len(matrix.Buckets) == 0 {
		return domain.APYBucket{}, false
	}
	bucket := matrix.Buckets[0]
	for _, b := range matrix.Buckets {
		if b.Age <= age {
			bucket = b
		}
	}
	return bucket, true
}
