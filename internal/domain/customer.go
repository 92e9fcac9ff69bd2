package domain

import (
	"fmt"
	"strings"
)

// CustomerClass identifies the depositor category a rate is quoted for
type CustomerClass string

const (
	GeneralPublic      CustomerClass = "general_public"
	Staff              CustomerClass = "staff"
	StaffSeniorCitizen CustomerClass = "staff_senior_citizen"
	SeniorCitizen      CustomerClass = "senior_citizen"
	SuperSeniorCitizen CustomerClass = "super_senior_citizen"
)

// CustomerClasses lists every class in display order
var CustomerClasses = []CustomerClass{
	GeneralPublic,
	Staff,
	StaffSeniorCitizen,
	SeniorCitizen,
	SuperSeniorCitizen,
}

// Label returns the human-readable name of the class
func (c CustomerClass) Label() string {
	switch c {
	case GeneralPublic:
		return "General Public"
	case Staff:
		return "Staff"
	case StaffSeniorCitizen:
		return "Staff Senior Citizens"
	case SeniorCitizen:
		return "Senior Citizens"
	case SuperSeniorCitizen:
		return "Super Senior Citizens"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known classes
func (c CustomerClass) Valid() bool {
	for _, known := range CustomerClasses {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCustomerClass accepts the canonical key plus a few short aliases
// (general, senior, super-senior, staff-senior).
func ParseCustomerClass(s string) (CustomerClass, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	switch key {
	case "", "general", "general_public", "public":
		return GeneralPublic, nil
	case "staff":
		return Staff, nil
	case "staff_senior", "staff_senior_citizen", "staff_senior_citizens":
		return StaffSeniorCitizen, nil
	case "senior", "senior_citizen", "senior_citizens":
		return SeniorCitizen, nil
	case "super_senior", "super_senior_citizen", "super_senior_citizens":
		return SuperSeniorCitizen, nil
	}
	return "", fmt.Errorf("unknown customer class %q", s)
}
