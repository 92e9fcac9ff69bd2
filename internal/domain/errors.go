package domain

import "errors"

// Validation failures returned by the calculators. Callers match them with
// errors.Is; the engines wrap them with the offending value.
var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidRate   = errors.New("invalid interest rate")
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidDate   = errors.New("invalid date")
)
