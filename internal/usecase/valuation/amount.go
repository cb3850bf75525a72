package valuation

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DaysPerYear accounts for leap years
	DaysPerYear = 365.25

	// DaysPerMonth is the average month length
	DaysPerMonth = 30.44

	MonthsPerYear = 12

	secondsPerDay = 24 * 60 * 60
)

// ParseAmount converts a stored decimal string into a float64.
// Absent or malformed values yield NaN, which then propagates through the
// arithmetic instead of failing the calculation.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// parseAmountOrZero is ParseAmount with an absent value treated as 0.
// Malformed values still yield NaN.
func parseAmountOrZero(s string) float64 {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	return ParseAmount(s)
}

// ElapsedDays returns the fractional number of days from -> to.
// time.Duration saturates past ~292 years, so whole seconds and
// nanoseconds are subtracted separately.
func ElapsedDays(from, to time.Time) float64 {
	seconds := float64(to.Unix() - from.Unix())
	nanos := float64(to.Nanosecond() - from.Nanosecond())
	return seconds/secondsPerDay + nanos/(secondsPerDay*1e9)
}

// ElapsedYears returns the fractional years from -> to on a 365.25-day basis, never negative
func ElapsedYears(from, to time.Time) float64 {
	return math.Max(0, ElapsedDays(from, to)/DaysPerYear)
}

// ElapsedMonths returns the fractional months from -> to on a 30.44-day basis, never negative
func ElapsedMonths(from, to time.Time) float64 {
	return math.Max(0, ElapsedDays(from, to)/DaysPerMonth)
}
