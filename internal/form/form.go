// Package form turns raw calculator text fields into projection inputs.
//
// The principal and period fields only accept digits: every other rune
// (thousands separators, currency symbols, stray letters) is dropped before
// parsing, so "1,000,000원" reads as 1000000 and "2.5" reads as 25. The rate
// field accepts a decimal number.
package form

import (
	"strconv"
	"strings"

	"github.com/isday/compound-calculator/internal/domain"
)

// Fields holds the three parsed calculator inputs
type Fields struct {
	Principal         float64
	AnnualRatePercent float64
	Periods           float64
}

// Parse reads the three raw text fields. Unparseable values become 0, which
// Ready reports as unusable.
func Parse(principal, rate, periods string) Fields {
	return Fields{
		Principal:         ParseAmount(principal),
		AnnualRatePercent: ParseRate(rate),
		Periods:           ParsePeriods(periods),
	}
}

// Ready is the pre-flight gate: all three fields present and positive.
func (f Fields) Ready() bool {
	return f.Principal > 0 && f.AnnualRatePercent > 0 && f.Periods > 0
}

// Input converts the fields into a ProjectionInput (periods truncated).
func (f Fields) Input() (domain.ProjectionInput, error) {
	return domain.NewProjectionInput(f.Principal, f.AnnualRatePercent, f.Periods)
}

// ParseAmount keeps only ASCII digits and parses the result.
func ParseAmount(raw string) float64 {
	return parseDigits(raw)
}

// ParsePeriods keeps only ASCII digits and parses the result.
func ParsePeriods(raw string) float64 {
	return parseDigits(raw)
}

// ParseRate parses a decimal rate such as "5" or "3.75". Grouping commas,
// a trailing % and surrounding spaces are ignored.
func ParseRate(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDigits(raw string) float64 {
	digits := StripNonDigits(raw)
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return v
}

// StripNonDigits drops every rune that is not an ASCII digit.
func StripNonDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}
