package domain

import (
	"errors"
	"math"
)

// ErrNonFinitePeriods is returned when a raw period count is NaN or infinite
// and therefore cannot be truncated to a whole number of periods.
var ErrNonFinitePeriods = errors.New("periods must be a finite number")

// ProjectionInput holds the three scalar inputs of a compound projection
type ProjectionInput struct {
	Principal         float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"` // 5 means 5%
	Periods           int     `yaml:"periods" json:"periods"`                         // whole years
}

// NewProjectionInput builds an input from raw numbers. The period count is
// truncated toward zero to its integer part, so 2.9 becomes 2 and 0.5 becomes
// 0 (which the engine later rejects). Principal and rate are kept as given.
func NewProjectionInput(principal, annualRatePercent, periods float64) (ProjectionInput, error) {
	if math.IsNaN(periods) || math.IsInf(periods, 0) {
		return ProjectionInput{}, ErrNonFinitePeriods
	}
	whole := math.Trunc(periods)
	if whole > math.MaxInt32 {
		whole = math.MaxInt32
	}
	if whole < math.MinInt32 {
		whole = math.MinInt32
	}
	return ProjectionInput{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		Periods:           int(whole),
	}, nil
}

// PeriodRate returns the per-period growth rate as a fraction (5% -> 0.05)
func (in ProjectionInput) PeriodRate() float64 {
	return in.AnnualRatePercent / 100
}

// ProjectionRow is the state of the investment at the end of one period
type ProjectionRow struct {
	Period            int     `json:"period"`
	CumulativeAmount  float64 `json:"cumulative_amount"`
	CumulativeIncome  float64 `json:"cumulative_income"`
	IncomeRatePercent float64 `json:"income_rate_percent"`
}

// ProjectionResult is the full trajectory of one projection. Rows are in
// period order and FinalAmount equals the last row's CumulativeAmount.
type ProjectionResult struct {
	Input       ProjectionInput `json:"input"`
	FinalAmount float64         `json:"final_amount"`
	Rows        []ProjectionRow `json:"rows"`
}

// FinalIncome returns the income earned over the whole projection
func (pr *ProjectionResult) FinalIncome() float64 {
	return pr.FinalAmount - pr.Input.Principal
}

// FinalIncomeRatePercent returns the cumulative income rate of the last row
func (pr *ProjectionResult) FinalIncomeRatePercent() float64 {
	if len(pr.Rows) == 0 {
		return 0
	}
	return pr.Rows[len(pr.Rows)-1].IncomeRatePercent
}

// Row returns the row for a 1-indexed period
func (pr *ProjectionResult) Row(period int) (ProjectionRow, bool) {
	if period < 1 || period > len(pr.Rows) {
		return ProjectionRow{}, false
	}
	return pr.Rows[period-1], true
}
