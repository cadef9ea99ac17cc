package calculation

import (
	"math"

	"github.com/isday/compound-calculator/internal/domain"
)

// Project computes the annually compounded trajectory of an investment.
//
// The input is validated first: principal, rate and periods must all be
// finite and strictly positive, checked in that order. On failure a
// *ValidationError wrapping ErrNonPositiveInput is returned and no rows are
// produced. Values are never rounded here; rounding is a display concern.
//
// Project reads and writes no shared state and is safe for concurrent use.
func Project(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	r := input.PeriodRate()
	running := input.Principal
	rows := make([]domain.ProjectionRow, 0, input.Periods)

	for period := 1; period <= input.Periods; period++ {
		running = running * (1 + r)
		income := running - input.Principal
		rows = append(rows, domain.ProjectionRow{
			Period:            period,
			CumulativeAmount:  running,
			CumulativeIncome:  income,
			IncomeRatePercent: (income / input.Principal) * 100,
		})
	}

	return &domain.ProjectionResult{
		Input:       input,
		FinalAmount: running,
		Rows:        rows,
	}, nil
}

// ProjectValues is the raw-number entry point used by form and API callers.
// A fractional period count is truncated to its integer part before
// validation; a non-finite one is reported as a periods ValidationError.
func ProjectValues(principal, annualRatePercent, periods float64) (*domain.ProjectionResult, error) {
	input, err := inputFromValues(principal, annualRatePercent, periods)
	if err != nil {
		return nil, err
	}
	return Project(input)
}

// inputFromValues truncates periods. A non-finite period count is only
// reported once principal and rate have passed, keeping the field order.
func inputFromValues(principal, annualRatePercent, periods float64) (domain.ProjectionInput, error) {
	input, err := domain.NewProjectionInput(principal, annualRatePercent, periods)
	if err == nil {
		return input, nil
	}
	if !isPositiveFinite(principal) {
		return domain.ProjectionInput{}, &ValidationError{Field: FieldPrincipal, Value: principal}
	}
	if !isPositiveFinite(annualRatePercent) {
		return domain.ProjectionInput{}, &ValidationError{Field: FieldAnnualRatePercent, Value: annualRatePercent}
	}
	return domain.ProjectionInput{}, &ValidationError{Field: FieldPeriods, Value: periods}
}

func validateInput(input domain.ProjectionInput) error {
	if !isPositiveFinite(input.Principal) {
		return &ValidationError{Field: FieldPrincipal, Value: input.Principal}
	}
	if !isPositiveFinite(input.AnnualRatePercent) {
		return &ValidationError{Field: FieldAnnualRatePercent, Value: input.AnnualRatePercent}
	}
	if input.Periods <= 0 {
		return &ValidationError{Field: FieldPeriods, Value: float64(input.Periods)}
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
