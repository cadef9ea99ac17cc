package calculation

import (
	"errors"
	"fmt"
)

// Field names reported by ValidationError.
const (
	FieldPrincipal         = "principal"
	FieldAnnualRatePercent = "annual_rate_percent"
	FieldPeriods           = "periods"
)

var (
	// ErrNonPositiveInput is wrapped by every ValidationError.
	ErrNonPositiveInput = errors.New("non-positive input")
	// ErrPeriodsAboveLimit is returned when a caller-side period ceiling is exceeded.
	ErrPeriodsAboveLimit = errors.New("periods above limit")
	// ErrInvalidExpression is returned for calculator input that does not parse.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrDivisionByZero is returned when a calculator expression divides by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// ValidationError names the input field that failed the positivity check.
type ValidationError struct {
	Field string
	Value float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be a finite number greater than zero, got %v", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrNonPositiveInput }

// FailedField extracts the failing field name from err, or "" if err is not a ValidationError.
func FailedField(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
