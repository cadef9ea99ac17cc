package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isday/compound-calculator/internal/api/models"
	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/i18n"
	"github.com/isday/compound-calculator/internal/metrics"
	"github.com/isday/compound-calculator/internal/output"
)

// Error codes returned in models.ErrorDetail.Code
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeNonPositiveInput  = "NON_POSITIVE_INPUT"
	CodePeriodsAboveLimit = "PERIODS_ABOVE_LIMIT"
	CodeInvalidExpression = "INVALID_EXPRESSION"
	CodeDivisionByZero    = "DIVISION_BY_ZERO"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeExportFailed      = "EXPORT_FAILED"
	CodeInternalError     = "INTERNAL_ERROR"
)

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    CodeInvalidRequest,
			Message: err.Error(),
		},
	})
}

// respondError maps engine and output errors onto the error envelope.
// limit is the period ceiling quoted in PERIODS_ABOVE_LIMIT messages.
func respondError(c *gin.Context, l *i18n.Localizer, err error, limit int) {
	var ve *calculation.ValidationError
	status := http.StatusBadRequest
	detail := models.ErrorDetail{
		Message: err.Error(),
		Details: map[string]interface{}{"reason": err.Error()},
	}

	switch {
	case errors.As(err, &ve):
		metrics.IncValidationError(ve.Field)
		detail.Code = CodeNonPositiveInput
		detail.Message = l.T("error.invalid_input")
		detail.Field = ve.Field
	case errors.Is(err, calculation.ErrPeriodsAboveLimit):
		detail.Code = CodePeriodsAboveLimit
		detail.Message = l.T("error.periods_above_limit", limit)
		detail.Field = calculation.FieldPeriods
		detail.Details["max_periods"] = limit
	case errors.Is(err, calculation.ErrDivisionByZero):
		detail.Code = CodeDivisionByZero
		detail.Message = l.T("error.invalid_expression")
	case errors.Is(err, calculation.ErrInvalidExpression):
		detail.Code = CodeInvalidExpression
		detail.Message = l.T("error.invalid_expression")
	case errors.Is(err, output.ErrUnsupportedFormat):
		detail.Code = CodeUnsupportedFormat
	default:
		status = http.StatusInternalServerError
		detail.Code = CodeInternalError
		detail.Message = "An unexpected error occurred"
	}

	c.JSON(status, models.ErrorResponse{Error: detail})
}
