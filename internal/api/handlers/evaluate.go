package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/isday/compound-calculator/internal/api/models"
	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/metrics"
)

// EvaluateHandler serves the general calculator
type EvaluateHandler struct {
	lang *LanguageHandler
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(lang *LanguageHandler) *EvaluateHandler {
	return &EvaluateHandler{lang: lang}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	l := h.lang.Localizer(c)

	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	var (
		v   decimal.Decimal
		err error
	)
	if req.Percent {
		v, err = calculation.EvaluatePercent(req.Expression)
	} else {
		v, err = calculation.Evaluate(req.Expression)
	}
	if err != nil {
		metrics.IncEvaluation(metrics.ResultError)
		respondError(c, l, err, 0)
		return
	}
	metrics.IncEvaluation(metrics.ResultSuccess)

	c.JSON(http.StatusOK, models.EvaluateResponse{
		Expression: req.Expression,
		Result:     v.String(),
	})
}
