package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/isday/compound-calculator/internal/api/models"
	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/form"
	"github.com/isday/compound-calculator/internal/i18n"
	"github.com/isday/compound-calculator/internal/metrics"
	"github.com/isday/compound-calculator/internal/output"
)

// defaultExportName labels a single projection in downloaded reports
const defaultExportName = "Projection"

// ProjectionHandler handles projection, comparison and export requests
type ProjectionHandler struct {
	engine *calculation.CalculationEngine
	lang   *LanguageHandler
}

// NewProjectionHandler creates a new projection handler
func NewProjectionHandler(engine *calculation.CalculationEngine, lang *LanguageHandler) *ProjectionHandler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &ProjectionHandler{engine: engine, lang: lang}
}

// Project handles POST /api/v1/projections
func (h *ProjectionHandler) Project(c *gin.Context) {
	l := h.lang.Localizer(c)

	req, err := bindProjection(c)
	if err != nil {
		invalidRequest(c, err)
		return
	}

	start := time.Now()
	result, err := h.engine.ProjectValues(req.Principal, req.AnnualRatePercent, req.Periods)
	if err != nil {
		metrics.ObserveProjection(metrics.ResultError, 0, time.Since(start))
		respondError(c, l, err, h.engine.Limit())
		return
	}
	metrics.ObserveProjection(metrics.ResultSuccess, len(result.Rows), time.Since(start))

	c.JSON(http.StatusOK, projectionResponse(calculation.Summarize(req.Name, result), l))
}

// Compare handles POST /api/v1/comparisons
func (h *ProjectionHandler) Compare(c *gin.Context) {
	l := h.lang.Localizer(c)

	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	cfg := &domain.Configuration{Display: domain.DisplaySettings{Language: l.Code()}}
	for _, sc := range req.Scenarios {
		cfg.Scenarios = append(cfg.Scenarios, domain.Scenario{
			Name:              sc.Name,
			Principal:         sc.Principal,
			AnnualRatePercent: sc.AnnualRatePercent,
			Periods:           sc.Periods,
		})
	}

	start := time.Now()
	results, err := h.engine.RunScenarios(c.Request.Context(), cfg)
	if err != nil {
		metrics.ObserveProjection(metrics.ResultError, 0, time.Since(start))
		respondError(c, l, err, h.engine.Limit())
		return
	}
	for _, sc := range results.Scenarios {
		metrics.ObserveProjection(metrics.ResultSuccess, len(sc.Result.Rows), time.Since(start))
	}

	c.JSON(http.StatusOK, compareResponse(results, l))
}

// Export handles POST /api/v1/projections/export?format=csv
func (h *ProjectionHandler) Export(c *gin.Context) {
	l := h.lang.Localizer(c)

	format := c.DefaultQuery("format", "csv")
	if output.GetFormatterByName(format) == nil {
		respondError(c, l, output.UnsupportedFormatError(format), 0)
		return
	}

	req, err := bindProjection(c)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	name := req.Name
	if name == "" {
		name = defaultExportName
	}

	cfg := &domain.Configuration{
		Display: domain.DisplaySettings{Language: l.Code()},
		Scenarios: []domain.Scenario{{
			Name:              name,
			Principal:         req.Principal,
			AnnualRatePercent: req.AnnualRatePercent,
			Periods:           req.Periods,
		}},
	}
	results, err := h.engine.RunScenarios(c.Request.Context(), cfg)
	if err != nil {
		respondError(c, l, err, h.engine.Limit())
		return
	}

	start := time.Now()
	data, err := output.Render(results, format)
	if err != nil {
		metrics.ObserveExport(output.NormalizeFormatName(format), metrics.ResultError, time.Since(start))
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    CodeExportFailed,
				Message: err.Error(),
			},
		})
		return
	}
	metrics.ObserveExport(output.NormalizeFormatName(format), metrics.ResultSuccess, time.Since(start))

	filename := output.ReportFileName(results.GeneratedAt, output.Extension(format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, output.ContentType(format), data)
}

// bindProjection reads a projection from JSON or from raw form fields. Form
// fields go through the calculator's input parsing, so "1,000,000" is accepted.
func bindProjection(c *gin.Context) (models.ProjectionRequest, error) {
	var req models.ProjectionRequest
	if c.ContentType() == binding.MIMEPOSTForm {
		fields := form.Parse(c.PostForm("principal"), c.PostForm("annual_rate_percent"), c.PostForm("periods"))
		req.Principal = fields.Principal
		req.AnnualRatePercent = fields.AnnualRatePercent
		req.Periods = fields.Periods
		req.Name = c.PostForm("name")
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func projectionResponse(sc *domain.ScenarioSummary, l *i18n.Localizer) models.ProjectionResponse {
	result := sc.Result
	resp := models.ProjectionResponse{
		Language: l.Code(),
		Input: models.ProjectionInput{
			Principal:         result.Input.Principal,
			AnnualRatePercent: result.Input.AnnualRatePercent,
			Periods:           result.Input.Periods,
		},
		FinalAmount:            models.Finite(result.FinalAmount),
		FinalIncome:            models.Finite(sc.TotalIncome),
		FinalIncomeRatePercent: models.Finite(sc.IncomeRatePercent),
		DoublingPeriod:         sc.DoublingPeriod,
		RuleOf72Estimate:       models.Finite(sc.RuleOf72Estimate),
		Display: models.ProjectionDisplay{
			FinalAmount:    l.Money(result.FinalAmount),
			FinalIncome:    l.Money(sc.TotalIncome),
			IncomeRate:     l.Percent(sc.IncomeRatePercent),
			DoublingPeriod: output.DoublingText(sc.DoublingPeriod, l),
		},
		Rows: make([]models.ProjectionRow, 0, len(result.Rows)),
	}
	for _, row := range result.Rows {
		resp.Rows = append(resp.Rows, models.ProjectionRow{
			Period:            row.Period,
			CumulativeAmount:  models.Finite(row.CumulativeAmount),
			CumulativeIncome:  models.Finite(row.CumulativeIncome),
			IncomeRatePercent: models.Finite(row.IncomeRatePercent),
			Display: models.RowDisplay{
				Amount:     l.Money(row.CumulativeAmount),
				Income:     l.Money(row.CumulativeIncome),
				IncomeRate: l.Percent(row.IncomeRatePercent),
			},
		})
	}
	return resp
}

func compareResponse(results *domain.ScenarioComparison, l *i18n.Localizer) models.CompareResponse {
	resp := models.CompareResponse{
		Language:    l.Code(),
		GeneratedAt: results.GeneratedAt,
		Scenarios:   make([]models.ScenarioResult, 0, len(results.Scenarios)),
		Analysis: models.ComparisonAnalysis{
			BestScenarioForAmount: results.Analysis.BestScenarioForAmount,
			FastestDoubling:       results.Analysis.FastestDoubling,
			Crossovers:            make([]models.Crossover, 0, len(results.Analysis.Crossovers)),
			Lines:                 output.AnalysisLines(results, l),
		},
	}
	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		resp.Scenarios = append(resp.Scenarios, models.ScenarioResult{
			Name:       sc.Name,
			Projection: projectionResponse(sc, l),
		})
	}
	for _, x := range results.Analysis.Crossovers {
		resp.Analysis.Crossovers = append(resp.Analysis.Crossovers, models.Crossover{
			Leader:   x.Leader,
			Trailer:  x.Trailer,
			Period:   x.Period,
			Fraction: x.Fraction,
			Amount:   models.Finite(x.Amount),
		})
	}
	return resp
}
