package models

import (
	"math"
	"time"

	"github.com/isday/compound-calculator/internal/i18n"
)

// ProjectionResponse represents the response from a single projection.
// Amounts that overflowed float64 are null and only appear in Display.
type ProjectionResponse struct {
	Language               string            `json:"language"`
	Input                  ProjectionInput   `json:"input"`
	FinalAmount            *float64          `json:"final_amount"`
	FinalIncome            *float64          `json:"final_income"`
	FinalIncomeRatePercent *float64          `json:"final_income_rate_percent"`
	DoublingPeriod         int               `json:"doubling_period"` // 0 when it never doubles
	RuleOf72Estimate       *float64          `json:"rule_of_72_estimate"`
	Display                ProjectionDisplay `json:"display"`
	Rows                   []ProjectionRow   `json:"rows"`
}

// ProjectionInput echoes the normalized input
type ProjectionInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Periods           int     `json:"periods"`
}

// ProjectionDisplay holds the localized summary strings
type ProjectionDisplay struct {
	FinalAmount    string `json:"final_amount"`
	FinalIncome    string `json:"final_income"`
	IncomeRate     string `json:"income_rate"`
	DoublingPeriod string `json:"doubling_period"`
}

// ProjectionRow represents one period of the trajectory
type ProjectionRow struct {
	Period            int        `json:"period"`
	CumulativeAmount  *float64   `json:"cumulative_amount"`
	CumulativeIncome  *float64   `json:"cumulative_income"`
	IncomeRatePercent *float64   `json:"income_rate_percent"`
	Display           RowDisplay `json:"display"`
}

// RowDisplay holds the localized strings of one row
type RowDisplay struct {
	Amount     string `json:"amount"`
	Income     string `json:"income"`
	IncomeRate string `json:"income_rate"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Language    string             `json:"language"`
	GeneratedAt time.Time          `json:"generated_at"`
	Scenarios   []ScenarioResult   `json:"scenarios"`
	Analysis    ComparisonAnalysis `json:"analysis"`
}

// ScenarioResult contains the projection of one named scenario
type ScenarioResult struct {
	Name       string             `json:"name"`
	Projection ProjectionResponse `json:"projection"`
}

// ComparisonAnalysis mirrors domain.ComparisonAnalysis with localized lines
type ComparisonAnalysis struct {
	BestScenarioForAmount string      `json:"best_scenario_for_amount"`
	FastestDoubling       string      `json:"fastest_doubling"`
	Crossovers            []Crossover `json:"crossovers"`
	Lines                 []string    `json:"lines"`
}

// Crossover marks where one scenario overtakes another
type Crossover struct {
	Leader   string   `json:"leader"`
	Trailer  string   `json:"trailer"`
	Period   int      `json:"period"`
	Fraction float64  `json:"fraction"`
	Amount   *float64 `json:"amount"`
}

// EvaluateResponse carries the evaluator result as a decimal string
type EvaluateResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// LanguagesResponse lists the supported display languages
type LanguagesResponse struct {
	Active    string                `json:"active"`
	Languages []i18n.LanguageOption `json:"languages"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Finite returns a pointer to v, or nil when v is NaN or infinite and
// therefore cannot be encoded as JSON.
func Finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
