package domain

import "time"

// ScenarioSummary provides the key metrics of one projected scenario
type ScenarioSummary struct {
	Name              string            `json:"name"`
	Result            *ProjectionResult `json:"result"`
	TotalIncome       float64           `json:"total_income"`
	IncomeRatePercent float64           `json:"income_rate_percent"`
	DoublingPeriod    int               `json:"doubling_period"` // 0 when the amount never doubles
	RuleOf72Estimate  float64           `json:"rule_of_72_estimate"`
}

// ScenarioComparison groups every scenario of a run with its analysis
type ScenarioComparison struct {
	Language    string             `json:"language"`
	GeneratedAt time.Time          `json:"generated_at"`
	Scenarios   []ScenarioSummary  `json:"scenarios"`
	Analysis    ComparisonAnalysis `json:"analysis"`
	Assumptions []string           `json:"assumptions"`
}

// ComparisonAnalysis highlights the standout scenarios of a comparison
type ComparisonAnalysis struct {
	BestScenarioForAmount string      `json:"best_scenario_for_amount"`
	FastestDoubling       string      `json:"fastest_doubling"`
	Crossovers            []Crossover `json:"crossovers"`
}

// Crossover marks the period where one scenario's cumulative amount overtakes another's
type Crossover struct {
	Leader   string  `json:"leader"`   // ahead after the crossover
	Trailer  string  `json:"trailer"`  // ahead before the crossover
	Period   int     `json:"period"`   // period in which the lead changed
	Fraction float64 `json:"fraction"` // 0..1 position within that period
	Amount   float64 `json:"amount"`   // interpolated amount where both are equal
}
