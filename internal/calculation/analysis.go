package calculation

import (
	"github.com/isday/compound-calculator/internal/domain"
)

// DoublingPeriod returns the first period whose cumulative amount is at least
// twice the principal, or 0 if the projection never doubles.
func DoublingPeriod(result *domain.ProjectionResult) int {
	if result == nil {
		return 0
	}
	target := 2 * result.Input.Principal
	for _, row := range result.Rows {
		if row.CumulativeAmount >= target {
			return row.Period
		}
	}
	return 0
}

// RuleOf72 estimates the periods needed to double at the given rate
func RuleOf72(annualRatePercent float64) float64 {
	if annualRatePercent <= 0 {
		return 0
	}
	return 72 / annualRatePercent
}

// AnalyzeScenarios picks the scenario with the largest final amount, the one
// that doubles soonest, and the crossovers between consecutive scenarios.
func AnalyzeScenarios(scenarios []domain.ScenarioSummary) domain.ComparisonAnalysis {
	var analysis domain.ComparisonAnalysis
	var best *domain.ProjectionResult
	fastest := 0

	for _, sc := range scenarios {
		if sc.Result == nil {
			continue
		}
		if best == nil || outranks(sc.Result, best) {
			best = sc.Result
			analysis.BestScenarioForAmount = sc.Name
		}
		if sc.DoublingPeriod > 0 && (fastest == 0 || sc.DoublingPeriod < fastest) {
			fastest = sc.DoublingPeriod
			analysis.FastestDoubling = sc.Name
		}
	}

	for i := 1; i < len(scenarios); i++ {
		a, b := scenarios[i-1], scenarios[i]
		if a.Result == nil || b.Result == nil {
			continue
		}
		cross, err := CalculateCrossover(a.Result, b.Result)
		if err != nil || cross == nil {
			continue
		}
		leader, trailer := a.Name, b.Name
		if !cross.FirstLeads {
			leader, trailer = b.Name, a.Name
		}
		analysis.Crossovers = append(analysis.Crossovers, domain.Crossover{
			Leader:   leader,
			Trailer:  trailer,
			Period:   cross.Period,
			Fraction: cross.Fraction,
			Amount:   cross.Amount,
		})
	}

	return analysis
}

// outranks reports whether a ends above b. Equal final amounts, including two
// that overflowed to +Inf, fall back to the larger principal and then the
// larger rate, which is the order the true amounts would have.
func outranks(a, b *domain.ProjectionResult) bool {
	if a.FinalAmount != b.FinalAmount {
		return a.FinalAmount > b.FinalAmount
	}
	if a.Input.Principal != b.Input.Principal {
		return a.Input.Principal > b.Input.Principal
	}
	return a.Input.AnnualRatePercent > b.Input.AnnualRatePercent
}
