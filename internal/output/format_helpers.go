package output

import (
	"math"
	"strconv"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
	"github.com/isday/compound-calculator/pkg/decimal"
)

// localizer returns the localizer for the report's display language.
func localizer(results *domain.ScenarioComparison) *i18n.Localizer {
	return i18n.Default().LocalizerFor(results.Language)
}

// plainAmount renders an amount with two decimals and no grouping, for
// machine-readable outputs.
func plainAmount(v float64) string {
	m, ok := decimal.FromFloat(v)
	if !ok {
		return nonFiniteString(v)
	}
	return m.Round().String()
}

// plainRate renders a percentage with four decimals.
func plainRate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nonFiniteString(v)
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func nonFiniteString(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return "NaN"
	}
}

func intToString(i int) string { return strconv.Itoa(i) }

// sortedScenarios returns a name-ordered copy so outputs are deterministic.
func sortedScenarios(results *domain.ScenarioComparison) []domain.ScenarioSummary {
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sortByName(scenarios)
	return scenarios
}
