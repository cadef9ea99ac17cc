package output

import (
	"sort"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
)

// AnalysisLines renders the comparison analysis as localized sentences.
func AnalysisLines(results *domain.ScenarioComparison, l *i18n.Localizer) []string {
	var lines []string
	a := results.Analysis
	if a.BestScenarioForAmount != "" {
		lines = append(lines, l.T("analysis.best_amount")+": "+a.BestScenarioForAmount)
	}
	if a.FastestDoubling != "" {
		lines = append(lines, l.T("analysis.fastest_doubling")+": "+a.FastestDoubling)
	}
	for _, c := range a.Crossovers {
		lines = append(lines, l.T("analysis.crossover", c.Leader, c.Trailer, c.Period))
	}
	return lines
}

func doublingText(sc domain.ScenarioSummary, l *i18n.Localizer) string {
	return DoublingText(sc.DoublingPeriod, l)
}

// DoublingText describes the period in which the principal doubles; 0 means
// it never does within the projection.
func DoublingText(period int, l *i18n.Localizer) string {
	if period <= 0 {
		return l.T("summary.never_doubles")
	}
	return l.T("summary.doubling_value", period)
}

func sortByName(scenarios []domain.ScenarioSummary) {
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
}
