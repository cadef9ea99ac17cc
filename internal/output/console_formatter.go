package output

import (
	"bytes"
	"fmt"

	"github.com/isday/compound-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	l := localizer(results)
	var buf bytes.Buffer
	fmt.Fprintln(&buf, l.T("report.title"))
	fmt.Fprintln(&buf, "================================")
	for _, sc := range sortedScenarios(results) {
		final := 0.0
		if sc.Result != nil {
			final = sc.Result.FinalAmount
		}
		fmt.Fprintf(&buf, "%s: %s=%s %s=%s %s=%s\n",
			sc.Name,
			l.T("summary.final_amount"), l.Money(final),
			l.T("summary.total_income"), l.Money(sc.TotalIncome),
			l.T("column.income_rate"), l.Percent(sc.IncomeRatePercent),
		)
	}
	if best := results.Analysis.BestScenarioForAmount; best != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s: %s\n", l.T("analysis.best_amount"), best)
	}
	return buf.Bytes(), nil
}
