package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
)

// ConsoleVerboseFormatter renders every scenario with its full period table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	l := localizer(results)
	var buf bytes.Buffer

	rule := strings.Repeat("=", 81)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, l.T("report.title"))
	fmt.Fprintln(&buf, rule)
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "%s: %s\n", l.T("report.generated"), results.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%s:\n", l.T("report.assumptions"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%s %d: %s\n", l.T("report.scenario"), i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if sc.Result == nil {
			fmt.Fprintln(&buf)
			continue
		}
		writeScenarioSummary(&buf, sc, l)
		fmt.Fprintln(&buf)
		if err := writeRowTable(&buf, sc.Result, l); err != nil {
			return nil, err
		}
		fmt.Fprintln(&buf)
	}

	if lines := AnalysisLines(results, l); len(lines) > 0 {
		fmt.Fprintf(&buf, "%s:\n", l.T("report.analysis"))
		for _, line := range lines {
			fmt.Fprintf(&buf, "• %s\n", line)
		}
	}
	return buf.Bytes(), nil
}

func writeScenarioSummary(w io.Writer, sc domain.ScenarioSummary, l *i18n.Localizer) {
	in := sc.Result.Input
	fmt.Fprintf(w, "%s: %s\n", l.T("field.principal"), l.Money(in.Principal))
	fmt.Fprintf(w, "%s: %s\n", l.T("field.rate"), l.Percent(in.AnnualRatePercent))
	fmt.Fprintf(w, "%s: %s\n", l.T("field.periods"), l.Number(in.Periods))
	fmt.Fprintf(w, "%s: %s\n", l.T("summary.final_amount"), l.Money(sc.Result.FinalAmount))
	fmt.Fprintf(w, "%s: %s\n", l.T("summary.total_income"), l.Money(sc.TotalIncome))
	fmt.Fprintf(w, "%s: %s\n", l.T("column.income_rate"), l.Percent(sc.IncomeRatePercent))
	fmt.Fprintf(w, "%s: %s\n", l.T("summary.doubling"), doublingText(sc, l))
	fmt.Fprintf(w, "%s: %.1f\n", l.T("summary.rule_of_72"), sc.RuleOf72Estimate)
}

// WriteRowTable prints the period rows of one projection as an aligned table.
func WriteRowTable(w io.Writer, result *domain.ProjectionResult, lang string) error {
	return writeRowTable(w, result, i18n.Default().LocalizerFor(lang))
}

func writeRowTable(w io.Writer, result *domain.ProjectionResult, l *i18n.Localizer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", l.T("column.period"), l.T("column.amount"), l.T("column.income"), l.T("column.income_rate"))
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", row.Period, l.Money(row.CumulativeAmount), l.Money(row.CumulativeIncome), l.Percent(row.IncomeRatePercent))
	}
	return tw.Flush()
}
