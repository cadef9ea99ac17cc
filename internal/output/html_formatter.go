package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"math"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
)

// HTMLFormatter produces a self-contained localized HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"add": func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlRow struct {
	Period     int
	Amount     string
	Income     string
	IncomeRate string
}

type htmlScenario struct {
	Name        string
	Principal   string
	Rate        string
	Periods     string
	FinalAmount string
	TotalIncome string
	IncomeRate  string
	Doubling    string
	RuleOf72    float64
	Rows        []htmlRow
	Chart       []float64
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	l := localizer(results)

	scenarios := make([]htmlScenario, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		scenarios = append(scenarios, buildHTMLScenario(sc, l))
	}

	data := struct {
		Lang        string
		Labels      map[string]string
		Generated   string
		Assumptions []string
		Scenarios   []htmlScenario
		Analysis    []string
	}{
		Lang:        l.Code(),
		Labels:      htmlLabels(l),
		Assumptions: assumptionsFor(results),
		Scenarios:   scenarios,
		Analysis:    AnalysisLines(results, l),
	}
	if !results.GeneratedAt.IsZero() {
		data.Generated = results.GeneratedAt.Format("2006-01-02 15:04:05")
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildHTMLScenario(sc domain.ScenarioSummary, l *i18n.Localizer) htmlScenario {
	in := sc.Result.Input
	out := htmlScenario{
		Name:        sc.Name,
		Principal:   l.Money(in.Principal),
		Rate:        l.Percent(in.AnnualRatePercent),
		Periods:     l.Number(in.Periods),
		FinalAmount: l.Money(sc.Result.FinalAmount),
		TotalIncome: l.Money(sc.TotalIncome),
		IncomeRate:  l.Percent(sc.IncomeRatePercent),
		Doubling:    doublingText(sc, l),
		RuleOf72:    sc.RuleOf72Estimate,
		Rows:        make([]htmlRow, 0, len(sc.Result.Rows)),
	}
	for _, r := range sc.Result.Rows {
		out.Rows = append(out.Rows, htmlRow{
			Period:     r.Period,
			Amount:     l.Money(r.CumulativeAmount),
			Income:     l.Money(r.CumulativeIncome),
			IncomeRate: l.Percent(r.IncomeRatePercent),
		})
		if !math.IsInf(r.CumulativeAmount, 0) && !math.IsNaN(r.CumulativeAmount) {
			out.Chart = append(out.Chart, r.CumulativeAmount)
		}
	}
	return out
}

func htmlLabels(l *i18n.Localizer) map[string]string {
	keys := []string{
		"report.title", "report.generated", "report.assumptions", "report.scenario", "report.analysis",
		"field.principal", "field.rate", "field.periods",
		"column.period", "column.amount", "column.income", "column.income_rate",
		"summary.final_amount", "summary.total_income", "summary.doubling", "summary.rule_of_72",
	}
	labels := make(map[string]string, len(keys))
	for _, k := range keys {
		labels[k] = l.T(k)
	}
	return labels
}
