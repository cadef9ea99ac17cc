package output

import (
	"bytes"
	"encoding/csv"

	"github.com/isday/compound-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Principal", "AnnualRatePercent", "Periods", "FinalAmount", "TotalIncome", "IncomeRatePercent", "DoublingPeriod", "RuleOf72Estimate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		if sc.Result == nil {
			continue
		}
		in := sc.Result.Input
		row := []string{
			sc.Name,
			plainAmount(in.Principal),
			plainRate(in.AnnualRatePercent),
			intToString(in.Periods),
			plainAmount(sc.Result.FinalAmount),
			plainAmount(sc.TotalIncome),
			plainRate(sc.IncomeRatePercent),
			intToString(sc.DoublingPeriod),
			plainRate(sc.RuleOf72Estimate),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
