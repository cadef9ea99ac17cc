package output

import (
	"bytes"
	"encoding/csv"

	"github.com/isday/compound-calculator/internal/domain"
)

// CSVDetailedExporter provides raw per-period projection detail per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Period", "CumulativeAmount", "CumulativeIncome", "IncomeRatePercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		if sc.Result == nil {
			continue
		}
		for _, r := range sc.Result.Rows {
			row := []string{
				sc.Name,
				intToString(r.Period),
				plainAmount(r.CumulativeAmount),
				plainAmount(r.CumulativeIncome),
				plainRate(r.IncomeRatePercent),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
