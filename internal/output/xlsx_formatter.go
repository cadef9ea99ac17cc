package output

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
)

// XLSXFormatter writes a workbook with a summary sheet and one sheet of
// period rows per scenario.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

const (
	summarySheet     = "Summary"
	maxSheetNameLen  = 31
	amountCellFormat = "#,##0"
)

func (x XLSXFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	l := localizer(results)
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(amountCellFormat)})
	if err != nil {
		return nil, err
	}

	header := []any{
		l.T("report.scenario"), l.T("field.principal"), l.T("field.rate"), l.T("field.periods"),
		l.T("summary.final_amount"), l.T("summary.total_income"), l.T("column.income_rate"), l.T("summary.doubling"),
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return nil, err
	}

	used := map[string]bool{}
	row := 2
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		in := sc.Result.Input
		values := []any{
			sc.Name, cellNumber(in.Principal), in.AnnualRatePercent, in.Periods,
			cellNumber(sc.Result.FinalAmount), cellNumber(sc.TotalIncome), cellNumber(sc.IncomeRatePercent), sc.DoublingPeriod,
		}
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, err
		}
		row++

		if err := writeScenarioSheet(f, uniqueSheetName(sc.Name, used), sc.Result, l, amountStyle); err != nil {
			return nil, err
		}
	}
	if row > 2 {
		_ = f.SetCellStyle(summarySheet, "B2", fmt.Sprintf("B%d", row-1), amountStyle)
		_ = f.SetCellStyle(summarySheet, "E2", fmt.Sprintf("F%d", row-1), amountStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeScenarioSheet(f *excelize.File, sheet string, result *domain.ProjectionResult, l *i18n.Localizer, amountStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []any{l.T("column.period"), l.T("column.amount"), l.T("column.income"), l.T("column.income_rate")}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range result.Rows {
		values := []any{r.Period, cellNumber(r.CumulativeAmount), cellNumber(r.CumulativeIncome), cellNumber(r.IncomeRatePercent)}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	if n := len(result.Rows); n > 0 {
		_ = f.SetCellStyle(sheet, "B2", fmt.Sprintf("C%d", n+1), amountStyle)
	}
	return nil
}

// cellNumber keeps finite values numeric; spreadsheets cannot hold infinities.
func cellNumber(v float64) any {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	return v
}

var sheetNameReplacer = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")")

// uniqueSheetName makes a valid, unused worksheet name from a scenario name.
func uniqueSheetName(name string, used map[string]bool) string {
	base := strings.Trim(sheetNameReplacer.Replace(strings.TrimSpace(name)), "'")
	if base == "" {
		base = "Scenario"
	}
	base = truncateRunes(base, maxSheetNameLen)
	candidate := base
	for i := 2; used[strings.ToLower(candidate)] || strings.EqualFold(candidate, summarySheet); i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncateRunes(base, maxSheetNameLen-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func strPtr(s string) *string { return &s }
