package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
)

// PDFFormatter renders a printable report. The core PDF fonts only cover
// Latin-1, so labels are always English; amounts keep the report language's
// grouping and are suffixed with its ISO currency code.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	amounts := localizer(results)
	labels := i18n.Default().LocalizerFor("en")
	money := func(v float64) string { return amounts.Amount(v) + " " + amounts.CurrencyCode() }

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, labels.T("report.title"))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if !results.GeneratedAt.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %s", labels.T("report.generated"), results.GeneratedAt.Format("2006-01-02 15:04:05")))
		pdf.Ln(8)
	}

	for i, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		in := sc.Result.Input
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, tr(fmt.Sprintf("%s %d: %s", labels.T("report.scenario"), i+1, sc.Name)))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, line := range []string{
			fmt.Sprintf("%s: %s", labels.T("field.principal"), money(in.Principal)),
			fmt.Sprintf("%s: %s", labels.T("field.rate"), labels.Percent(in.AnnualRatePercent)),
			fmt.Sprintf("%s: %d", labels.T("field.periods"), in.Periods),
			fmt.Sprintf("%s: %s", labels.T("summary.final_amount"), money(sc.Result.FinalAmount)),
			fmt.Sprintf("%s: %s", labels.T("summary.total_income"), money(sc.TotalIncome)),
			fmt.Sprintf("%s: %s", labels.T("column.income_rate"), labels.Percent(sc.IncomeRatePercent)),
			fmt.Sprintf("%s: %s", labels.T("summary.doubling"), doublingText(sc, labels)),
		} {
			pdf.Cell(0, 6, tr(line))
			pdf.Ln(5)
		}
		pdf.Ln(3)

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(25, 6, labels.T("column.period"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, labels.T("column.amount"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, labels.T("column.income"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, labels.T("column.income_rate"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		for _, r := range sc.Result.Rows {
			pdf.CellFormat(25, 6, intToString(r.Period), "1", 0, "C", false, 0, "")
			pdf.CellFormat(55, 6, tr(amounts.Amount(r.CumulativeAmount)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(55, 6, tr(amounts.Amount(r.CumulativeIncome)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 6, tr(labels.Percent(r.IncomeRatePercent)), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	if lines := AnalysisLines(results, labels); len(lines) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, labels.T("report.analysis"))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, line := range lines {
			pdf.Cell(0, 6, tr("- "+line))
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
