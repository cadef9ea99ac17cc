package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg := loadFixture(t)
	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"console", "json", "csv", "html", "xlsx", "pdf"} {
		paths, err := output.GenerateReport(results, format, dir)
		require.NoError(t, err, format)
		require.Len(t, paths, 1, format)
		assert.Equal(t, "."+output.Extension(format), filepath.Ext(paths[0]), format)

		fi, err := os.Stat(paths[0])
		require.NoError(t, err, format)
		assert.NotZero(t, fi.Size(), format)
	}
}

func TestBasicCalculations(t *testing.T) {
	// Test that basic calculations produce reasonable results
	cfg := loadFixture(t)
	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	for _, scenario := range results.Scenarios {
		res := scenario.Result
		assert.Greater(t, res.FinalAmount, res.Input.Principal, scenario.Name)
		assert.Greater(t, scenario.TotalIncome, 0.0, scenario.Name)
		assert.Greater(t, scenario.IncomeRatePercent, 0.0, scenario.Name)
		assert.Len(t, res.Rows, res.Input.Periods, scenario.Name)
		for i := 1; i < len(res.Rows); i++ {
			assert.Greater(t, res.Rows[i].CumulativeAmount, res.Rows[i-1].CumulativeAmount, scenario.Name)
		}
	}
}
