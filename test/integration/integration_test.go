package integration

import (
	"context"
	"testing"

	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/config"
	"github.com/isday/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../testdata/example_config.yaml"

func loadFixture(t *testing.T) *domain.Configuration {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(fixturePath)
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	// Test that we can load a configuration and run calculations
	cfg := loadFixture(t)
	assert.Len(t, cfg.Scenarios, 3)

	engine := calculation.NewCalculationEngine()
	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 3)

	assert.Equal(t, "en", results.Language)
	assert.Equal(t, "Bond Ladder", results.Analysis.BestScenarioForAmount)
	assert.Equal(t, "Index Fund", results.Analysis.FastestDoubling)
	assert.Empty(t, results.Analysis.Crossovers)
	assert.NotEmpty(t, results.Assumptions)

	byName := map[string]domain.ScenarioSummary{}
	for _, sc := range results.Scenarios {
		byName[sc.Name] = sc
	}
	assert.Equal(t, 7, byName["Index Fund"].DoublingPeriod)
	assert.Equal(t, 0, byName["Savings Deposit"].DoublingPeriod)
	// 10.7 periods are truncated to 10
	assert.Len(t, byName["Bond Ladder"].Result.Rows, 10)
	assert.InDelta(t, 6, byName["Index Fund"].RuleOf72Estimate, 1e-9)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	// Test valid configuration
	cfg := loadFixture(t)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	// A sub-period horizon truncates to zero and is rejected
	cfg.Scenarios[0].Periods = 0.5
	assert.Error(t, parser.ValidateConfiguration(cfg))

	// The file-level ceiling is enforced
	cfg = loadFixture(t)
	cfg.Scenarios[1].Periods = 101
	assert.Error(t, parser.ValidateConfiguration(cfg))
}

func TestEngineMatchesDirectProjection(t *testing.T) {
	cfg := loadFixture(t)
	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	for i, sc := range results.Scenarios {
		direct, err := calculation.ProjectValues(cfg.Scenarios[i].Principal, cfg.Scenarios[i].AnnualRatePercent, cfg.Scenarios[i].Periods)
		require.NoError(t, err)
		assert.Equal(t, direct.FinalAmount, sc.Result.FinalAmount, sc.Name)
		assert.Equal(t, direct.Rows, sc.Result.Rows, sc.Name)
	}
}
