package calculation

import (
	"math"
	"testing"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoublingPeriod(t *testing.T) {
	assert.Equal(t, 1, DoublingPeriod(mustProject(t, 500_000, 100, 2)))
	// 1.07^10 = 1.967, 1.07^11 = 2.105
	assert.Equal(t, 11, DoublingPeriod(mustProject(t, 1000, 7, 20)))
	assert.Equal(t, 0, DoublingPeriod(mustProject(t, 1000, 7, 10)))
	assert.Equal(t, 0, DoublingPeriod(nil))
}

func TestRuleOf72(t *testing.T) {
	assert.InDelta(t, 10.2857, RuleOf72(7), 1e-4)
	assert.Equal(t, 0.0, RuleOf72(0))
	assert.Equal(t, 0.0, RuleOf72(-1))
}

// Exact crossover at a period boundary
func TestCalculateCrossover_ExactPeriod(t *testing.T) {
	a := &domain.ProjectionResult{
		Input: domain.ProjectionInput{Principal: 100},
		Rows: []domain.ProjectionRow{
			{Period: 1, CumulativeAmount: 110},
			{Period: 2, CumulativeAmount: 120},
		},
	}
	b := &domain.ProjectionResult{
		Input: domain.ProjectionInput{Principal: 50},
		Rows: []domain.ProjectionRow{
			{Period: 1, CumulativeAmount: 100},
			{Period: 2, CumulativeAmount: 120},
		},
	}

	res, err := CalculateCrossover(a, b)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Period)
	assert.Equal(t, 1.0, res.Fraction)
	assert.Equal(t, 120.0, res.Amount)
	assert.False(t, res.FirstLeads)
}

func TestCalculateCrossover_Interpolated(t *testing.T) {
	deposit := mustProject(t, 1_000_000, 5, 3)
	growth := mustProject(t, 500_000, 100, 3)

	res, err := CalculateCrossover(deposit, growth)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Period)
	assert.False(t, res.FirstLeads)

	// diff goes from +50,000 to -897,500 within period 2
	wantT := 50_000.0 / 947_500.0
	assert.InDelta(t, wantT, res.Fraction, 1e-9)
	assert.InDelta(t, 1_050_000+wantT*52_500, res.Amount, 1e-3)

	// swapping arguments flips the leader only
	swapped, err := CalculateCrossover(growth, deposit)
	require.NoError(t, err)
	require.NotNil(t, swapped)
	assert.True(t, swapped.FirstLeads)
	assert.Equal(t, res.Period, swapped.Period)
	assert.InDelta(t, res.Fraction, swapped.Fraction, 1e-12)
}

func TestCalculateCrossover_NoCrossing(t *testing.T) {
	high := mustProject(t, 2000, 10, 20)
	low := mustProject(t, 1000, 5, 20)

	res, err := CalculateCrossover(high, low)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateCrossover_EqualPrincipals(t *testing.T) {
	// same start; the faster rate leads from period 1 and never gives it up
	fast := mustProject(t, 1000, 10, 5)
	slow := mustProject(t, 1000, 5, 5)

	res, err := CalculateCrossover(fast, slow)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateCrossover_Empty(t *testing.T) {
	_, err := CalculateCrossover(&domain.ProjectionResult{}, mustProject(t, 1, 1, 1))
	assert.Error(t, err)
	_, err = CalculateCrossover(nil, nil)
	assert.Error(t, err)
}

func TestAnalyzeScenarios(t *testing.T) {
	summaries := []domain.ScenarioSummary{
		{Name: "A", Result: mustProject(t, 1_000_000, 5, 20), DoublingPeriod: 15},
		{Name: "B", Result: mustProject(t, 100_000, 20, 20), DoublingPeriod: 4},
		{Name: "C", Result: mustProject(t, 10, 1, 20), DoublingPeriod: 0},
	}

	analysis := AnalyzeScenarios(summaries)
	// A: 2.65M, B: 100k*1.2^20 = 3.83M
	assert.Equal(t, "B", analysis.BestScenarioForAmount)
	assert.Equal(t, "B", analysis.FastestDoubling)
	require.Len(t, analysis.Crossovers, 1)
	assert.Equal(t, "B", analysis.Crossovers[0].Leader)
	assert.Equal(t, "A", analysis.Crossovers[0].Trailer)

	assert.Equal(t, domain.ComparisonAnalysis{}, AnalyzeScenarios(nil))
}

func TestAnalyzeScenarios_OverflowTie(t *testing.T) {
	small := mustProject(t, 1e299, 100, 40)
	large := mustProject(t, 1e300, 100, 40)
	require.True(t, math.IsInf(small.FinalAmount, 1))
	require.True(t, math.IsInf(large.FinalAmount, 1))

	analysis := AnalyzeScenarios([]domain.ScenarioSummary{
		{Name: "Small", Result: small},
		{Name: "Large", Result: large},
	})
	assert.Equal(t, "Large", analysis.BestScenarioForAmount)

	// same principal: the higher rate ranks first
	analysis = AnalyzeScenarios([]domain.ScenarioSummary{
		{Name: "Fast", Result: mustProject(t, 1e300, 200, 40)},
		{Name: "Slow", Result: mustProject(t, 1e300, 100, 40)},
	})
	assert.Equal(t, "Fast", analysis.BestScenarioForAmount)
}
