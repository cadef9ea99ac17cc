package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectionInput_TruncatesPeriods(t *testing.T) {
	testCases := []struct {
		periods  float64
		expected int
		desc     string
	}{
		{periods: 10, expected: 10, desc: "whole number"},
		{periods: 2.9, expected: 2, desc: "fraction truncated down"},
		{periods: 2.5, expected: 2, desc: "half truncated down"},
		{periods: 0.5, expected: 0, desc: "below one becomes zero"},
		{periods: -1.7, expected: -1, desc: "negative truncated toward zero"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			in, err := NewProjectionInput(1000, 5, tc.periods)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, in.Periods)
			assert.Equal(t, 1000.0, in.Principal)
			assert.Equal(t, 5.0, in.AnnualRatePercent)
		})
	}
}

func TestNewProjectionInput_NonFinitePeriods(t *testing.T) {
	for _, p := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewProjectionInput(1000, 5, p)
		assert.ErrorIs(t, err, ErrNonFinitePeriods)
	}
}

func TestNewProjectionInput_ClampsHugePeriods(t *testing.T) {
	in, err := NewProjectionInput(1000, 5, 1e18)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, in.Periods)
}

func TestProjectionInput_PeriodRate(t *testing.T) {
	in := ProjectionInput{Principal: 1, AnnualRatePercent: 5, Periods: 1}
	assert.InDelta(t, 0.05, in.PeriodRate(), 1e-15)
}

func TestProjectionResult_Helpers(t *testing.T) {
	res := &ProjectionResult{
		Input:       ProjectionInput{Principal: 100, AnnualRatePercent: 10, Periods: 2},
		FinalAmount: 121,
		Rows: []ProjectionRow{
			{Period: 1, CumulativeAmount: 110, CumulativeIncome: 10, IncomeRatePercent: 10},
			{Period: 2, CumulativeAmount: 121, CumulativeIncome: 21, IncomeRatePercent: 21},
		},
	}

	assert.Equal(t, 21.0, res.FinalIncome())
	assert.Equal(t, 21.0, res.FinalIncomeRatePercent())

	row, ok := res.Row(2)
	require.True(t, ok)
	assert.Equal(t, 121.0, row.CumulativeAmount)

	_, ok = res.Row(0)
	assert.False(t, ok)
	_, ok = res.Row(3)
	assert.False(t, ok)

	empty := &ProjectionResult{}
	assert.Equal(t, 0.0, empty.FinalIncomeRatePercent())
}

func TestScenario_Input(t *testing.T) {
	sc := Scenario{Name: "fractional", Principal: 500, AnnualRatePercent: 3, Periods: 4.99}
	in, err := sc.Input()
	require.NoError(t, err)
	assert.Equal(t, 4, in.Periods)

	bad := Scenario{Name: "nan", Principal: 500, AnnualRatePercent: 3, Periods: math.NaN()}
	_, err = bad.Input()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonFinitePeriods)
	assert.Contains(t, err.Error(), `scenario "nan"`)
}

func TestLimits_EffectiveMaxPeriods(t *testing.T) {
	assert.Equal(t, DefaultMaxPeriods, Limits{}.EffectiveMaxPeriods())
	assert.Equal(t, DefaultMaxPeriods, Limits{MaxPeriods: -3}.EffectiveMaxPeriods())
	assert.Equal(t, 50, Limits{MaxPeriods: 50}.EffectiveMaxPeriods())
}

func TestConfiguration_GenerateAssumptions(t *testing.T) {
	cfg := &Configuration{Limits: Limits{MaxPeriods: 200}}
	assumptions := cfg.GenerateAssumptions()
	require.Len(t, assumptions, 4)
	assert.Contains(t, assumptions[3], "200")
}
