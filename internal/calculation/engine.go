package calculation

import (
	"context"
	"fmt"

	"github.com/isday/compound-calculator/internal/domain"
)

// CalculationEngine runs named scenarios through Project and assembles a comparison
type CalculationEngine struct {
	MaxPeriods int  // caller-side ceiling; <= 0 means domain.DefaultMaxPeriods
	Debug      bool // Enable debug output for every projected row
	Logger     Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		MaxPeriods: domain.DefaultMaxPeriods,
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) maxPeriods() int {
	if ce.MaxPeriods <= 0 {
		return domain.DefaultMaxPeriods
	}
	return ce.MaxPeriods
}

// Limit returns the period ceiling in effect
func (ce *CalculationEngine) Limit() int {
	return ce.maxPeriods()
}

// CheckLimit applies the caller-side period ceiling. It is not part of
// Project: the engine itself iterates whatever positive count it is given.
func (ce *CalculationEngine) CheckLimit(input domain.ProjectionInput) error {
	if limit := ce.maxPeriods(); input.Periods > limit {
		return fmt.Errorf("%w: %d periods requested, at most %d allowed", ErrPeriodsAboveLimit, input.Periods, limit)
	}
	return nil
}

// ProjectInput validates the input, checks the ceiling and then runs Project.
// Validation failures take precedence over the ceiling.
func (ce *CalculationEngine) ProjectInput(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := ce.CheckLimit(input); err != nil {
		return nil, err
	}
	result, err := Project(input)
	if err != nil {
		return nil, err
	}
	if ce.Debug {
		for _, row := range result.Rows {
			ce.log().Debugf("period %d: amount=%.2f income=%.2f rate=%.4f%%",
				row.Period, row.CumulativeAmount, row.CumulativeIncome, row.IncomeRatePercent)
		}
	}
	return result, nil
}

// ProjectValues is ProjectInput for raw numbers; a fractional period count
// is truncated first.
func (ce *CalculationEngine) ProjectValues(principal, annualRatePercent, periods float64) (*domain.ProjectionResult, error) {
	input, err := inputFromValues(principal, annualRatePercent, periods)
	if err != nil {
		return nil, err
	}
	return ce.ProjectInput(input)
}

// RunScenario projects a single scenario and derives its summary metrics
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input, err := inputFromValues(scenario.Principal, scenario.AnnualRatePercent, scenario.Periods)
	if err != nil {
		return nil, err
	}

	result, err := ce.ProjectInput(input)
	if err != nil {
		return nil, err
	}

	ce.log().Infof("scenario %q: %d periods, final amount %.2f", scenario.Name, len(result.Rows), result.FinalAmount)

	return Summarize(scenario.Name, result), nil
}

// Summarize derives the summary metrics of a finished projection
func Summarize(name string, result *domain.ProjectionResult) *domain.ScenarioSummary {
	return &domain.ScenarioSummary{
		Name:              name,
		Result:            result,
		TotalIncome:       result.FinalIncome(),
		IncomeRatePercent: result.FinalIncomeRatePercent(),
		DoublingPeriod:    DoublingPeriod(result),
		RuleOf72Estimate:  RuleOf72(result.Input.AnnualRatePercent),
	}
}

// RunScenarios runs all scenarios and returns a comparison
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	// a file-level ceiling overrides the engine's for this run only
	runner := *ce
	if config.Limits.MaxPeriods > 0 {
		runner.MaxPeriods = config.Limits.MaxPeriods
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		summary, err := runner.RunScenario(ctx, sc)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		scenarios[i] = *summary
	}

	comparison := &domain.ScenarioComparison{
		Language:    config.Display.Language,
		GeneratedAt: nowFunc(),
		Scenarios:   scenarios,
		Assumptions: config.GenerateAssumptions(),
	}
	comparison.Analysis = AnalyzeScenarios(scenarios)

	return comparison, nil
}

func (ce *CalculationEngine) log() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}
