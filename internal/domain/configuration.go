package domain

import (
	"fmt"
)

// DefaultMaxPeriods is the caller-side ceiling applied when none is configured.
// The engine itself iterates any positive count.
const DefaultMaxPeriods = 1000

// Configuration is the top-level shape of a scenario file
type Configuration struct {
	Display   DisplaySettings `yaml:"display" json:"display"`
	Limits    Limits          `yaml:"limits" json:"limits"`
	Scenarios []Scenario      `yaml:"scenarios" json:"scenarios"`
}

// DisplaySettings controls how reports are rendered
type DisplaySettings struct {
	Language string `yaml:"language" json:"language"` // ko, en or ja
}

// Limits carries UI policy bounds that are not engine invariants
type Limits struct {
	MaxPeriods int `yaml:"max_periods,omitempty" json:"max_periods,omitempty"`
}

// EffectiveMaxPeriods returns the configured ceiling or DefaultMaxPeriods
func (l Limits) EffectiveMaxPeriods() int {
	if l.MaxPeriods <= 0 {
		return DefaultMaxPeriods
	}
	return l.MaxPeriods
}

// Scenario is one named projection request. Periods is kept as a raw number
// so fractional values in a file are truncated the same way form input is.
type Scenario struct {
	Name              string  `yaml:"name" json:"name"`
	Principal         float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Periods           float64 `yaml:"periods" json:"periods"`
}

// Input converts the scenario into a ProjectionInput
func (s *Scenario) Input() (ProjectionInput, error) {
	in, err := NewProjectionInput(s.Principal, s.AnnualRatePercent, s.Periods)
	if err != nil {
		return ProjectionInput{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return in, nil
}

// GenerateAssumptions lists the modeling assumptions rendered in detailed reports
func (c *Configuration) GenerateAssumptions() []string {
	return []string{
		"Annual compounding: one compounding event per period, applied uniformly",
		"No additional contributions or withdrawals during the projection",
		"Amounts are truncated to whole currency units for display only",
		fmt.Sprintf("Projections longer than %d periods are rejected", c.Limits.EffectiveMaxPeriods()),
	}
}
