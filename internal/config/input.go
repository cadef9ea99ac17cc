package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if lang := strings.TrimSpace(config.Display.Language); lang != "" && !i18n.IsSupportedCode(lang) {
		return fmt.Errorf("display language %q is not supported (use ko, en or ja)", lang)
	}
	if config.Limits.MaxPeriods < 0 {
		return fmt.Errorf("limits.max_periods cannot be negative")
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	maxPeriods := config.Limits.EffectiveMaxPeriods()
	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario, maxPeriods); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario, maxPeriods int) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	if !positiveFinite(scenario.Principal) {
		return fmt.Errorf("principal must be positive")
	}
	if !positiveFinite(scenario.AnnualRatePercent) {
		return fmt.Errorf("annual_rate_percent must be positive")
	}
	in, err := scenario.Input()
	if err != nil || in.Periods < 1 {
		return fmt.Errorf("periods must be at least 1")
	}
	if in.Periods > maxPeriods {
		return fmt.Errorf("periods must be at most %d", maxPeriods)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Display: domain.DisplaySettings{Language: "ko"},
		Limits:  domain.Limits{MaxPeriods: domain.DefaultMaxPeriods},
		Scenarios: []domain.Scenario{
			{
				Name:              "Savings Deposit",
				Principal:         1000000,
				AnnualRatePercent: 3.5,
				Periods:           10,
			},
			{
				Name:              "Index Fund",
				Principal:         1000000,
				AnnualRatePercent: 7,
				Periods:           10,
			},
			{
				Name:              "Late Start, Higher Yield",
				Principal:         500000,
				AnnualRatePercent: 12,
				Periods:           10,
			},
		},
	}
}
