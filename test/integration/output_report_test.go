package integration

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/config"
	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
	"github.com/isday/compound-calculator/internal/output"
)

func TestFormatters(t *testing.T) {
	en := i18n.Default().LocalizerFor("en")
	if got := en.Money(123.45); got != "$123" {
		t.Fatalf("Money got %s", got)
	}
	if got := i18n.Default().LocalizerFor("ko").Money(1050000); got != "1,050,000원" {
		t.Fatalf("Money got %s", got)
	}
	if got := en.Money(1.5e19); got != "$15,000,000,000,000,000,000" {
		t.Fatalf("Money past int64 got %s", got)
	}
	// Percent expects the value already in percentage units (not a 0-1 fraction)
	if got := en.Percent(12.34); got != "12.34%" {
		t.Fatalf("Percent got %s", got)
	}
}

func TestSaveConfiguration_WritesFile(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	out := filepath.Join(t.TempDir(), "config.yaml")
	if err := output.SaveConfiguration(cfg, out); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected file exists, err: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("expected non-empty file")
	}
	if _, err := config.NewInputParser().LoadFromFile(out); err != nil {
		t.Fatalf("saved configuration does not load back: %v", err)
	}
}

func TestReportGenerator_JSON_and_CSV_and_Console(t *testing.T) {
	cfg := &domain.Configuration{
		Display:   domain.DisplaySettings{Language: "en"},
		Scenarios: []domain.Scenario{{Name: "Baseline", Principal: 1000, AnnualRatePercent: 100, Periods: 2}},
	}
	sc, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios error: %v", err)
	}

	data, err := output.Render(sc, "json")
	if err != nil {
		t.Fatalf("json render error: %v", err)
	}
	var decoded domain.ScenarioComparison
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json output does not decode: %v", err)
	}
	if len(decoded.Scenarios) != 1 || decoded.Scenarios[0].Result.FinalAmount != 4000 {
		t.Fatalf("unexpected json scenarios: %+v", decoded.Scenarios)
	}

	data, err = output.Render(sc, "detailed-csv")
	if err != nil {
		t.Fatalf("csv render error: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(string(data)), "\n"); len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}

	data, err = output.Render(sc, "text")
	if err != nil {
		t.Fatalf("console render error: %v", err)
	}
	if !strings.Contains(string(data), "$4,000") {
		t.Fatalf("console output missing final amount:\n%s", data)
	}
}
