package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/isday/compound-calculator/internal/config"
	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/output"
)

func TestSaveConfiguration(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := output.SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded domain.Configuration
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Scenarios) != len(cfg.Scenarios) || decoded.Scenarios[0].Name != cfg.Scenarios[0].Name {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if _, err := config.NewInputParser().LoadFromFile(path); err != nil {
		t.Fatalf("saved example does not validate: %v", err)
	}
}
