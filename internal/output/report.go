package output

import (
	"fmt"
	"os"

	"github.com/isday/compound-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders results with the named formatter and writes it into
// dir. "all" writes the console report and the detailed CSV.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if format == "all" {
		var written []string
		for _, name := range []string{"console", "detailed-csv"} {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir, Extension(name))
			if err != nil {
				return written, fmt.Errorf("write %s report: %w", name, err)
			}
			written = append(written, path)
		}
		return written, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	path, err := WriteFormatted(f, results, dir, Extension(format))
	if err != nil {
		return nil, fmt.Errorf("write %s report: %w", f.Name(), err)
	}
	return []string{path}, nil
}

// Render runs the named formatter without touching the filesystem.
func Render(results *domain.ScenarioComparison, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	return f.Format(results)
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
