package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/isday/compound-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for a report format no formatter handles.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

var nowFunc = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file with
// extension ext inside dir ("" means the working directory).
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	filename := filepath.Join(dir, ReportFileName(nowFunc(), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// ReportFileName returns compound_report_<timestamp>.<ext>.
func ReportFileName(at time.Time, ext string) string {
	return fmt.Sprintf("compound_report_%s.%s", at.Format("20060102_150405"), ext)
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	XLSXFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":            "console",
	"txt":             "console",
	"console-verbose": "console",
	"verbose":         "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
	"excel":           "xlsx",
}

// extensions maps canonical formatter names to file extensions.
var extensions = map[string]string{
	"console":      "txt",
	"console-lite": "txt",
	"csv":          "csv",
	"detailed-csv": "csv",
	"html":         "html",
	"json":         "json",
	"xlsx":         "xlsx",
	"pdf":          "pdf",
}

// contentTypes maps canonical formatter names to MIME types for downloads.
var contentTypes = map[string]string{
	"console":      "text/plain; charset=utf-8",
	"console-lite": "text/plain; charset=utf-8",
	"csv":          "text/csv; charset=utf-8",
	"detailed-csv": "text/csv; charset=utf-8",
	"html":         "text/html; charset=utf-8",
	"json":         "application/json",
	"xlsx":         "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pdf":          "application/pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// Extension returns the file extension for a format name or alias.
func Extension(name string) string {
	if ext, ok := extensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "out"
}

// ContentType returns the MIME type for a format name or alias.
func ContentType(name string) string {
	if ct, ok := contentTypes[NormalizeFormatName(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnsupportedFormatError wraps ErrUnsupportedFormat with the known names.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
