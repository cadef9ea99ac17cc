package output

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/isday/compound-calculator/internal/domain"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

// Format fails when an amount overflowed to infinity; JSON has no encoding for it.
func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		var uv *json.UnsupportedValueError
		if errors.As(err, &uv) {
			return nil, fmt.Errorf("json report: amount %s cannot be encoded: %w", uv.Str, err)
		}
		return nil, err
	}
	return b, nil
}
