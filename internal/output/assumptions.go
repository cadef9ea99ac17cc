package output

import (
	"github.com/isday/compound-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions rendered when a
// comparison carries none of its own.
var DefaultAssumptions = (&domain.Configuration{}).GenerateAssumptions()

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
