package calculation

import (
	"fmt"
	"math"

	"github.com/isday/compound-calculator/internal/domain"
)

// CrossoverResult describes where two trajectories change lead
type CrossoverResult struct {
	// Period (1-based) in which the lead changes
	Period int `json:"period"`

	// Fraction (0..1] of that period at which both amounts are equal
	Fraction float64 `json:"fraction"`

	// Cumulative amount at the crossover (equal for both projections)
	Amount float64 `json:"amount"`

	// FirstLeads is true when the first projection is ahead after the crossover
	FirstLeads bool `json:"first_leads"`
}

// CalculateCrossover finds the first period at which the lead between two
// projections flips, e.g. a small principal at a high rate overtaking a large
// principal at a low rate. Projections are aligned by period and compared up
// to the shorter length; period 0 is each principal. Within the period the
// crossing point is linearly interpolated. If no crossover is found, returns nil, nil.
func CalculateCrossover(a, b *domain.ProjectionResult) (*CrossoverResult, error) {
	if a == nil || b == nil || len(a.Rows) == 0 || len(b.Rows) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}

	n := len(a.Rows)
	if len(b.Rows) < n {
		n = len(b.Rows)
	}

	prevA, prevB := a.Input.Principal, b.Input.Principal
	prevDiff := prevA - prevB

	for i := 0; i < n; i++ {
		currA, currB := a.Rows[i].CumulativeAmount, b.Rows[i].CumulativeAmount
		currDiff := currA - currB
		tol := 1e-9 * math.Max(math.Abs(currA), math.Abs(currB))

		switch {
		case isZero(prevDiff, tol):
			// no leader yet; keep looking for the first separation
		case isZero(currDiff, tol):
			// caught up exactly at period end; whoever trailed takes the lead
			return &CrossoverResult{
				Period:     a.Rows[i].Period,
				Fraction:   1,
				Amount:     currA,
				FirstLeads: prevDiff < 0,
			}, nil
		case (prevDiff < 0) != (currDiff < 0):
			t := -prevDiff / (currDiff - prevDiff)
			return &CrossoverResult{
				Period:     a.Rows[i].Period,
				Fraction:   t,
				Amount:     prevA + t*(currA-prevA),
				FirstLeads: currDiff > 0,
			}, nil
		}

		if !isZero(currDiff, tol) {
			prevDiff = currDiff
		}
		prevA, prevB = currA, currB
	}

	return nil, nil
}

func isZero(v, tol float64) bool {
	return math.Abs(v) <= tol
}
