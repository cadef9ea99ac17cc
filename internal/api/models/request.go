package models

// ProjectionRequest represents the request body for a single projection.
// Periods may be fractional; it is truncated to whole periods.
type ProjectionRequest struct {
	Principal         float64 `json:"principal" form:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent" form:"annual_rate_percent"`
	Periods           float64 `json:"periods" form:"periods"`
	Name              string  `json:"name,omitempty" form:"name"` // report label for exports
}

// ScenarioRequest is one named scenario of a comparison
type ScenarioRequest struct {
	Name              string  `json:"name" binding:"required"`
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Periods           float64 `json:"periods"`
}

// CompareRequest represents a request to compare several scenarios
type CompareRequest struct {
	Scenarios []ScenarioRequest `json:"scenarios" binding:"required,min=1,dive"`
}

// EvaluateRequest represents a general calculator expression
type EvaluateRequest struct {
	Expression string `json:"expression" binding:"required"`
	Percent    bool   `json:"percent,omitempty"` // divide the result by 100
}
