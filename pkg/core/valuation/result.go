package valuation

// ValuationResult is the output of every stage model. It is a plain value
// object: created fresh per calculation, never mutated, no identity beyond
// its fields.
type ValuationResult struct {
	// Value is the estimated monetary valuation in USD. Finite and
	// non-negative for all current models.
	Value float64 `json:"value"`
	// Confidence is intended to land in [0,1] but is NOT clamped: the raw
	// formula output is preserved, and extreme risk inputs (e.g. very high
	// churn) can push it below zero. Callers that need a display range
	// clamp at the presentation edge.
	Confidence  float64 `json:"confidence"`
	Methodology string  `json:"methodology"`
	// RiskFactors holds the named component risk scores that fed the
	// confidence formula. Keys vary per model.
	RiskFactors map[string]float64 `json:"risk_factors"`
}

// meanRisk averages the risk factor scores. Confidence formulas discount
// their base confidence by this mean.
func meanRisk(factors map[string]float64) float64 {
	if len(factors) == 0 {
		return 0
	}
	var sum float64
	for _, v := range factors {
		sum += v
	}
	return sum / float64(len(factors))
}
