package valuation

import "math"

const preSeedMethodology = "Pre-Seed Scorecard"

// PreSeedModel values a pre-revenue company with the scorecard method:
// a fixed-weight blend of market size and team quality, since there are
// no financials to discount yet.
type PreSeedModel struct {
	tamWeight  float64
	teamWeight float64
}

// NewPreSeedModel creates the model with the standard 0.4/0.6 weights.
func NewPreSeedModel() *PreSeedModel {
	return &PreSeedModel{
		tamWeight:  0.4,
		teamWeight: 0.6,
	}
}

func (m *PreSeedModel) RequiredFields() map[string]FieldSchema {
	return map[string]FieldSchema{
		"tam": {
			Type:        FieldNumber,
			Min:         floatPtr(1_000_000), // Below $1M TAM the scorecard method is meaningless
			Description: "Total Addressable Market in USD",
		},
		"team_score": {
			Type:        FieldNumber,
			Min:         floatPtr(0),
			Max:         floatPtr(1),
			Description: "Team quality score on a 0-1 scale",
		},
		"current_traction": {
			Type:        FieldNumber,
			Min:         floatPtr(0),
			Optional:    true,
			Default:     0,
			Description: "Current revenue or user traction in USD-equivalent",
		},
	}
}

func (m *PreSeedModel) ValidateInputs(inputs map[string]interface{}) bool {
	return ValidateAgainstSchema(inputs, m.RequiredFields())
}

// scorecardValuation blends TAM and team quality with fixed weights.
// Team score is scaled to a $1M reference value.
func (m *PreSeedModel) scorecardValuation(tam, teamScore float64) float64 {
	return tam*m.tamWeight + teamScore*1e6*m.teamWeight
}

// marketRisk scores how little of the market the company has captured.
// The tam > 0 guard keeps the ratio defined; the schema already enforces
// tam >= $1M so it only matters for direct callers bypassing validation.
func (m *PreSeedModel) marketRisk(currentTraction, tam float64) float64 {
	ratio := 0.0
	if tam > 0 {
		ratio = currentTraction / tam
	}
	return 1 - math.Min(1, ratio)
}

func (m *PreSeedModel) Calculate(inputs map[string]interface{}) (*ValuationResult, error) {
	schema := m.RequiredFields()
	if !ValidateAgainstSchema(inputs, schema) {
		return nil, &InvalidInputError{Methodology: preSeedMethodology, RequiredFields: fieldNames(schema)}
	}

	tam := numField(inputs, "tam")
	teamScore := numField(inputs, "team_score")
	currentTraction := numFieldDefault(inputs, "current_traction", 0)

	// 1. Base valuation via scorecard blend
	value := m.scorecardValuation(tam, teamScore)

	// 2. Risk factors
	marketRisk := m.marketRisk(currentTraction, tam)
	riskFactors := map[string]float64{
		"market_risk":    marketRisk,
		"execution_risk": 1 - teamScore, // Stronger team = lower execution risk
	}

	// 3. Confidence weights traction evidence over team quality
	confidence := 0.7*(1-marketRisk) + 0.3*teamScore

	return &ValuationResult{
		Value:       value,
		Confidence:  confidence,
		Methodology: preSeedMethodology,
		RiskFactors: riskFactors,
	}, nil
}
