package valuation

import (
	"strings"

	"startup_valuation/pkg/core/region"
)

const growthMethodology = "Growth Terminal Value"

// GrowthModel values a late-stage company as a Gordon-growth terminal
// value on free cash flow, adjusted by a regional risk multiplier. The
// region table is loaded once at construction and read-only afterwards,
// so the model is safe to share across concurrent callers.
type GrowthModel struct {
	regions *region.Table
}

// NewGrowthModel creates the model around a loaded region risk table.
// A nil table falls back to the compiled-in defaults.
func NewGrowthModel(regions *region.Table) *GrowthModel {
	if regions == nil {
		regions = region.Default()
	}
	return &GrowthModel{regions: regions}
}

func (m *GrowthModel) RequiredFields() map[string]FieldSchema {
	return map[string]FieldSchema{
		"fcf": {
			Type:        FieldNumber,
			Description: "Free Cash Flow in USD",
		},
		"growth_rate": {
			Type:        FieldNumber,
			Description: "Long-term growth rate (as decimal)",
		},
		"wacc": {
			Type:        FieldNumber,
			Description: "Weighted Average Cost of Capital (as decimal)",
		},
		"region": {
			Type:        FieldString,
			Description: "Primary operating region (e.g. north_america, europe)",
		},
	}
}

func (m *GrowthModel) ValidateInputs(inputs map[string]interface{}) bool {
	return ValidateAgainstSchema(inputs, m.RequiredFields())
}

// terminalValue applies the perpetual growth method. The Gordon growth
// model requires the discount rate to exceed the growth rate.
func (m *GrowthModel) terminalValue(fcf, growthRate, wacc float64) (float64, error) {
	if wacc <= growthRate {
		return 0, &DomainError{Methodology: growthMethodology, Reason: "WACC must be greater than growth rate"}
	}
	return fcf * (1 + growthRate) / (wacc - growthRate), nil
}

// regionRiskAdjustment scales the valuation by the region's multiplier.
func (m *GrowthModel) regionRiskAdjustment(value float64, regionKey string) float64 {
	return value * m.regions.Lookup(regionKey)
}

func (m *GrowthModel) Calculate(inputs map[string]interface{}) (*ValuationResult, error) {
	schema := m.RequiredFields()
	if !ValidateAgainstSchema(inputs, schema) {
		return nil, &InvalidInputError{Methodology: growthMethodology, RequiredFields: fieldNames(schema)}
	}

	fcf := numField(inputs, "fcf")
	growthRate := numField(inputs, "growth_rate")
	wacc := numField(inputs, "wacc")
	// Normalized once here; both the adjustment and the risk factor use
	// the same lookup.
	regionKey := strings.ToLower(inputs["region"].(string))

	// 1. Terminal value
	baseValue, err := m.terminalValue(fcf, growthRate, wacc)
	if err != nil {
		return nil, err
	}

	// 2. Regional adjustment
	adjustedValue := m.regionRiskAdjustment(baseValue, regionKey)

	// 3. Risk factors
	riskFactors := map[string]float64{
		"growth_risk": growthRate / wacc, // Growth close to WACC inflates the perpetuity
		"region_risk": 1 - m.regions.Lookup(regionKey),
		"scale_risk":  1 / (1 + fcf/1e6), // Risk shrinks with scale
	}

	// 4. Confidence
	confidence := 0.85 * (1 - meanRisk(riskFactors))

	return &ValuationResult{
		Value:       adjustedValue,
		Confidence:  confidence,
		Methodology: growthMethodology,
		RiskFactors: riskFactors,
	}, nil
}
