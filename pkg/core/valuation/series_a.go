package valuation

import "math"

const seriesAMethodology = "Series A Hybrid"

// SeriesAModel blends an externally-prepared DCF valuation with a
// comparable-companies valuation at fixed weights. WACC is computed from
// the capital structure inputs but only feeds the cost-of-capital risk
// factor; it does not discount the hybrid value.
type SeriesAModel struct {
	dcfWeight        float64
	comparableWeight float64
}

// NewSeriesAModel creates the model with the standard 0.6/0.4 weights.
func NewSeriesAModel() *SeriesAModel {
	return &SeriesAModel{
		dcfWeight:        0.6,
		comparableWeight: 0.4,
	}
}

func (m *SeriesAModel) RequiredFields() map[string]FieldSchema {
	return map[string]FieldSchema{
		"dcf_value": {
			Type:        FieldNumber,
			Description: "Standalone DCF valuation in USD",
		},
		"comparable_value": {
			Type:        FieldNumber,
			Description: "Comparable companies valuation in USD",
		},
		"equity_ratio": {
			Type:        FieldNumber,
			Description: "Equity share of capital structure (E/V)",
		},
		"debt_ratio": {
			Type:        FieldNumber,
			Description: "Debt share of capital structure (D/V)",
		},
		"cost_of_equity": {
			Type:        FieldNumber,
			Description: "Cost of equity (as decimal)",
		},
		"cost_of_debt": {
			Type:        FieldNumber,
			Description: "Pre-tax cost of debt (as decimal)",
		},
		"tax_rate": {
			Type:        FieldNumber,
			Description: "Effective tax rate (as decimal)",
		},
	}
}

func (m *SeriesAModel) ValidateInputs(inputs map[string]interface{}) bool {
	return ValidateAgainstSchema(inputs, m.RequiredFields())
}

// hybridValuation is the fixed-weight average of the two approaches.
func (m *SeriesAModel) hybridValuation(dcfValue, comparableValue float64) float64 {
	return dcfValue*m.dcfWeight + comparableValue*m.comparableWeight
}

// waccCalculator computes WACC = E/V*Re + D/V*Rd*(1-Tc).
func (m *SeriesAModel) waccCalculator(equityRatio, debtRatio, costOfEquity, costOfDebt, taxRate float64) float64 {
	return equityRatio*costOfEquity + debtRatio*costOfDebt*(1-taxRate)
}

func (m *SeriesAModel) Calculate(inputs map[string]interface{}) (*ValuationResult, error) {
	schema := m.RequiredFields()
	if !ValidateAgainstSchema(inputs, schema) {
		return nil, &InvalidInputError{Methodology: seriesAMethodology, RequiredFields: fieldNames(schema)}
	}

	dcfValue := numField(inputs, "dcf_value")
	comparableValue := numField(inputs, "comparable_value")
	equityRatio := numField(inputs, "equity_ratio")
	debtRatio := numField(inputs, "debt_ratio")
	costOfEquity := numField(inputs, "cost_of_equity")
	costOfDebt := numField(inputs, "cost_of_debt")
	taxRate := numField(inputs, "tax_rate")

	// 1. Cost of capital
	wacc := m.waccCalculator(equityRatio, debtRatio, costOfEquity, costOfDebt, taxRate)

	// 2. Hybrid valuation
	value := m.hybridValuation(dcfValue, comparableValue)

	// 3. Risk factors
	riskFactors := map[string]float64{
		"capital_structure_risk": debtRatio,
		"cost_of_capital_risk":   wacc / 0.15, // Normalized against a 15% "expensive capital" reference
		"valuation_divergence":   math.Abs(dcfValue-comparableValue) / math.Max(dcfValue, comparableValue),
	}

	// 4. Confidence
	confidence := 0.9 * (1 - meanRisk(riskFactors))

	return &ValuationResult{
		Value:       value,
		Confidence:  confidence,
		Methodology: seriesAMethodology,
		RiskFactors: riskFactors,
	}, nil
}
