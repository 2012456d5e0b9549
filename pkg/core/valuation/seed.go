package valuation

import (
	"fmt"
	"math"
)

const seedMethodology = "Seed Bottom-up DCF"

// SeedModel values an early-revenue SaaS company with a bottom-up DCF:
// project MRR forward a year at the observed growth rate, then apply a
// churn-adjusted revenue multiple.
type SeedModel struct {
	defaultMultiple float64
}

// NewSeedModel creates the model with the standard 12x annual multiple.
func NewSeedModel() *SeedModel {
	return &SeedModel{defaultMultiple: 12}
}

func (m *SeedModel) RequiredFields() map[string]FieldSchema {
	return map[string]FieldSchema{
		"mrr": {
			Type:        FieldNumber,
			Min:         floatPtr(10_000), // Minimum $10K MRR
			Description: "Monthly Recurring Revenue in USD",
		},
		"mom_growth": {
			Type:        FieldNumber,
			Min:         floatPtr(0),
			Max:         floatPtr(1),
			Description: "Month over month growth rate (as decimal)",
		},
		"churn": {
			Type:        FieldNumber,
			Min:         floatPtr(0.01),
			Max:         floatPtr(1),
			Description: "Monthly churn rate (as decimal)",
		},
		"cac": {
			Type:        FieldNumber,
			Min:         floatPtr(0),
			Description: "Customer Acquisition Cost in USD",
		},
		"ltv": {
			Type:        FieldNumber,
			Min:         floatPtr(0),
			Description: "Customer Lifetime Value in USD",
		},
	}
}

func (m *SeedModel) ValidateInputs(inputs map[string]interface{}) bool {
	return ValidateAgainstSchema(inputs, m.RequiredFields())
}

// bottomUpDCF projects annual revenue via compound monthly growth and
// applies a growth/churn-adjusted multiple. The churn guard duplicates the
// schema minimum on purpose: the formula divides by churn and must hold on
// its own for direct callers.
func (m *SeedModel) bottomUpDCF(mrr, momGrowth, churn float64) (float64, error) {
	if churn <= 0 {
		return 0, &DomainError{Methodology: seedMethodology, Reason: "churn rate must be greater than 0"}
	}

	annualRevenue := mrr * math.Pow(1+momGrowth, 12)
	multiple := m.defaultMultiple * (1 + momGrowth) / churn

	return annualRevenue * multiple, nil
}

// cacRatioAlert flags an unhealthy CAC/LTV ratio. The warning does not
// block the calculation, it only discounts confidence.
func (m *SeedModel) cacRatioAlert(cac, ltv float64) (bool, string) {
	ratio := math.Inf(1)
	if ltv > 0 {
		ratio = cac / ltv
	}
	if ratio > 0.3 {
		return true, fmt.Sprintf("CAC/LTV ratio of %.2f exceeds recommended maximum of 0.3", ratio)
	}
	return false, fmt.Sprintf("healthy CAC/LTV ratio of %.2f", ratio)
}

func (m *SeedModel) Calculate(inputs map[string]interface{}) (*ValuationResult, error) {
	schema := m.RequiredFields()
	if !ValidateAgainstSchema(inputs, schema) {
		return nil, &InvalidInputError{Methodology: seedMethodology, RequiredFields: fieldNames(schema)}
	}

	mrr := numField(inputs, "mrr")
	momGrowth := numField(inputs, "mom_growth")
	churn := numField(inputs, "churn")
	cac := numField(inputs, "cac")
	ltv := numField(inputs, "ltv")

	// 1. Base valuation
	value, err := m.bottomUpDCF(mrr, momGrowth, churn)
	if err != nil {
		return nil, err
	}

	// 2. Unit economics check
	cacWarning, cacMessage := m.cacRatioAlert(cac, ltv)
	if cacWarning {
		fmt.Printf("[SEED] Warning: %s\n", cacMessage)
	}

	// 3. Risk factors
	unitEconomics := 1.0
	if ltv > 0 {
		unitEconomics = cac / ltv
	}
	riskFactors := map[string]float64{
		"churn_risk":            math.Min(1, churn*12), // Annualized churn
		"growth_sustainability": 1 / (1 + momGrowth),   // Faster growth sustains the multiple
		"unit_economics":        unitEconomics,
	}

	// 4. Confidence, discounted further when the CAC/LTV warning fired
	baseConfidence := 0.8
	if cacWarning {
		baseConfidence *= 0.8
	}
	confidence := baseConfidence * (1 - meanRisk(riskFactors))

	return &ValuationResult{
		Value:       value,
		Confidence:  confidence,
		Methodology: seedMethodology,
		RiskFactors: riskFactors,
	}, nil
}
