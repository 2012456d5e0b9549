package valuation

import (
	"errors"
	"math"
	"testing"
)

func preSeedInputs() map[string]interface{} {
	return map[string]interface{}{
		"tam":              5_000_000.0,
		"team_score":       0.8,
		"current_traction": 100_000.0,
	}
}

func TestPreSeed_ReferenceVector(t *testing.T) {
	model := NewPreSeedModel()

	result, err := model.Calculate(preSeedInputs())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// 5,000,000*0.4 + 0.8*1,000,000*0.6 = 2,480,000
	if math.Abs(result.Value-2_480_000) > 0.01 {
		t.Errorf("Value = %.2f, want 2480000.00", result.Value)
	}
	if result.Methodology != "Pre-Seed Scorecard" {
		t.Errorf("Methodology = %q", result.Methodology)
	}

	t.Logf("Pre-seed valuation: %.2f, confidence %.3f", result.Value, result.Confidence)

	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Errorf("Confidence = %.4f, want in (0,1]", result.Confidence)
	}

	// Exactly market_risk and execution_risk, each in [0,1]
	if len(result.RiskFactors) != 2 {
		t.Fatalf("RiskFactors has %d entries, want 2: %v", len(result.RiskFactors), result.RiskFactors)
	}
	for _, key := range []string{"market_risk", "execution_risk"} {
		v, ok := result.RiskFactors[key]
		if !ok {
			t.Fatalf("RiskFactors missing %q", key)
		}
		if v < 0 || v > 1 {
			t.Errorf("RiskFactors[%q] = %.4f, want in [0,1]", key, v)
		}
	}

	// market_risk = 1 - 100000/5000000 = 0.98, execution_risk = 0.2
	if math.Abs(result.RiskFactors["market_risk"]-0.98) > 1e-9 {
		t.Errorf("market_risk = %.4f, want 0.98", result.RiskFactors["market_risk"])
	}
	if math.Abs(result.RiskFactors["execution_risk"]-0.2) > 1e-9 {
		t.Errorf("execution_risk = %.4f, want 0.2", result.RiskFactors["execution_risk"])
	}

	// confidence = 0.7*(1-0.98) + 0.3*0.8 = 0.254
	if math.Abs(result.Confidence-0.254) > 1e-9 {
		t.Errorf("Confidence = %.6f, want 0.254", result.Confidence)
	}
}

func TestPreSeed_TractionIsOptional(t *testing.T) {
	model := NewPreSeedModel()

	inputs := map[string]interface{}{
		"tam":        5_000_000.0,
		"team_score": 0.8,
	}
	result, err := model.Calculate(inputs)
	if err != nil {
		t.Fatalf("Calculate without traction failed: %v", err)
	}

	// Default traction 0 -> market_risk 1
	if math.Abs(result.RiskFactors["market_risk"]-1.0) > 1e-9 {
		t.Errorf("market_risk = %.4f, want 1.0 with zero traction", result.RiskFactors["market_risk"])
	}
}

func TestPreSeed_InvalidInputs(t *testing.T) {
	model := NewPreSeedModel()

	tests := []struct {
		name   string
		inputs map[string]interface{}
	}{
		{"missing tam", map[string]interface{}{"team_score": 0.8}},
		{"tam below minimum", map[string]interface{}{"tam": 500_000.0, "team_score": 0.8}},
		{"team_score above 1", map[string]interface{}{"tam": 5_000_000.0, "team_score": 1.5}},
		{"negative traction", map[string]interface{}{"tam": 5_000_000.0, "team_score": 0.8, "current_traction": -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if model.ValidateInputs(tt.inputs) {
				t.Error("ValidateInputs = true, want false")
			}

			_, err := model.Calculate(tt.inputs)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("Calculate error = %v, want *InvalidInputError", err)
			}
			if len(invalid.RequiredFields) != 3 {
				t.Errorf("RequiredFields = %v, want the 3 declared fields", invalid.RequiredFields)
			}
		})
	}
}
