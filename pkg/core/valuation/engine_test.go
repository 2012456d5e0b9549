package valuation

import (
	"errors"
	"testing"
)

func TestEngine_UnsupportedStage(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.CalculateValuation("series_b", map[string]interface{}{})
	if !errors.Is(err, ErrUnsupportedStage) {
		t.Fatalf("CalculateValuation error = %v, want ErrUnsupportedStage", err)
	}

	_, err = engine.RequiredFields("series_b")
	if !errors.Is(err, ErrUnsupportedStage) {
		t.Fatalf("RequiredFields error = %v, want ErrUnsupportedStage", err)
	}

	// ValidateInputs does not fail for unknown stages, it is simply false
	if engine.ValidateInputs("series_b", map[string]interface{}{}) {
		t.Error("ValidateInputs for unknown stage = true, want false")
	}
}

func TestEngine_Stages(t *testing.T) {
	engine := NewEngine(nil)

	want := []string{"growth", "pre_seed", "seed", "series_a"}
	got := engine.Stages()
	if len(got) != len(want) {
		t.Fatalf("Stages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stages()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestEngine_DispatchesAllStages(t *testing.T) {
	engine := NewEngine(nil)

	vectors := map[string]map[string]interface{}{
		StagePreSeed: preSeedInputs(),
		StageSeed:    seedInputs(),
		StageSeriesA: seriesAInputs(),
		StageGrowth:  growthInputs(),
	}

	for stage, inputs := range vectors {
		t.Run(stage, func(t *testing.T) {
			if !engine.ValidateInputs(stage, inputs) {
				t.Error("ValidateInputs = false for the minimal valid example")
			}

			result, err := engine.CalculateValuation(stage, inputs)
			if err != nil {
				t.Fatalf("CalculateValuation failed: %v", err)
			}
			if result.Value < 0 {
				t.Errorf("Value = %.2f, want non-negative", result.Value)
			}
			t.Logf("%s: %.2f (confidence %.3f, %s)", stage, result.Value, result.Confidence, result.Methodology)
		})
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine := NewEngine(nil)

	for stage, inputs := range map[string]map[string]interface{}{
		StagePreSeed: preSeedInputs(),
		StageSeed:    seedInputs(),
		StageSeriesA: seriesAInputs(),
		StageGrowth:  growthInputs(),
	} {
		first, err := engine.CalculateValuation(stage, inputs)
		if err != nil {
			t.Fatalf("%s: %v", stage, err)
		}
		second, err := engine.CalculateValuation(stage, inputs)
		if err != nil {
			t.Fatalf("%s: %v", stage, err)
		}

		// Bit-identical, not just approximately equal
		if first.Value != second.Value || first.Confidence != second.Confidence {
			t.Errorf("%s: repeated calculation diverged: %v vs %v", stage, first, second)
		}
		for key, v := range first.RiskFactors {
			if second.RiskFactors[key] != v {
				t.Errorf("%s: risk factor %q diverged", stage, key)
			}
		}
	}
}

func TestEngine_RequiredFieldsStable(t *testing.T) {
	engine := NewEngine(nil)

	for _, stage := range engine.Stages() {
		first, err := engine.RequiredFields(stage)
		if err != nil {
			t.Fatalf("%s: %v", stage, err)
		}
		second, err := engine.RequiredFields(stage)
		if err != nil {
			t.Fatalf("%s: %v", stage, err)
		}

		if len(first) != len(second) {
			t.Fatalf("%s: schema size changed between calls", stage)
		}
		for name, schema := range first {
			other, ok := second[name]
			if !ok {
				t.Errorf("%s: field %q disappeared", stage, name)
				continue
			}
			if schema.Type != other.Type {
				t.Errorf("%s/%s: type changed", stage, name)
			}
			if (schema.Min == nil) != (other.Min == nil) || (schema.Min != nil && *schema.Min != *other.Min) {
				t.Errorf("%s/%s: min bound changed", stage, name)
			}
			if (schema.Max == nil) != (other.Max == nil) || (schema.Max != nil && *schema.Max != *other.Max) {
				t.Errorf("%s/%s: max bound changed", stage, name)
			}
		}

		// Mutating the returned schema must not affect the model
		first[stage+"_injected"] = FieldSchema{Type: FieldNumber}
		third, _ := engine.RequiredFields(stage)
		if _, ok := third[stage+"_injected"]; ok {
			t.Errorf("%s: schema mutation leaked into the model", stage)
		}
	}
}
