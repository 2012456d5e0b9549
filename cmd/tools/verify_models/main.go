// Command verify_models runs every stage model against its reference
// input vector and prints PASS/FAIL per check. Exit code 1 on any
// failure, so it can gate a release.
package main

import (
	"fmt"
	"math"
	"os"

	"startup_valuation/pkg/core/valuation"
)

type check struct {
	name      string
	stage     string
	inputs    map[string]interface{}
	wantValue float64
}

func main() {
	engine := valuation.NewEngine(nil)

	checks := []check{
		{
			name:  "pre_seed scorecard",
			stage: valuation.StagePreSeed,
			inputs: map[string]interface{}{
				"tam":              5_000_000.0,
				"team_score":       0.8,
				"current_traction": 100_000.0,
			},
			// 5M*0.4 + 0.8*1M*0.6
			wantValue: 2_480_000.0,
		},
		{
			name:  "seed bottom-up DCF",
			stage: valuation.StageSeed,
			inputs: map[string]interface{}{
				"mrr":        50_000.0,
				"mom_growth": 0.1,
				"churn":      0.05,
				"cac":        500.0,
				"ltv":        2_000.0,
			},
			// 50000*1.1^12 * (12*1.1/0.05)
			wantValue: 50_000 * math.Pow(1.1, 12) * 264,
		},
		{
			name:  "series_a hybrid",
			stage: valuation.StageSeriesA,
			inputs: map[string]interface{}{
				"dcf_value":        10_000_000.0,
				"comparable_value": 8_000_000.0,
				"equity_ratio":     0.7,
				"debt_ratio":       0.3,
				"cost_of_equity":   0.12,
				"cost_of_debt":     0.06,
				"tax_rate":         0.25,
			},
			wantValue: 9_200_000.0,
		},
		{
			name:  "growth terminal value (europe)",
			stage: valuation.StageGrowth,
			inputs: map[string]interface{}{
				"fcf":         1_000_000.0,
				"growth_rate": 0.03,
				"wacc":        0.10,
				"region":      "europe",
			},
			// 1M*1.03/0.07 * 0.9
			wantValue: 1_000_000 * 1.03 / 0.07 * 0.9,
		},
	}

	failed := 0
	for _, c := range checks {
		result, err := engine.CalculateValuation(c.stage, c.inputs)
		if err != nil {
			fmt.Printf("FAIL %-32s error: %v\n", c.name, err)
			failed++
			continue
		}
		if math.Abs(result.Value-c.wantValue) > 0.01 {
			fmt.Printf("FAIL %-32s value %.2f, want %.2f\n", c.name, result.Value, c.wantValue)
			failed++
			continue
		}
		fmt.Printf("PASS %-32s value %.2f confidence %.3f\n", c.name, result.Value, result.Confidence)
	}

	// The Gordon growth precondition must reject wacc <= growth_rate.
	_, err := engine.CalculateValuation(valuation.StageGrowth, map[string]interface{}{
		"fcf":         1_000_000.0,
		"growth_rate": 0.03,
		"wacc":        0.03,
		"region":      "europe",
	})
	if err == nil {
		fmt.Println("FAIL growth domain invariant          expected error for wacc == growth_rate")
		failed++
	} else {
		fmt.Printf("PASS growth domain invariant          rejected: %v\n", err)
	}

	if failed > 0 {
		fmt.Printf("%d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("All model checks passed")
}
