package valuation

import (
	"fmt"
	"sort"

	"startup_valuation/pkg/core/region"
)

// Stage keys, stable at the wire level.
const (
	StagePreSeed = "pre_seed"
	StageSeed    = "seed"
	StageSeriesA = "series_a"
	StageGrowth  = "growth"
)

// Engine is the sole entry point external collaborators use. It holds one
// model instance per stage in a registry fixed at construction; dispatch
// is a direct map lookup. The engine is stateless aside from that
// registry and may be shared freely across concurrent callers.
type Engine struct {
	models map[string]Model
}

// NewEngine builds the engine with its full stage registry. The region
// table feeds the growth model; pass nil to use the defaults.
func NewEngine(regions *region.Table) *Engine {
	return &Engine{
		models: map[string]Model{
			StagePreSeed: NewPreSeedModel(),
			StageSeed:    NewSeedModel(),
			StageSeriesA: NewSeriesAModel(),
			StageGrowth:  NewGrowthModel(regions),
		},
	}
}

// CalculateValuation dispatches to the stage's model. Returns
// ErrUnsupportedStage (wrapped with the stage name) for unknown stages.
func (e *Engine) CalculateValuation(stage string, inputs map[string]interface{}) (*ValuationResult, error) {
	model, ok := e.models[stage]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStage, stage)
	}
	return model.Calculate(inputs)
}

// ValidateInputs reports whether the inputs satisfy the stage's schema.
// Unknown stages are simply invalid, not an error.
func (e *Engine) ValidateInputs(stage string, inputs map[string]interface{}) bool {
	model, ok := e.models[stage]
	if !ok {
		return false
	}
	return model.ValidateInputs(inputs)
}

// RequiredFields returns the stage's input schema. Returns
// ErrUnsupportedStage for unknown stages.
func (e *Engine) RequiredFields(stage string) (map[string]FieldSchema, error) {
	model, ok := e.models[stage]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStage, stage)
	}
	return model.RequiredFields(), nil
}

// Stages returns the registered stage keys in sorted order.
func (e *Engine) Stages() []string {
	stages := make([]string, 0, len(e.models))
	for stage := range e.models {
		stages = append(stages, stage)
	}
	sort.Strings(stages)
	return stages
}
