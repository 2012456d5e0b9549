// Package valuation implements the stage-specific startup valuation
// models and the engine that dispatches to them. Every calculation is a
// single-shot, deterministic, side-effect-free function of the caller's
// input mapping and the model's fixed coefficients, so one engine
// instance can serve concurrent callers without coordination.
package valuation

// Model is implemented by every stage valuation model.
type Model interface {
	// RequiredFields declares the input schema the model expects. The
	// returned mapping is rebuilt per call and safe for the caller to hold.
	RequiredFields() map[string]FieldSchema
	// ValidateInputs reports whether the inputs satisfy the declared
	// schema. Never returns an error; bad inputs are simply false.
	ValidateInputs(inputs map[string]interface{}) bool
	// Calculate runs the model formula. Returns *InvalidInputError if
	// validation fails and *DomainError if a mathematical precondition
	// fails; otherwise a fresh ValuationResult.
	Calculate(inputs map[string]interface{}) (*ValuationResult, error)
}
