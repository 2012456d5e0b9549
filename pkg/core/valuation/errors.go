package valuation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedStage is returned when the requested stage key is not in
// the engine's registry. Wrapped with the offending stage name.
var ErrUnsupportedStage = errors.New("unsupported stage")

// InvalidInputError reports a failed schema validation. It carries the
// model's required field names so the caller can correct the request.
type InvalidInputError struct {
	Methodology    string
	RequiredFields []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid inputs for %s. Required fields: [%s]",
		e.Methodology, strings.Join(e.RequiredFields, ", "))
}

// DomainError reports a model-specific mathematical precondition failure
// (e.g. WACC <= growth rate). Distinct from InvalidInputError: the field
// values may each be in range but jointly inconsistent.
type DomainError struct {
	Methodology string
	Reason      string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Methodology, e.Reason)
}
