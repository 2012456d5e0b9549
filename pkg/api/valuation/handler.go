// Package valuation exposes the valuation engine over HTTP. Parsing the
// request body into the engine's input mapping and serializing the result
// happen here; the core stays a plain function call.
package valuation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"startup_valuation/pkg/core/memo"
	core "startup_valuation/pkg/core/valuation"

	"github.com/google/uuid"
)

// Handler holds dependencies for valuation endpoints.
type Handler struct {
	engine    *core.Engine
	generator *memo.Generator
}

// NewHandler creates a new valuation handler.
func NewHandler(engine *core.Engine, generator *memo.Generator) *Handler {
	return &Handler{
		engine:    engine,
		generator: generator,
	}
}

type CalculateRequest struct {
	Stage  string                 `json:"stage"`
	Inputs map[string]interface{} `json:"inputs"`
}

type CalculateResponse struct {
	ID     string                `json:"id"`
	Stage  string                `json:"stage"`
	Result *core.ValuationResult `json:"result"`
}

type ValidateResponse struct {
	Stage string `json:"stage"`
	Valid bool   `json:"valid"`
}

type ErrorResponse struct {
	Error          string   `json:"error"`
	RequiredFields []string `json:"required_fields,omitempty"`
}

type MemoResponse struct {
	Memo   *memo.Memo            `json:"memo"`
	Result *core.ValuationResult `json:"result"`
}

// HandleCalculate runs a single valuation.
// POST /api/valuation/calculate {stage, inputs}
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r, "POST") {
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.engine.CalculateValuation(req.Stage, req.Inputs)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	fmt.Printf("[VALUATION] %s valuation: %.2f (confidence %.3f)\n", req.Stage, result.Value, result.Confidence)
	writeJSON(w, CalculateResponse{
		ID:     uuid.NewString(),
		Stage:  req.Stage,
		Result: result,
	})
}

// HandleValidate checks inputs without calculating.
// POST /api/valuation/validate {stage, inputs}
// Unknown stages are a valid=false response, not an error.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r, "POST") {
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	writeJSON(w, ValidateResponse{
		Stage: req.Stage,
		Valid: h.engine.ValidateInputs(req.Stage, req.Inputs),
	})
}

// HandleFields returns the input schema for a stage.
// GET /api/valuation/fields?stage=seed
func (h *Handler) HandleFields(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r, "GET") {
		return
	}

	stage := r.URL.Query().Get("stage")
	fields, err := h.engine.RequiredFields(stage)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	writeJSON(w, fields)
}

// HandleStages lists the registered stage keys.
// GET /api/valuation/stages
func (h *Handler) HandleStages(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r, "GET") {
		return
	}
	writeJSON(w, map[string][]string{"stages": h.engine.Stages()})
}

// HandleMemo calculates a valuation and drafts an investment memo for it.
// POST /api/valuation/memo {stage, inputs}
func (h *Handler) HandleMemo(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r, "POST") {
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.engine.CalculateValuation(req.Stage, req.Inputs)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	draft, err := h.generator.Draft(r.Context(), req.Stage, result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("memo generation failed: %v", err), nil)
		return
	}

	fmt.Printf("[MEMO] Drafted memo %s for %s (generated=%v)\n", draft.ID, req.Stage, draft.Generated)
	writeJSON(w, MemoResponse{Memo: draft, Result: result})
}

// writeCalculationError maps the engine's error taxonomy onto HTTP status
// codes: unknown stage 404, schema failure 400 (with the required field
// list), domain invariant 422.
func writeCalculationError(w http.ResponseWriter, err error) {
	var invalidInput *core.InvalidInputError
	var domainErr *core.DomainError

	switch {
	case errors.Is(err, core.ErrUnsupportedStage):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.As(err, &invalidInput):
		writeError(w, http.StatusBadRequest, err.Error(), invalidInput.RequiredFields)
	case errors.As(err, &domainErr):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}

// allowCORS sets the CORS headers for local dev and answers preflight.
// Returns false when the request was fully handled.
func allowCORS(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, requiredFields []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, RequiredFields: requiredFields})
}
