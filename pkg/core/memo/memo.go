package memo

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"startup_valuation/pkg/core/utils"
	"startup_valuation/pkg/core/valuation"

	"github.com/google/uuid"
)

const systemPrompt = "You are a venture analyst. Write a concise investment memo in Markdown " +
	"from the valuation figures you are given. Sections: Summary, Valuation, Risk Factors, Recommendation. " +
	"Do not invent numbers beyond the ones provided."

// Memo is a drafted investment memo for a single valuation.
type Memo struct {
	ID       string `json:"id"`
	Stage    string `json:"stage"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	// Generated is false when the deterministic fallback template was
	// used instead of the LLM provider.
	Generated bool `json:"generated"`
}

// Generator drafts memos through the manager's active provider.
type Generator struct {
	mgr *Manager
}

// NewGenerator creates a generator around a provider manager.
func NewGenerator(mgr *Manager) *Generator {
	return &Generator{mgr: mgr}
}

// Draft produces a memo for a computed valuation. Provider failures (no
// API key, network, stub providers) degrade to the template fallback
// rather than failing the request.
func (g *Generator) Draft(ctx context.Context, stage string, result *valuation.ValuationResult) (*Memo, error) {
	markdown, generated := g.draftMarkdown(ctx, stage, result)

	markdown = utils.CleanMarkdown(markdown)
	if !utils.ValidateMarkdown(markdown) {
		return nil, fmt.Errorf("memo draft is not valid markdown")
	}

	html, err := utils.RenderHTML(markdown)
	if err != nil {
		return nil, fmt.Errorf("failed to render memo HTML: %w", err)
	}

	return &Memo{
		ID:        uuid.NewString(),
		Stage:     stage,
		Markdown:  markdown,
		HTML:      html,
		Generated: generated,
	}, nil
}

func (g *Generator) draftMarkdown(ctx context.Context, stage string, result *valuation.ValuationResult) (string, bool) {
	prompt := g.buildPrompt(stage, result)

	provider := g.mgr.GetProvider()
	text, err := provider.GenerateResponse(ctx, prompt, provider.AdaptInstructions(systemPrompt), nil)
	if err != nil {
		fmt.Printf("[MEMO] Provider failed, using template fallback: %v\n", err)
		return fallbackMemo(stage, result), false
	}
	// Stub providers return "Not implemented" markers; treat those as a
	// fallback too rather than serving placeholder text.
	if strings.HasPrefix(text, "Not implemented") || strings.TrimSpace(text) == "" {
		return fallbackMemo(stage, result), false
	}
	return text, true
}

func (g *Generator) buildPrompt(stage string, result *valuation.ValuationResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Company stage: %s\n", stage)
	fmt.Fprintf(&sb, "Methodology: %s\n", result.Methodology)
	fmt.Fprintf(&sb, "Estimated valuation: %s\n", utils.FormatCurrency(result.Value))
	fmt.Fprintf(&sb, "Confidence score: %.3f\n", result.Confidence)
	sb.WriteString("Risk factors:\n")
	for _, name := range sortedFactorNames(result.RiskFactors) {
		fmt.Fprintf(&sb, "- %s: %.3f\n", name, result.RiskFactors[name])
	}
	return sb.String()
}

// fallbackMemo renders a deterministic memo from the result alone.
func fallbackMemo(stage string, result *valuation.ValuationResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Investment Memo: %s\n\n", result.Methodology)
	fmt.Fprintf(&sb, "## Summary\n\n")
	fmt.Fprintf(&sb, "Stage **%s** valuation of **%s** with a confidence score of %.3f.\n\n",
		stage, utils.FormatCurrency(result.Value), result.Confidence)
	fmt.Fprintf(&sb, "## Risk Factors\n\n")
	for _, name := range sortedFactorNames(result.RiskFactors) {
		fmt.Fprintf(&sb, "- **%s**: %.3f\n", name, result.RiskFactors[name])
	}
	return sb.String()
}

func sortedFactorNames(factors map[string]float64) []string {
	names := make([]string, 0, len(factors))
	for name := range factors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
