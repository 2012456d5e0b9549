// Package memo drafts investment memos from valuation results. Text
// generation goes through a pluggable LLM provider; when no provider is
// usable the generator falls back to a deterministic template, so the
// memo endpoint works without any API key.
package memo

import "context"

// Provider is the interface for all memo text providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// OpenAIProvider is a placeholder pending API integration.
type OpenAIProvider struct{}

func (p *OpenAIProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return "Not implemented: OpenAI Response", nil
}

func (p *OpenAIProvider) AdaptInstructions(raw string) string {
	return "OpenAI Style: " + raw
}
