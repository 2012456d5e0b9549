package memo

import "fmt"

// Manager holds the provider registry and the globally active provider.
// The registry is fixed at construction; only the active selection moves.
type Manager struct {
	active    string
	providers map[string]Provider
}

// NewManager builds the manager. An empty activeProvider defaults to
// gemini, the one fully-implemented provider.
func NewManager(activeProvider string) *Manager {
	if activeProvider == "" {
		activeProvider = "gemini"
	}
	return &Manager{
		active: activeProvider,
		providers: map[string]Provider{
			"gemini": &GeminiProvider{},
			"openai": &OpenAIProvider{},
		},
	}
}

// GetProvider returns the active provider, falling back to gemini when
// the active name is unknown.
func (m *Manager) GetProvider() Provider {
	if p, ok := m.providers[m.active]; ok {
		return p
	}
	return m.providers["gemini"]
}

// SetActiveProvider switches the global provider.
func (m *Manager) SetActiveProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %s not found", name)
	}
	m.active = name
	fmt.Printf("[MEMO] Global provider set to: %s\n", name)
	return nil
}

// ActiveProvider returns the active provider name.
func (m *Manager) ActiveProvider() string {
	return m.active
}

// Providers returns the registered provider names.
func (m *Manager) Providers() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}
