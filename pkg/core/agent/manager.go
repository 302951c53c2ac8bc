// Package agent selects and drives the configured LLM provider.
package agent

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"stock_analyst/pkg/core/llm"
)

type Config struct {
	ActiveProvider string `yaml:"active_provider"`
	GeminiModel    string `yaml:"gemini_model"`
}

// LoadConfig reads a yaml provider configuration. A missing or unreadable
// file yields the defaults rather than an error.
func LoadConfig(path string) Config {
	cfg := Config{ActiveProvider: "gemini", GeminiModel: "gemini-2.5-flash"}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	yaml.Unmarshal(data, &cfg)
	if cfg.ActiveProvider == "" {
		cfg.ActiveProvider = "gemini"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash"
	}
	return cfg
}

type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini": &llm.GeminiProvider{Model: config.GeminiModel},
		},
	}
}

func (m *Manager) GetProvider() llm.Provider {
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// ExecutePrompt handles instruction adaptation before sending to the model.
func (m *Manager) ExecutePrompt(ctx context.Context, rawPrompt string, rawSystemPrompt string) (string, error) {
	provider := m.GetProvider()
	if provider == nil {
		return "", fmt.Errorf("provider %s not found", m.config.ActiveProvider)
	}
	adapted := provider.AdaptInstructions(rawSystemPrompt)
	return provider.GenerateResponse(ctx, rawPrompt, adapted, map[string]interface{}{})
}

func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}
