package agent

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg.ActiveProvider != "gemini" {
		t.Errorf("ActiveProvider = %q, want gemini", cfg.ActiveProvider)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel = %q, want gemini-2.5-flash", cfg.GeminiModel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	data := "active_provider: gemini\ngemini_model: gemini-2.0-pro\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if cfg.GeminiModel != "gemini-2.0-pro" {
		t.Errorf("GeminiModel = %q, want gemini-2.0-pro", cfg.GeminiModel)
	}
}

func TestManagerFallsBackToGemini(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "unknown", GeminiModel: "gemini-2.5-flash"})
	if m.GetProvider() == nil {
		t.Fatal("unknown provider must fall back to gemini")
	}
}
