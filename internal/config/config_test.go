package config

import "testing"

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when API_KEY is not set")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("MODEL_NAME", "")
	t.Setenv("API_URL", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("expected API key 'test-key', got %q", cfg.APIKey)
	}
	if cfg.Model != defaultModel {
		t.Errorf("expected default model %q, got %q", defaultModel, cfg.Model)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Errorf("expected default API URL %q, got %q", defaultAPIURL, cfg.APIURL)
	}
	if cfg.Host != defaultHost {
		t.Errorf("expected default host %q, got %q", defaultHost, cfg.Host)
	}
	if cfg.Port != defaultPort {
		t.Errorf("expected default port %d, got %d", defaultPort, cfg.Port)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("MODEL_NAME", "qwen/qwen2.5-72b-instruct:free")
	t.Setenv("API_URL", "http://localhost:11434/v1/chat/completions")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "qwen/qwen2.5-72b-instruct:free" {
		t.Errorf("unexpected model: %q", cfg.Model)
	}
	if cfg.APIURL != "http://localhost:11434/v1/chat/completions" {
		t.Errorf("unexpected API URL: %q", cfg.APIURL)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("unexpected host: %q", cfg.Host)
	}
	if cfg.Port != 9000 {
		t.Errorf("unexpected port: %d", cfg.Port)
	}
}
