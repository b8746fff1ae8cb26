package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "OPENAI_TIMEOUT",
		"OPENAI_TEMPERATURE", "OPENAI_MAX_TOKENS", "OPENAI_STRUCTURED_OUTPUT",
		"USE_MOCK_AI", "MAX_CONTENT_LENGTH", "REVIEW_TERMS_PATH",
		"ALLOWED_ORIGINS", "PORT", "DEBUG",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.OpenAIModel != "gpt-4.1" {
		t.Fatalf("unexpected default model %q", cfg.OpenAIModel)
	}
	if cfg.OpenAITimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.OpenAITimeout)
	}
	if cfg.OpenAIMaxTokens != 150 {
		t.Fatalf("unexpected default max tokens %d", cfg.OpenAIMaxTokens)
	}
	if !cfg.StructuredOutput {
		t.Fatal("structured output should default on")
	}
	if cfg.UseMockAI {
		t.Fatal("mock mode should default off")
	}
	if cfg.MaxContentLength != 10000 {
		t.Fatalf("unexpected default content length %d", cfg.MaxContentLength)
	}
	if cfg.Port != "8000" {
		t.Fatalf("unexpected default port %q", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TIMEOUT", "5s")
	t.Setenv("OPENAI_STRUCTURED_OUTPUT", "false")
	t.Setenv("USE_MOCK_AI", "true")
	t.Setenv("MAX_CONTENT_LENGTH", "5000")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://example.com ,")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("api key not trimmed: %q", cfg.OpenAIAPIKey)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model %q", cfg.OpenAIModel)
	}
	if cfg.OpenAITimeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.OpenAITimeout)
	}
	if cfg.StructuredOutput {
		t.Fatal("structured output override ignored")
	}
	if !cfg.UseMockAI || !cfg.Debug {
		t.Fatal("boolean overrides ignored")
	}
	if cfg.MaxContentLength != 5000 {
		t.Fatalf("unexpected content length %d", cfg.MaxContentLength)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://example.com" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoadTimeoutAcceptsBareSeconds(t *testing.T) {
	t.Setenv("OPENAI_TIMEOUT", "45")
	if cfg := Load(); cfg.OpenAITimeout != 45*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.OpenAITimeout)
	}
}
