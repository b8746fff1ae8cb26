// Package config loads process-wide settings once at startup. The result is
// passed by value into constructors; nothing reads the environment after
// Load returns.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the immutable application configuration.
type Config struct {
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	OpenAITimeout     time.Duration
	OpenAITemperature float64
	OpenAIMaxTokens   int
	StructuredOutput  bool

	UseMockAI        bool
	MaxContentLength int
	ReviewTermsPath  string
	AllowedOrigins   []string
	Port             string
	Debug            bool
}

// Load reads a .env file when present, then the process environment, and
// returns the resolved configuration.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		OpenAIAPIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:       envString("OPENAI_MODEL", "gpt-4.1"),
		OpenAIBaseURL:     envString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAITimeout:     envDuration("OPENAI_TIMEOUT", 30*time.Second),
		OpenAITemperature: envFloat("OPENAI_TEMPERATURE", 0.2),
		OpenAIMaxTokens:   envInt("OPENAI_MAX_TOKENS", 150),
		StructuredOutput:  envBool("OPENAI_STRUCTURED_OUTPUT", true),
		UseMockAI:         envBool("USE_MOCK_AI", false),
		MaxContentLength:  envInt("MAX_CONTENT_LENGTH", 10000),
		ReviewTermsPath:   strings.TrimSpace(os.Getenv("REVIEW_TERMS_PATH")),
		AllowedOrigins:    envList("ALLOWED_ORIGINS"),
		Port:              envString("PORT", "8000"),
		Debug:             envBool("DEBUG", false),
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// envDuration accepts either a Go duration string ("30s") or a bare number
// of seconds, matching how the original deployment configured timeouts.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func envList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
