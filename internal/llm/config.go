package llm

import (
	"os"
	"strconv"
)

// Provider selects the chat backend.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// Config holds all configuration for the llm package.
type Config struct {
	Provider    Provider
	Model       string
	Endpoint    string // ollama only
	APIKey      string // anthropic only
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
	LogCalls    bool
}

// DefaultConfig returns a Config with sensible defaults: Anthropic when an
// API key is present in the environment, local Ollama otherwise.
func DefaultConfig() Config {
	cfg := Config{
		Provider:    ProviderOllama,
		Model:       "llama3.2",
		Endpoint:    "http://localhost:11434",
		Temperature: 0.7,
		MaxTokens:   1024,
		TimeoutMs:   60000,
		MaxRetries:  1,
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.Provider = ProviderAnthropic
		cfg.APIKey = key
		cfg.Model = "claude-sonnet-4-5"
	}
	return cfg
}

// LoadConfig reads configuration from CIMFORGE_LLM_* environment variables,
// falling back to defaults for unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CIMFORGE_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	if v := os.Getenv("CIMFORGE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CIMFORGE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CIMFORGE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CIMFORGE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CIMFORGE_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("CIMFORGE_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("CIMFORGE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}
