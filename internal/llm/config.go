package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Explicit configuration reads QUIZRUSH_* variables; DiscoverConfig falls
// back to the vendors' bare key names.
const envPrefix = "QUIZRUSH_"

// Config selects and configures an LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout caps a single generation call, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenRouter or other OpenAI-compatible APIs
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff applied to transient provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the baseline: Anthropic on a cheap model, three
// attempts with doubling backoff, 30s overall cap.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays QUIZRUSH_* environment variables onto the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overlay := func(dst *string, suffix string) {
		if v := os.Getenv(envPrefix + suffix); v != "" {
			*dst = v
		}
	}

	overlay(&cfg.Provider, "LLM_PROVIDER")
	overlay(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	overlay(&cfg.Anthropic.Model, "ANTHROPIC_MODEL")
	overlay(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	overlay(&cfg.OpenAI.Model, "OPENAI_MODEL")
	overlay(&cfg.OpenAI.BaseURL, "OPENAI_BASE_URL")
	overlay(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	overlay(&cfg.Gemini.Model, "GEMINI_MODEL")
	overlay(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY")
	overlay(&cfg.OpenRouter.Model, "OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the vendors' own key variables when nothing was
// configured explicitly. Priority: Gemini, OpenAI, Anthropic, OpenRouter.
// The second return is false when no key is present at all.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envVar   string
		provider string
		dest     func(*Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		key := os.Getenv(p.envVar)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = p.provider
		*p.dest(&cfg) = key
		return cfg, true
	}
	return Config{}, false
}

// Validate rejects a Config whose selected provider has no API key. The
// mock provider needs none.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
		"mock":       "-",
	}
	key, known := keys[c.Provider]
	if !known {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			envPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
