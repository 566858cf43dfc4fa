package llm

import "testing"

func TestOpenRouterRequiresAPIKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestOpenRouterModelPassThrough(t *testing.T) {
	// OpenRouter model IDs are namespaced; no alias mapping applies.
	for _, model := range []string{
		"google/gemini-2.0-flash-exp",
		"meta-llama/llama-3-8b",
		"anthropic/claude-3-haiku",
	} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider(%q): %v", model, err)
		}
		if p.ModelID() != model {
			t.Errorf("model = %q, want %q", p.ModelID(), model)
		}
	}
}

func TestOpenRouterCustomBaseURL(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: "https://gateway.example.com/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p == nil {
		t.Fatal("expected provider")
	}
}
