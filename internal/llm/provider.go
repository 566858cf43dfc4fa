package llm

import (
	"context"
	"encoding/json"
)

// Provider is a single LLM backend. Implementations translate Request into
// the vendor's wire format and normalize the reply into Response.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// returned Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is one completion call. Question generation is single-turn, so
// Messages usually holds exactly one user message.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, switches the provider to its structured-output
	// mode and gates the response through JSON Schema validation.
	Schema *Schema

	MaxTokens int

	// Temperature in 0.0 to 1.0; zero means deterministic.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and describes the JSON shape the model must produce.
// Name is kebab-case, e.g. "trivia-question".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the normalized reply from any provider.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the call, which may differ
	// from the configured alias.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
