package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "trivia-question",
		Description: "A single trivia question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"statement":  map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "integer", "minimum": 1},
				"level":      map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"statement", "difficulty"},
		},
	}
}

func assertInvalidResponse(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseAccepted(t *testing.T) {
	for name, raw := range map[string]string{
		"all fields":       `{"statement":"Capital of Peru?","difficulty":2,"level":"easy"}`,
		"without optional": `{"statement":"Capital of Peru?","difficulty":2}`,
	} {
		if err := validateResponse(questionSchema(), json.RawMessage(raw)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	assertInvalidResponse(t, validateResponse(questionSchema(), json.RawMessage(`{"statement":"x"}`)))
}

func TestValidateResponseWrongType(t *testing.T) {
	assertInvalidResponse(t, validateResponse(questionSchema(), json.RawMessage(`{"statement":"x","difficulty":"two"}`)))
}

func TestValidateResponseBadEnum(t *testing.T) {
	assertInvalidResponse(t, validateResponse(questionSchema(), json.RawMessage(`{"statement":"x","difficulty":2,"level":"brutal"}`)))
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	assertInvalidResponse(t, validateResponse(questionSchema(), json.RawMessage(`{not json}`)))
	assertInvalidResponse(t, validateResponse(questionSchema(), json.RawMessage(``)))
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name: "question-batch",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"ids": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"category", "ids"},
		},
	}

	valid := json.RawMessage(`{"category":{"name":"Science"},"ids":[3,7,11]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	invalid := json.RawMessage(`{"category":{"name":"Science"},"ids":["not","ints"]}`)
	assertInvalidResponse(t, validateResponse(schema, invalid))
}
