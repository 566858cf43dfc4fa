package llm

import "testing"

func TestGeminiAliasResolution(t *testing.T) {
	cases := map[string]string{
		"gemini-flash":     "gemini-2.0-flash",
		"gemini-pro":       "gemini-2.0-pro",
		"gemini-2.0-flash": "gemini-2.0-flash",
	}
	for in, want := range cases {
		if got := resolveAlias(in, geminiAliases); got != want {
			t.Errorf("resolveAlias(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"statement":  map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "integer"},
			"kind":       map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"statement", "options"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("got %d properties, want 4", len(schema.Properties))
	}
	if schema.Properties["statement"].Type != "STRING" {
		t.Errorf("statement type = %s, want STRING", schema.Properties["statement"].Type)
	}
	if schema.Properties["difficulty"].Type != "INTEGER" {
		t.Errorf("difficulty type = %s, want INTEGER", schema.Properties["difficulty"].Type)
	}
	if len(schema.Properties["kind"].Enum) != 3 {
		t.Errorf("got %d enum values, want 3", len(schema.Properties["kind"].Enum))
	}
	opts := schema.Properties["options"]
	if opts.Type != "ARRAY" || opts.Items.Type != "STRING" {
		t.Errorf("options = %s of %v, want ARRAY of STRING", opts.Type, opts.Items)
	}
	if len(schema.Required) != 2 {
		t.Errorf("got %d required fields, want 2", len(schema.Required))
	}
}
