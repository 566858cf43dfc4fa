package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/llm"
)

func testCategory() api.Category {
	return api.Category{
		ID:          7,
		Name:        "Science",
		Description: "Physics, chemistry, biology and astronomy",
	}
}

func validDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"statement": "Which planet is known as the Red Planet?",
		"options": ["Venus", "Mars", "Jupiter", "Mercury"],
		"correct_index": 1,
		"explanation": "Mars appears red because of iron oxide on its surface.",
		"difficulty": 2
	}`)
}

func TestGenerate_ValidDraft(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validDraftJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Category:   testCategory(),
		Difficulty: 2.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Statement != "Which planet is known as the Red Planet?" {
		t.Errorf("unexpected statement: %q", q.Statement)
	}
	if q.CategoryID != 7 {
		t.Errorf("expected category 7, got %d", q.CategoryID)
	}
	if !q.IsAIGenerated {
		t.Error("expected IsAIGenerated")
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if !q.Options[1].IsCorrect {
		t.Error("expected option 1 to be correct")
	}
	if q.Options[0].IsCorrect || q.Options[2].IsCorrect || q.Options[3].IsCorrect {
		t.Error("expected a single correct option")
	}
}

func TestGenerate_PromptIncludesCategoryAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validDraftJSON(),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category:        testCategory(),
		Difficulty:      3.5,
		PriorStatements: []string{"What is the chemical symbol for gold?"},
		Prompt:          api.PromptConfig{PromptText: "Prefer astronomy topics."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Category: Science",
		"Difficulty: 3.5",
		"Prefer astronomy topics.",
		"1. What is the chemical symbol for gold?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "trivia-question" {
		t.Error("expected trivia-question schema in request")
	}
}

func TestGenerate_PromptTemperatureOverride(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validDraftJSON(),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category: testCategory(),
		Prompt:   api.PromptConfig{Temperature: 0.3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.Calls[0].Temperature; got != 0.3 {
		t.Errorf("expected temperature 0.3, got %v", got)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: testCategory()})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestGenerate_CorrectIndexOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"statement": "Which planet is known as the Red Planet?",
			"options": ["Venus", "Mars", "Jupiter", "Mercury"],
			"correct_index": 4,
			"explanation": "Mars.",
			"difficulty": 2
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: testCategory()})
	if err == nil {
		t.Fatal("expected error for out-of-range correct_index")
	}
}

func TestGenerate_ValidatorRejectsDraft(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"statement": "Which planet is known as the Red Planet?",
			"options": ["Mars", "Mars", "Jupiter", "Mercury"],
			"correct_index": 0,
			"explanation": "Mars.",
			"difficulty": 2
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: testCategory()})
	if err == nil {
		t.Fatal("expected validation error for duplicate options")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Validator != "option-set" {
		t.Errorf("expected option-set validator, got %q", verr.Validator)
	}
}
