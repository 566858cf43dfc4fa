package questiongen

import (
	"strings"
	"testing"

	"github.com/nmoreno/quizrush/internal/api"
)

func validDraft() *api.QuestionDraft {
	return &api.QuestionDraft{
		Statement:  "Which planet is known as the Red Planet?",
		Difficulty: 2,
		CategoryID: 7,
		Options: []api.OptionDraft{
			{Text: "Venus"},
			{Text: "Mars", IsCorrect: true},
			{Text: "Jupiter"},
			{Text: "Mercury"},
		},
		Explanation:   "Mars appears red because of iron oxide on its surface.",
		IsAIGenerated: true,
	}
}

func TestStructural_ValidDraft(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(validDraft(), GenerateInput{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyStatement(t *testing.T) {
	v := &StructuralValidator{}
	q := validDraft()
	q.Statement = "   "
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty statement")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_StatementTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validDraft()
	q.Statement = strings.Repeat("a", 501)
	if v.Validate(q, GenerateInput{}) == nil {
		t.Fatal("expected error for long statement")
	}
}

func TestStructural_DifficultyOutOfRange(t *testing.T) {
	v := &StructuralValidator{}
	for _, d := range []float64{0, 0.9, 5.1, -1} {
		q := validDraft()
		q.Difficulty = d
		if v.Validate(q, GenerateInput{}) == nil {
			t.Errorf("expected error for difficulty %v", d)
		}
	}
}

func TestOptionSet_WrongCount(t *testing.T) {
	v := &OptionSetValidator{}
	q := validDraft()
	q.Options = q.Options[:3]
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for 3 options")
	}
	if err.Validator != "option-set" {
		t.Errorf("expected validator %q, got %q", "option-set", err.Validator)
	}
}

func TestOptionSet_DuplicateOption(t *testing.T) {
	v := &OptionSetValidator{}
	q := validDraft()
	q.Options[2].Text = "  mars "
	if v.Validate(q, GenerateInput{}) == nil {
		t.Fatal("expected error for duplicate option")
	}
}

func TestOptionSet_EmptyOption(t *testing.T) {
	v := &OptionSetValidator{}
	q := validDraft()
	q.Options[3].Text = ""
	if v.Validate(q, GenerateInput{}) == nil {
		t.Fatal("expected error for empty option")
	}
}

func TestOptionSet_NoCorrectOption(t *testing.T) {
	v := &OptionSetValidator{}
	q := validDraft()
	q.Options[1].IsCorrect = false
	if v.Validate(q, GenerateInput{}) == nil {
		t.Fatal("expected error when no option is correct")
	}
}

func TestOptionSet_TwoCorrectOptions(t *testing.T) {
	v := &OptionSetValidator{}
	q := validDraft()
	q.Options[0].IsCorrect = true
	if v.Validate(q, GenerateInput{}) == nil {
		t.Fatal("expected error when two options are correct")
	}
}
