package questiongen

import (
	"strings"

	"github.com/nmoreno/quizrush/internal/api"
)

// StructuralValidator checks that required fields are present, within
// length limits, and in valid ranges.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *api.QuestionDraft, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Statement) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "statement is empty",
			Retryable: true,
		}
	}
	if len(q.Statement) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "statement exceeds 500 characters",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	return nil
}

// OptionSetValidator checks the option list: exactly four options, all
// non-empty and distinct, with exactly one marked correct.
type OptionSetValidator struct{}

func (v *OptionSetValidator) Name() string { return "option-set" }

func (v *OptionSetValidator) Validate(q *api.QuestionDraft, _ GenerateInput) *ValidationError {
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "expected exactly 4 options",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Options))
	correct := 0
	for _, opt := range q.Options {
		text := strings.ToLower(strings.TrimSpace(opt.Text))
		if text == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option text is empty",
				Retryable: true,
			}
		}
		if seen[text] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "duplicate option: " + opt.Text,
				Retryable: true,
			}
		}
		seen[text] = true
		if opt.IsCorrect {
			correct++
		}
	}

	if correct != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "expected exactly 1 correct option",
			Retryable: true,
		}
	}
	return nil
}
