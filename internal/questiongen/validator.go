package questiongen

import (
	"fmt"

	"github.com/nmoreno/quizrush/internal/api"
)

// Validator checks a generated question draft for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "option-set".
	Name() string

	// Validate checks the draft and returns nil if it passes.
	// Returns a ValidationError if the draft fails the check.
	Validate(q *api.QuestionDraft, input GenerateInput) *ValidationError
}

// ValidationError describes why a draft failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
