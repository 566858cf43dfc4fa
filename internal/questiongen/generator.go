package questiongen

import (
	"context"

	"github.com/nmoreno/quizrush/internal/api"
)

// Generator produces trivia question drafts using an LLM provider.
type Generator interface {
	// Generate produces a single question draft for the given input.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*api.QuestionDraft, error)
}
