package questiongen

import "github.com/nmoreno/quizrush/internal/api"

// GenerateInput holds all context needed to generate one trivia question.
type GenerateInput struct {
	// Category is the target category for the question.
	Category api.Category

	// Difficulty is the requested difficulty on the 1.0-5.0 scale.
	Difficulty float64

	// PriorStatements contains the statements of questions already
	// generated in this batch. Used for deduplication in the prompt.
	PriorStatements []string

	// Prompt is the admin-configured generation prompt. When the text is
	// empty the built-in system prompt is used alone.
	Prompt api.PromptConfig
}
