package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	model        string
	inputTokens  int
	outputTokens int
}

// UsageSummary reports the serving model and token totals accumulated
// across all Generate calls, for cost estimation.
func (g *LLMGenerator) UsageSummary() (model string, inputTokens, outputTokens int) {
	return g.model, g.inputTokens, g.outputTokens
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// draftOutput is the raw LLM response before validation.
type draftOutput struct {
	Statement    string   `json:"statement"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Difficulty   float64  `json:"difficulty"`
}

// Generate produces a single question draft for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*api.QuestionDraft, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg := buildUserMessage(input, g.config)

	temp := g.config.Temperature
	if input.Prompt.Temperature > 0 {
		temp = input.Prompt.Temperature
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: temp,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	g.model = resp.Model
	g.inputTokens += resp.Usage.InputTokens
	g.outputTokens += resp.Usage.OutputTokens

	var raw draftOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if raw.CorrectIndex < 0 || raw.CorrectIndex >= len(raw.Options) {
		return nil, fmt.Errorf("correct_index %d out of range for %d options", raw.CorrectIndex, len(raw.Options))
	}

	q := &api.QuestionDraft{
		Statement:     raw.Statement,
		Difficulty:    raw.Difficulty,
		CategoryID:    input.Category.ID,
		Explanation:   raw.Explanation,
		IsAIGenerated: true,
	}
	for i, text := range raw.Options {
		q.Options = append(q.Options, api.OptionDraft{
			Text:      text,
			IsCorrect: i == raw.CorrectIndex,
		})
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
