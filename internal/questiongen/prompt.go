package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author writing trivia questions for a fast-paced quiz game.

Rules:
- Generate a single trivia question for the given category and difficulty.
- Use plain text. No markup, no numbering, no "Question:" prefixes.
- The statement must be clear, self-contained, and answerable without extra context.
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible, not obviously wrong.
- Difficulty 1 means common knowledge; difficulty 5 means specialist knowledge.
- The explanation should briefly say why the correct answer is right.
- Do not repeat any question from the "already generated" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category.Name)
	if input.Category.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.Category.Description)
	}
	fmt.Fprintf(&b, "Difficulty: %.1f\n", input.Difficulty)

	if t := strings.TrimSpace(input.Prompt.PromptText); t != "" {
		b.WriteString("\nAdditional instructions:\n")
		b.WriteString(t)
		b.WriteString("\n")
	}

	b.WriteString("\nAlready generated in this batch:\n")
	b.WriteString(buildDedup(input.PriorStatements, cfg.MaxPriorStatements))

	return b.String()
}

// buildDedup formats prior statements for the prompt, respecting the max limit.
// Returns "None" if there are no prior statements.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N statements.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, s := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}
