package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/llm"
	"github.com/nmoreno/quizrush/internal/questiongen"
)

var adminGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate questions with AI",
	Long: `Asks the backend to generate a batch of questions server-side.
With --local, generation runs on this machine through the configured LLM
provider instead; accepted drafts are uploaded one by one and the token
cost is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		count, _ := cmd.Flags().GetInt("count")
		categoryID, _ := cmd.Flags().GetInt64("category")
		difficulty, _ := cmd.Flags().GetFloat64("difficulty")
		local, _ := cmd.Flags().GetBool("local")

		if count < 1 || count > 50 {
			return fmt.Errorf("--count must be 1-50, got %d", count)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		client, err := adminClient(ctx, cmd, st)
		if err != nil {
			return err
		}

		if !local {
			result, err := client.GenerateBatch(ctx, count, categoryID, difficulty)
			if err != nil {
				return fmt.Errorf("generate batch: %w", err)
			}
			fmt.Printf("Requested %d, created %d, rejected %d.\n",
				result.Requested, result.Created, result.Rejected)
			return nil
		}

		// Local path: generate through internal/llm, upload what validates.
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: %w", err)
			}
			cfg = discovered
		}
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("init LLM provider: %w", err)
		}

		category, err := lookupCategory(cmd, client, categoryID)
		if err != nil {
			return err
		}

		// The admin-configured prompt steers local generation too.
		prompt, err := client.PromptConfig(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load prompt config, using defaults: %v\n", err)
			prompt = api.PromptConfig{}
		}

		generator := questiongen.New(provider, questiongen.DefaultConfig())

		var prior []string
		created, rejected := 0, 0
		for i := 0; i < count; i++ {
			draft, err := generator.Generate(ctx, questiongen.GenerateInput{
				Category:        category,
				Difficulty:      difficulty,
				PriorStatements: prior,
				Prompt:          prompt,
			})
			if err != nil {
				var verr *questiongen.ValidationError
				if errors.As(err, &verr) {
					fmt.Fprintf(os.Stderr, "draft %d rejected: %v\n", i+1, verr)
					rejected++
					continue
				}
				return fmt.Errorf("generate draft %d: %w", i+1, err)
			}
			prior = append(prior, draft.Statement)

			if _, err := client.CreateQuestion(ctx, *draft); err != nil {
				fmt.Fprintf(os.Stderr, "upload failed for %q: %v\n", clip(draft.Statement, 40), err)
				rejected++
				continue
			}
			created++
			fmt.Printf("created: %s\n", clip(draft.Statement, 72))
		}

		fmt.Printf("\nGenerated %d, created %d, rejected %d.\n", count, created, rejected)
		printCostSummary(generator)
		return nil
	},
}

func lookupCategory(cmd *cobra.Command, client *api.Client, id int64) (api.Category, error) {
	if id == 0 {
		return api.Category{}, errors.New("--category is required for local generation")
	}
	categories, err := client.Categories(cmd.Context())
	if err != nil {
		return api.Category{}, fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return api.Category{}, fmt.Errorf("category %d not found", id)
}

func printCostSummary(g *questiongen.LLMGenerator) {
	model, in, out := g.UsageSummary()
	if model == "" {
		return
	}
	fmt.Printf("Tokens: %d in / %d out (%s)\n", in, out, model)
	if cost := llm.LookupCost(model); cost != nil {
		fmt.Printf("Estimated cost: %s\n", formatCost(cost.Cost(in, out)))
	}
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	adminGenerateCmd.Flags().Int("count", 5, "How many questions to generate")
	adminGenerateCmd.Flags().Int64("category", 0, "Category ID to generate for")
	adminGenerateCmd.Flags().Float64("difficulty", 2.0, "Target difficulty 1-5")
	adminGenerateCmd.Flags().Bool("local", false, "Generate on this machine through the configured LLM provider")
}
