package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/importer"
)

var adminQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Manage questions",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		client, err := adminClient(ctx, cmd, st)
		if err != nil {
			return err
		}

		questions, err := client.AdminQuestions(ctx)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		if len(questions) == 0 {
			fmt.Println("No questions in the bank yet.")
			return nil
		}

		fmt.Printf("%-5s  %-4s  %-3s  %-3s  %-16s  %s\n",
			"ID", "Diff", "Ver", "AI", "Category", "Statement")
		fmt.Println(strings.Repeat("─", 100))
		for _, q := range questions {
			ver := " "
			if q.AdminVerified {
				ver = "✓"
			}
			ai := " "
			if q.IsAIGenerated {
				ai = "✦"
			}
			fmt.Printf("%-5d  %-4.1f  %-3s  %-3s  %-16s  %s\n",
				q.ID, q.Difficulty, ver, ai,
				clip(q.CategoryName, 16), clip(q.Statement, 48))
		}
		return nil
	},
}

var questionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a question",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		statement, _ := cmd.Flags().GetString("statement")
		categoryID, _ := cmd.Flags().GetInt64("category")
		difficulty, _ := cmd.Flags().GetFloat64("difficulty")
		correct, _ := cmd.Flags().GetInt("correct")
		options, _ := cmd.Flags().GetStringSlice("option")
		explanation, _ := cmd.Flags().GetString("explanation")

		if statement == "" {
			return fmt.Errorf("--statement is required")
		}
		if len(options) != 4 {
			return fmt.Errorf("exactly 4 --option flags required, got %d", len(options))
		}
		if correct < 1 || correct > 4 {
			return fmt.Errorf("--correct must be 1-4, got %d", correct)
		}

		draft := api.QuestionDraft{
			Statement:   statement,
			CategoryID:  categoryID,
			Difficulty:  difficulty,
			Explanation: explanation,
		}
		for i, text := range options {
			draft.Options = append(draft.Options, api.OptionDraft{
				Text:      text,
				IsCorrect: i == correct-1,
			})
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

		q, err := client.CreateQuestion(ctx, draft)
		if err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		fmt.Printf("Created question %d.\n", q.ID)
		return nil
	},
}

var questionsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a question's statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		statement, _ := cmd.Flags().GetString("statement")
		if statement == "" {
			return fmt.Errorf("--statement is required")
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

		if _, err := client.UpdateQuestion(ctx, id, statement); err != nil {
			return fmt.Errorf("update question %d: %w", id, err)
		}
		fmt.Printf("Updated question %d.\n", id)
		return nil
	},
}

var questionsVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Mark a question as verified (or unverified with --revoke)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		revoke, _ := cmd.Flags().GetBool("revoke")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		client, err := adminClient(ctx, cmd, st)
		if err != nil {
			return err
		}

		if _, err := client.VerifyQuestion(ctx, id, !revoke); err != nil {
			return fmt.Errorf("verify question %d: %w", id, err)
		}
		if revoke {
			fmt.Printf("Question %d marked unverified.\n", id)
		} else {
			fmt.Printf("Question %d verified.\n", id)
		}
		return nil
	},
}

var questionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
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

		if err := client.DeleteQuestion(ctx, id); err != nil {
			return fmt.Errorf("delete question %d: %w", id, err)
		}
		fmt.Printf("Deleted question %d.\n", id)
		return nil
	},
}

var questionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one question with its options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
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

		q, err := client.GetQuestion(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch question %d: %w", id, err)
		}

		fmt.Printf("Question %d (difficulty %.1f)\n", q.ID, q.Difficulty)
		if q.AdminVerified {
			fmt.Println("Verified by an admin.")
		}
		if q.IsAIGenerated {
			fmt.Println("AI-generated.")
		}
		fmt.Printf("\n%s\n\n", q.Statement)
		for i, opt := range q.Options {
			mark := " "
			if opt.IsCorrect != nil && *opt.IsCorrect {
				mark = "✓"
			}
			fmt.Printf("  %d. [%s] %s\n", i+1, mark, opt.Text)
		}
		return nil
	},
}

var questionsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-create questions from a CSV file",
	Long: `Reads a CSV with columns:
  statement, category_id, difficulty, correct (1-4), option1..option4 [, explanation]
Rows that fail validation are reported with their line number and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()

		result, err := importer.Parse(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		for _, rowErr := range result.Errors {
			fmt.Fprintf(os.Stderr, "skipped: %v\n", rowErr)
		}
		if len(result.Drafts) == 0 {
			return fmt.Errorf("no valid rows in %s", args[0])
		}

		if dryRun {
			fmt.Printf("%d rows valid, %d skipped. Nothing uploaded (--dry-run).\n",
				len(result.Drafts), len(result.Errors))
			return nil
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

		created := 0
		for _, draft := range result.Drafts {
			if _, err := client.CreateQuestion(ctx, draft); err != nil {
				fmt.Fprintf(os.Stderr, "upload failed for %q: %v\n", clip(draft.Statement, 40), err)
				continue
			}
			created++
		}
		fmt.Printf("Imported %d of %d questions (%d rows skipped).\n",
			created, len(result.Drafts), len(result.Errors))
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	questionsCreateCmd.Flags().String("statement", "", "Question text")
	questionsCreateCmd.Flags().Int64("category", 0, "Category ID")
	questionsCreateCmd.Flags().Float64("difficulty", 1.0, "Difficulty 1-5")
	questionsCreateCmd.Flags().Int("correct", 1, "1-based index of the correct option")
	questionsCreateCmd.Flags().StringSlice("option", nil, "Answer option (repeat 4 times)")
	questionsCreateCmd.Flags().String("explanation", "", "Shown to the player after answering")

	questionsUpdateCmd.Flags().String("statement", "", "New question text")
	questionsVerifyCmd.Flags().Bool("revoke", false, "Remove the verified mark")
	questionsImportCmd.Flags().Bool("dry-run", false, "Validate the CSV without uploading")

	adminQuestionsCmd.AddCommand(questionsListCmd)
	adminQuestionsCmd.AddCommand(questionsCreateCmd)
	adminQuestionsCmd.AddCommand(questionsUpdateCmd)
	adminQuestionsCmd.AddCommand(questionsVerifyCmd)
	adminQuestionsCmd.AddCommand(questionsShowCmd)
	adminQuestionsCmd.AddCommand(questionsDeleteCmd)
	adminQuestionsCmd.AddCommand(questionsImportCmd)
}
