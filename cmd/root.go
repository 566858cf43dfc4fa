package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizrush",
	Short: "Fast-paced trivia in your terminal",
	Long:  "QuizRush — adaptive-difficulty trivia game client with an admin back office for the question bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A project .env may carry QUIZRUSH_API_URL and LLM keys.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("api", "", "Backend base URL (overrides QUIZRUSH_API_URL env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZRUSH_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(adminCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZRUSH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveAPIBaseURL returns the backend base URL using the --api flag,
// then QUIZRUSH_API_URL. Empty means the client's built-in default.
func resolveAPIBaseURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		return u
	}
	return os.Getenv("QUIZRUSH_API_URL")
}
