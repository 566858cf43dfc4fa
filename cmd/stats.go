package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show local play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		history := st.HistoryRepo()
		summary, err := history.Summary(ctx)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}

		if summary.Sessions == 0 {
			fmt.Println("No games played yet. Run `quizrush play` to start.")
			return nil
		}

		fmt.Printf("Games played:  %d\n", summary.Sessions)
		fmt.Printf("High score:    %d\n", summary.HighScore)
		fmt.Printf("Answered:      %d (%d correct, %.0f%% accuracy)\n",
			summary.Answered, summary.Correct, summary.Accuracy()*100)
		fmt.Printf("Completed:     %d\n", summary.Completed)
		fmt.Printf("Game overs:    %d\n", summary.GameOvers)

		recent, err := history.Recent(ctx, 10)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println("\nRecent games:")
			for _, rec := range recent {
				fmt.Printf("  %s  %4d pts  %2d/%2d  %s\n",
					rec.PlayedAt.Format("2006-01-02 15:04"),
					rec.Score, rec.Correct, rec.Answered, rec.Outcome)
			}
		}
		return nil
	},
}
