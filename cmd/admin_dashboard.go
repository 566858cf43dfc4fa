package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show question-bank and play analytics",
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

		stats, err := client.Dashboard(ctx)
		if err != nil {
			return fmt.Errorf("load dashboard: %w", err)
		}

		fmt.Printf("Questions:      %d (%d verified, %d AI-generated)\n",
			stats.TotalQuestions, stats.VerifiedQuestions, stats.AIQuestions)
		fmt.Printf("Players:        %d\n", stats.TotalPlayers)
		fmt.Printf("Sessions:       %d (avg score %.1f)\n",
			stats.TotalSessions, stats.AvgSessionScore)
		if stats.QuestionsPerDay > 0 {
			fmt.Printf("Questions/day:  %.1f\n", stats.QuestionsPerDay)
		}
		return nil
	},
}
