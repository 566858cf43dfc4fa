package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var adminPlayersCmd = &cobra.Command{
	Use:   "players",
	Short: "Inspect registered players",
}

var playersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered players",
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

		players, err := client.ListPlayers(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		if len(players) == 0 {
			fmt.Println("No players registered yet.")
			return nil
		}

		fmt.Printf("%-5s  %-20s  %-4s  %s\n", "ID", "Name", "Age", "Registered")
		fmt.Println(strings.Repeat("─", 56))
		for _, p := range players {
			registered := ""
			if !p.CreatedAt.IsZero() {
				registered = p.CreatedAt.Local().Format("2006-01-02")
			}
			fmt.Printf("%-5d  %-20s  %-4d  %s\n", p.ID, clip(p.Name, 20), p.Age, registered)
		}
		return nil
	},
}

func init() {
	adminPlayersCmd.AddCommand(playersListCmd)
}
