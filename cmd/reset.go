package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored player identity",
	Long:  "Removes the locally stored player identity. The next game asks for a name again. Play history is kept.",
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

		if err := st.IdentityRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear identity: %w", err)
		}
		fmt.Println("Player identity cleared.")
		return nil
	},
}
