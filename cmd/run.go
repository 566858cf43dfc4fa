package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/app"
	"github.com/nmoreno/quizrush/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := api.New(resolveAPIBaseURL(cmd))

	return app.Run(app.Deps{
		Client:  client,
		Idents:  st.IdentityRepo(),
		History: st.HistoryRepo(),
		Version: version,
	})
}
