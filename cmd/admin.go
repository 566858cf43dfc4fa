package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/auth"
	"github.com/nmoreno/quizrush/internal/store"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the question bank (requires an admin account)",
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the admin token",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return errors.New("--email is required")
		}

		password := os.Getenv("QUIZRUSH_ADMIN_PASSWORD")
		if password == "" {
			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		client := api.New(resolveAPIBaseURL(cmd))
		token, err := client.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CredentialRepo().Save(ctx, token, email); err != nil {
			return fmt.Errorf("store token: %w", err)
		}

		if claims, err := auth.Inspect(token); err == nil && !claims.ExpiresAt.IsZero() {
			fmt.Printf("Logged in as %s (token valid until %s).\n",
				email, claims.ExpiresAt.Local().Format("2006-01-02 15:04"))
			return nil
		}
		fmt.Printf("Logged in as %s.\n", email)
		return nil
	},
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored admin token",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CredentialRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	adminLoginCmd.Flags().String("email", "", "Admin account email")

	adminCmd.AddCommand(adminLoginCmd)
	adminCmd.AddCommand(adminLogoutCmd)
	adminCmd.AddCommand(adminQuestionsCmd)
	adminCmd.AddCommand(adminPlayersCmd)
	adminCmd.AddCommand(adminCategoriesCmd)
	adminCmd.AddCommand(adminPromptCmd)
	adminCmd.AddCommand(adminGenerateCmd)
	adminCmd.AddCommand(adminDashboardCmd)
}

// openStore opens the local database using the shared flag/env resolution.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// adminClient returns an API client carrying the stored admin token.
// The token's expiry claim is checked client-side so an expired session
// fails before the request goes out.
func adminClient(ctx context.Context, cmd *cobra.Command, st *store.Store) (*api.Client, error) {
	token, email, err := st.CredentialRepo().Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil, errors.New("not logged in; run `quizrush admin login` first")
	}
	if _, err := auth.Inspect(token); err != nil {
		if errors.Is(err, auth.ErrExpired) {
			return nil, fmt.Errorf("session for %s expired; run `quizrush admin login` again", email)
		}
		return nil, fmt.Errorf("stored token unusable: %w", err)
	}

	return api.New(resolveAPIBaseURL(cmd), api.WithToken(func() string { return token })), nil
}
