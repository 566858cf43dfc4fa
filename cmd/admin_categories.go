package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var adminCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage question categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
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

		categories, err := client.Categories(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		if len(categories) == 0 {
			fmt.Println("No categories yet.")
			return nil
		}

		fmt.Printf("%-5s  %-24s  %s\n", "ID", "Name", "Description")
		fmt.Println(strings.Repeat("─", 72))
		for _, c := range categories {
			fmt.Printf("%-5d  %-24s  %s\n", c.ID, c.Name, c.Description)
		}
		return nil
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		description, _ := cmd.Flags().GetString("description")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		client, err := adminClient(ctx, cmd, st)
		if err != nil {
			return err
		}

		c, err := client.CreateCategory(ctx, args[0], description)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		fmt.Printf("Created category %d (%s).\n", c.ID, c.Name)
		return nil
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
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

		if err := client.DeleteCategory(ctx, id); err != nil {
			return fmt.Errorf("delete category %d: %w", id, err)
		}
		fmt.Printf("Deleted category %d.\n", id)
		return nil
	},
}

func init() {
	categoriesCreateCmd.Flags().String("description", "", "What the category covers")

	adminCategoriesCmd.AddCommand(categoriesListCmd)
	adminCategoriesCmd.AddCommand(categoriesCreateCmd)
	adminCategoriesCmd.AddCommand(categoriesDeleteCmd)
}
