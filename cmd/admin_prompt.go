package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreno/quizrush/internal/api"
)

var adminPromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage the AI generation prompt",
}

var promptShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured generation prompt",
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

		cfg, err := client.PromptConfig(ctx)
		if err != nil {
			return fmt.Errorf("get prompt config: %w", err)
		}

		fmt.Printf("Temperature: %.2f\n", cfg.Temperature)
		if cfg.PromptText == "" {
			fmt.Println("Prompt:      (default)")
			return nil
		}
		fmt.Printf("Prompt:\n%s\n", cfg.PromptText)
		return nil
	},
}

var promptSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the generation prompt and/or temperature",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		text, _ := cmd.Flags().GetString("text")
		temperature, _ := cmd.Flags().GetFloat64("temperature")
		if text == "" && !cmd.Flags().Changed("temperature") {
			return fmt.Errorf("nothing to set; pass --text and/or --temperature")
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

		// Start from the server copy so a partial set keeps the other field.
		cfg, err := client.PromptConfig(ctx)
		if err != nil {
			return fmt.Errorf("get prompt config: %w", err)
		}
		if text != "" {
			cfg.PromptText = text
		}
		if cmd.Flags().Changed("temperature") {
			cfg.Temperature = temperature
		}

		if err := client.UpdatePromptConfig(ctx, api.PromptConfig{
			PromptText:  cfg.PromptText,
			Temperature: cfg.Temperature,
		}); err != nil {
			return fmt.Errorf("update prompt config: %w", err)
		}
		fmt.Println("Prompt config updated.")
		return nil
	},
}

func init() {
	promptSetCmd.Flags().String("text", "", "Prompt text prepended to every generation request")
	promptSetCmd.Flags().Float64("temperature", 0.7, "Sampling temperature")

	adminPromptCmd.AddCommand(promptShowCmd)
	adminPromptCmd.AddCommand(promptSetCmd)
}
