package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gyanguru/internal/bankgen"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Draft quiz bank questions with an LLM",
	Long: "Drafts new multiple-choice quiz questions for one category and prints them " +
		"as YAML for review. Drafts never go into the game directly; a human curates " +
		"them into the built-in bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		count, _ := cmd.Flags().GetInt("count")
		outPath, _ := cmd.Flags().GetString("out")

		cfg, ok := bankgen.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured; set GYANGURU_LLM_PROVIDER and an API key")
		}

		ctx := cmd.Context()
		provider, err := bankgen.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		items, err := bankgen.NewGenerator(provider).Draft(ctx, category, count)
		if err != nil {
			return fmt.Errorf("draft questions: %w", err)
		}

		b, err := yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("encode drafts: %w", err)
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, b, 0o644); err != nil {
				return fmt.Errorf("write drafts: %w", err)
			}
			fmt.Printf("Wrote %d drafts to %s\n", len(items), outPath)
			return nil
		}
		fmt.Print(string(b))
		return nil
	},
}

func init() {
	bankCmd.Flags().String("category", "general", "Question category (general, culture, geography, sports, science, history)")
	bankCmd.Flags().Int("count", 5, "Number of questions to draft")
	bankCmd.Flags().String("out", "", "Write YAML to this file instead of stdout")
}
