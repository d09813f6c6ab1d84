package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"womenhub/internal/assistant"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List Gemini models that support generateContent",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	if cfg.AI.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY is not set")
	}

	ctx := cmd.Context()
	g, err := assistant.NewGemini(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if err != nil {
		return err
	}

	names, err := g.ListModels(ctx)
	if err != nil {
		return err
	}
	slices.Sort(names)

	out := cmd.OutOrStdout()
	for _, n := range names {
		marker := " "
		if n == cfg.AI.Model {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, n)
	}
	return nil
}
