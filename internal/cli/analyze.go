package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/color-analyzer/internal/usecase"
)

var (
	analyzeStyle     string
	analyzeFormality string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze a local image file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args[0], analyzeStyle, analyzeFormality)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeStyle, "style", "subtle", "style preference (subtle, bold)")
	analyzeCmd.Flags().StringVar(&analyzeFormality, "formality", "casual", "formality level (casual, professional)")
}

func runAnalyze(cmd *cobra.Command, path, style, formality string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	uc := usecase.NewAnalysisUseCase(zap.NewNop())
	_, result, err := uc.Analyze(ctx, style, formality, data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Undertone: %s\n", result.Undertone)
	fmt.Fprintln(out, "Colors:")
	for _, c := range result.Colors {
		fmt.Fprintf(out, "  %s %s\n", c.Hex, c.Name)
	}
	fmt.Fprintln(out, "Outfits:")
	for _, o := range result.Outfits {
		fmt.Fprintf(out, "  - %s\n", o)
	}
	return nil
}
