// Package cli provides the command-line interface for the color analyzer.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "color-analyzer",
	Short: "Skin undertone analysis with color and outfit recommendations",
	Long: `color-analyzer classifies the skin undertone of a photo (warm, cool, or
neutral) and recommends a matching color palette and outfit suggestions.

Run it as an HTTP service with "serve" or analyze a local image directly
with "analyze".`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
}
