package main

import (
	"github.com/spf13/cobra"

	"github.com/bukkenlabs/bukken/internal/api"
	"github.com/bukkenlabs/bukken/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "bukken",
	Short: "Japanese real-estate PDF field extraction service",
	Long: `Bukken extracts structured real-estate data from Japanese property
listing PDFs using a hosted LLM.

An uploaded PDF is converted to plain text page by page, sent to the
configured model with a fixed extraction prompt, and the model's JSON
reply is returned to the caller as a downloadable file.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.bukken/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
