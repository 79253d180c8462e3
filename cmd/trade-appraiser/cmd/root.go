// Package cmd implements the CLI commands for trade-appraiser.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "trade-appraiser",
	Short: "Appraise vehicle trade-ins",
	Long: "An API-first service that prices reconditioning from inspection findings, " +
		"builds trade-in offer scenarios, and classifies each offer against KBB and the local market.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
