// Package app contains the Cobra command tree for chatlens.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/chatlens/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "chatlens",
	Short: "Quality analysis for user/agent conversations",
	Long: `chatlens inspects finished conversations between a human and an automated
agent and produces a structured quality report: clarity, relevance, accuracy,
completeness, sentiment, empathy, response time, resolution, escalation need,
fallback frequency, and a weighted overall score.

Ingest conversations from JSON, analyze them on demand or in batch, and browse
the accumulated reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("chatlens", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  ingest         Import a conversation from a JSON file")
		fmt.Println("  analyze        Analyze one conversation and store the report")
		fmt.Println("  batch          Analyze all pending conversations")
		fmt.Println("  conversations  List ingested conversations")
		fmt.Println("  reports        Browse analysis reports")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(output.AutoDetect)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/chatlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// truncateID shortens a UUID for display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
