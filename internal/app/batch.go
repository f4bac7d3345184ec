package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/chatlens/internal/analyzer"
	"github.com/blackwell-systems/chatlens/internal/config"
	"github.com/blackwell-systems/chatlens/internal/output"
	"github.com/blackwell-systems/chatlens/internal/store"
)

var batchAll bool

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze all pending conversations",
	Long: `Analyze every conversation without a report. With --all, re-analyze
every conversation in the database, appending fresh reports.

Suitable for a cron entry, e.g.:
  0 0 * * * chatlens batch`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchAll, "all", false, "Re-analyze already analyzed conversations too")
	rootCmd.AddCommand(batchCmd)
}

// batchResult is the JSON-serializable summary of one batch run.
type batchResult struct {
	Analyzed int               `json:"analyzed"`
	Skipped  int               `json:"skipped"`
	Reports  []analyzer.Report `json:"reports,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	engine, err := analyzer.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	var ids []string
	if batchAll {
		ids, err = db.ListConversationIDs()
	} else {
		ids, err = db.ListUnanalyzed()
	}
	if err != nil {
		return fmt.Errorf("listing conversations: %w", err)
	}

	var result batchResult
	for _, id := range ids {
		conv, err := db.GetConversation(id)
		if err != nil {
			return fmt.Errorf("loading conversation %s: %w", id, err)
		}
		if conv == nil || len(conv.Messages) == 0 {
			result.Skipped++
			if flagVerbose {
				fmt.Printf("skipping %s: no messages\n", truncateID(id))
			}
			continue
		}

		rep, err := engine.Analyze(cmd.Context(), *conv)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", id, err)
		}
		if _, err := db.AppendReport(rep); err != nil {
			return fmt.Errorf("storing report for %s: %w", id, err)
		}
		if err := db.MarkAnalyzed(id); err != nil {
			return fmt.Errorf("marking %s analyzed: %w", id, err)
		}

		result.Analyzed++
		result.Reports = append(result.Reports, rep)
		if !flagJSON {
			fmt.Printf("Analyzed %s: overall %.1f\n", truncateID(id), rep.Overall)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("\nCompleted: analyzed %d conversation(s), skipped %d.\n", result.Analyzed, result.Skipped)
	return nil
}
