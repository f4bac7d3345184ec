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

var analyzeCmd = &cobra.Command{
	Use:   "analyze <conversation-id>",
	Short: "Analyze one conversation and store the report",
	Long: `Run the analysis pipeline on a stored conversation and append the
resulting report. Reports accumulate: re-analyzing a conversation adds a new
report rather than overwriting the previous one.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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

	conv, err := db.GetConversation(args[0])
	if err != nil {
		return fmt.Errorf("loading conversation: %w", err)
	}
	if conv == nil {
		return fmt.Errorf("conversation %s not found", args[0])
	}

	engine, err := analyzer.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	rep, err := engine.Analyze(cmd.Context(), *conv)
	if err != nil {
		return fmt.Errorf("analyzing: %w", err)
	}

	if _, err := db.AppendReport(rep); err != nil {
		return fmt.Errorf("storing report: %w", err)
	}
	if err := db.MarkAnalyzed(conv.ID); err != nil {
		return fmt.Errorf("marking analyzed: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	printReport(rep)
	return nil
}

// printReport renders one report to stdout.
func printReport(rep analyzer.Report) {
	fmt.Println(output.Section(fmt.Sprintf("Report for conversation %s", truncateID(rep.ConversationID))))
	fmt.Println()
	fmt.Printf("  %-20s %s\n", "overall_score", output.ScoreBar(rep.Overall, 20))
	fmt.Println()

	line := func(name, value string) {
		fmt.Printf("  %-20s %s\n", name, value)
	}
	line("clarity_score", fmt.Sprintf("%.1f", rep.Clarity))
	line("relevance_score", fmt.Sprintf("%.1f", rep.Relevance))
	line("accuracy_score", fmt.Sprintf("%.1f", rep.Accuracy))
	line("completeness_score", fmt.Sprintf("%.1f", rep.Completeness))
	line("sentiment", output.SentimentBadge(rep.Sentiment))
	line("empathy_score", fmt.Sprintf("%.1f", rep.Empathy))
	line("response_time_avg", output.Seconds(rep.ResponseTimeAvg))
	line("resolution", output.ResolutionBadge(rep.Resolution))
	line("escalation_need", output.EscalationBadge(rep.EscalationNeed))
	line("fallback_frequency", fmt.Sprintf("%d (%.0f%% of agent turns)", rep.FallbackFrequency, rep.FallbackRate*100))
}
