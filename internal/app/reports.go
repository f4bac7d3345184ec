package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/chatlens/internal/config"
	"github.com/blackwell-systems/chatlens/internal/output"
	"github.com/blackwell-systems/chatlens/internal/store"
)

var (
	reportsConversation string
	reportsLimit        int
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse analysis reports",
	Long: `List stored analysis reports, newest first. A conversation accumulates
one report per analysis run.`,
	RunE: runReports,
}

func init() {
	reportsCmd.Flags().StringVar(&reportsConversation, "conversation", "", "Filter to one conversation ID")
	reportsCmd.Flags().IntVar(&reportsLimit, "limit", 20, "Maximum reports to show (0 = no limit)")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
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

	reports, err := db.ListReports(reportsConversation, reportsLimit)
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	if len(reports) == 0 {
		fmt.Println("No reports yet. Use 'chatlens analyze <conversation-id>' or 'chatlens batch'.")
		return nil
	}

	fmt.Println(output.Section("Analysis Reports"))
	fmt.Println()

	tbl := output.NewTable(
		"Conversation", "Created", "Overall", "Clarity", "Relev", "Accur",
		"Compl", "Empathy", "Sentiment", "Resolution", "Escalation", "Fallbacks",
	).AlignRight(2, 3, 4, 5, 6, 7, 11)

	for _, r := range reports {
		tbl.AddRow(
			truncateID(r.ConversationID),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f", r.Overall),
			fmt.Sprintf("%.1f", r.Clarity),
			fmt.Sprintf("%.1f", r.Relevance),
			fmt.Sprintf("%.1f", r.Accuracy),
			fmt.Sprintf("%.1f", r.Completeness),
			fmt.Sprintf("%.1f", r.Empathy),
			r.Sentiment,
			r.Resolution,
			r.EscalationNeed,
			fmt.Sprintf("%d", r.FallbackFrequency),
		)
	}
	tbl.Print()
	return nil
}
