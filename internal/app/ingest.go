package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/chatlens/internal/analyzer"
	"github.com/blackwell-systems/chatlens/internal/config"
	"github.com/blackwell-systems/chatlens/internal/conversation"
	"github.com/blackwell-systems/chatlens/internal/output"
	"github.com/blackwell-systems/chatlens/internal/store"
)

var (
	ingestTitle   string
	ingestAnalyze bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.json>",
	Short: "Import a conversation from a JSON file",
	Long: `Import a conversation into the chatlens database. Two JSON shapes are
accepted: a bare message array, or {"title": ..., "messages": [...]}.

Each message needs a sender ("user" or "agent"; "ai"/"assistant"/"bot" are
accepted aliases), a text body ("text" or "message"), and optionally an
RFC3339 timestamp.

Examples:
  chatlens ingest support-case.json
  chatlens ingest support-case.json --title "Order 12345" --analyze`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestTitle, "title", "", "Conversation title (overrides title in the file)")
	ingestCmd.Flags().BoolVar(&ingestAnalyze, "analyze", false, "Analyze immediately after ingest")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	conv, err := conversation.Parse(data, ingestTitle)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.SaveConversation(conv); err != nil {
		return fmt.Errorf("saving conversation: %w", err)
	}

	if !ingestAnalyze {
		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(conv)
		}
		fmt.Printf("Ingested conversation %s (%d messages: %d user, %d agent)\n",
			truncateID(conv.ID), len(conv.Messages), len(conv.UserMessages()), len(conv.AgentMessages()))
		fmt.Printf("Run 'chatlens analyze %s' to score it.\n", conv.ID)
		return nil
	}

	engine, err := analyzer.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	rep, err := engine.Analyze(cmd.Context(), conv)
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

	fmt.Printf("Ingested conversation %s (%d messages)\n\n", truncateID(conv.ID), len(conv.Messages))
	printReport(rep)
	return nil
}
