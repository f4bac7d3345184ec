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

var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "List ingested conversations",
	RunE:  runConversations,
}

func init() {
	rootCmd.AddCommand(conversationsCmd)
}

func runConversations(cmd *cobra.Command, args []string) error {
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

	summaries, err := db.ListConversations()
	if err != nil {
		return fmt.Errorf("listing conversations: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No conversations yet. Use 'chatlens ingest <file.json>' to import one.")
		return nil
	}

	fmt.Println(output.Section("Conversations"))
	fmt.Println()

	tbl := output.NewTable("ID", "Title", "Messages", "Analyzed", "Created").AlignRight(2)
	for _, s := range summaries {
		analyzed := "no"
		if s.Analyzed {
			analyzed = "yes"
		}
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		tbl.AddRow(
			truncateID(s.ID),
			title,
			fmt.Sprintf("%d", s.MessageCount),
			analyzed,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	tbl.Print()
	return nil
}
