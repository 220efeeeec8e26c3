package main

import (
	"fmt"

	"github.com/kurdish-vocab/kvocab/internal/storage"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", DefaultHistoryLimit, "Maximum sessions to show (0 for all)")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent practice sessions",
	Long: `Show recent practice sessions, newest first.

History is recorded only when a database is configured:
  kvocab config history-db ~/.local/share/kvocab/history.db`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	db := mustOpenHistory(mustResolveSettings())
	defer db.Close()

	sessions, err := db.RecentSessions(historyLimit)
	if err != nil {
		exitWithError(ExitError, "reading history: %v", err)
	}
	summary, err := db.Summarize()
	if err != nil {
		exitWithError(ExitError, "reading history: %v", err)
	}

	if !humanOutput {
		if sessions == nil {
			sessions = []storage.Session{}
		}
		return outputJSON(HistoryResponse{Summary: summary, Sessions: sessions})
	}

	fmt.Printf("%d sessions, %d completed, %d cards revealed\n",
		summary.Sessions, summary.Completed, summary.Revealed)
	for _, s := range sessions {
		fmt.Println(formatSessionHuman(s))
	}
	return nil
}
