package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/EmotionAnalyzer/internal/models"
	"github.com/Rorical/EmotionAnalyzer/internal/presenter"
)

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "Show recent analyses",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLog(debug, os.Stderr, true)

		store, closeStore, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		printHistory(cmd.OutOrStdout(), store.Entries(), time.Now())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func printHistory(w io.Writer, entries []models.HistoryEntry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No recent analyses")
		return
	}
	for _, entry := range entries {
		card := presenter.Card(entry, now)
		fmt.Fprintf(w, "%s %-9s %-9s %q\n", card.Icon, card.Badge, card.When, card.Preview)
	}
}
