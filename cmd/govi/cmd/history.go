package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vhngoc/govi/internal/history"
)

var (
	historyTop   bool
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the word history",
	Long: `Show the words typed in interactive mode.

By default the most recent words are listed; --top orders by usage
count instead. --clear deletes the whole history.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyTop, "top", false, "order by usage count")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete the whole history")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	path, err := cfg.DefaultHistoryPath()
	if err != nil {
		return err
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	}

	var entries []history.Entry
	if historyTop {
		entries, err = store.Top(historyLimit)
	} else {
		entries, err = store.Recent(historyLimit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%6d  %-20s %s/%s  %s\n",
			e.Count, e.Word, e.Method, e.Style, e.LastUsed.Format("2006-01-02 15:04"))
	}
	return nil
}
