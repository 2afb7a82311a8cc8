package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vhngoc/govi/internal/history"
	"github.com/vhngoc/govi/internal/tui"
)

var noHistory bool

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive typing mode",
	Long: `Launch the interactive typing mode.

Type plain keystrokes and watch them turn into Vietnamese as you go.
Tab switches the typing method, ctrl+t toggles the accent style.
Committed words are recorded in the word history unless --no-history
is given.`,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record typed words")
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	methods, selected, err := resolveMethods(cfg)
	if err != nil {
		return err
	}
	style, err := resolveStyle(cfg)
	if err != nil {
		return err
	}

	var store *history.Store
	if !noHistory {
		path, err := cfg.DefaultHistoryPath()
		if err == nil {
			// A broken history database should not block typing.
			store, _ = history.Open(path)
		}
		if store != nil {
			defer store.Close()
		}
	}

	text, err := tui.Run(methods, selected, style, store)
	if err != nil {
		return err
	}
	if text != "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}
