package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vhngoc/govi/internal/engine"
)

var transformCmd = &cobra.Command{
	Use:   "transform [text...]",
	Short: "Transform keystroke text into Vietnamese",
	Long: `Transform plain keystroke text into Vietnamese with diacritics.

Text is taken from the arguments, or from standard input when no
arguments are given (one line at a time, so it works in pipes).

Examples:
  govi transform "viet65 nam"
  govi transform -m telex "xin chaof"
  echo "chuwongw trinhf" | govi transform`,
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
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
	def := methods[selected].Def

	if len(args) > 0 {
		out, err := engine.Transform(strings.Join(args, " "), def, style)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out, err := engine.Transform(scanner.Text(), def, style)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
