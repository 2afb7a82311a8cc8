package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the available typing methods",
	Long: `List the available typing methods: the built-in Telex and VNI
methods plus any custom methods declared in the config file via
method_files.`,
	RunE: runMethods,
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}

func runMethods(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	methods, selected, err := resolveMethods(cfg)
	if err != nil {
		return err
	}

	for i, m := range methods {
		marker := " "
		if i == selected {
			marker = "*"
		}

		keys := make([]string, 0, len(m.Def))
		for key := range m.Def {
			keys = append(keys, string(key))
		}
		sort.Strings(keys)

		fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s keys:", marker, m.Name)
		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), " %s", key)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
