// Package cmd contains all CLI commands for the govi tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vhngoc/govi/internal/config"
	"github.com/vhngoc/govi/internal/engine"
	"github.com/vhngoc/govi/internal/method"
	"github.com/vhngoc/govi/internal/tui"
	"github.com/vhngoc/govi/internal/vietnamese"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "govi",
	Short: "Vietnamese input method engine for the terminal",
	Long: `govi restores Vietnamese diacritics from plain keystrokes.

It supports the two common typing methods:
  - Telex: tones on s f r x j, letter shapes via aa ee oo w dd
  - VNI:   tones on 1-5, letter shapes on 6-9

and both accent placement styles ("hoà" versus "hòa").

Running 'govi' without arguments launches the interactive typing mode.`,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/govi/config.yaml)")
	rootCmd.PersistentFlags().StringP("method", "m", "", "typing method: telex or vni")
	rootCmd.PersistentFlags().StringP("style", "s", "", "accent style: new or old")

	viper.BindPFlag("method", rootCmd.PersistentFlags().Lookup("method"))
	viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_file", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_file", filepath.Join(home, ".config", "govi", "config.yaml"))
	}

	viper.SetEnvPrefix("GOVI")
	viper.AutomaticEnv()
}

// loadUserConfig reads the config file named by the --config flag or
// its default location.
func loadUserConfig() (*config.Config, error) {
	return config.Load(viper.GetString("config_file"))
}

// resolveMethods builds the method list: the built-ins followed by any
// custom methods named in config. The returned index points at the
// method selected by flag, environment or config.
func resolveMethods(cfg *config.Config) ([]tui.NamedMethod, int, error) {
	methods := []tui.NamedMethod{
		{Name: "telex", Def: method.Telex},
		{Name: "vni", Def: method.VNI},
	}
	for _, path := range cfg.MethodFiles {
		name, def, err := method.LoadDefinition(path)
		if err != nil {
			return nil, 0, err
		}
		methods = append(methods, tui.NamedMethod{Name: name, Def: def})
	}

	want := viper.GetString("method")
	if want == "" {
		want = cfg.Method
	}
	if want == "" {
		want = "telex"
	}
	for i, m := range methods {
		if m.Name == want {
			return methods, i, nil
		}
	}
	return nil, 0, fmt.Errorf("unknown input method %q", want)
}

// resolveStyle picks the accent style from flag, environment or config.
func resolveStyle(cfg *config.Config) (vietnamese.AccentStyle, error) {
	name := viper.GetString("style")
	if name == "" {
		name = cfg.Style
	}
	return engine.ParseStyle(name)
}
