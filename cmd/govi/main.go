// Package main is the entry point for the govi CLI.
package main

import (
	"os"

	"github.com/vhngoc/govi/cmd/govi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
