// Package main is the entry point for the stencil CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "stencil - a keeper for fill-in text templates",
	Long: `stencil keeps a small collection of text templates ("stories")
with placeholder variables like {name} or {{name}}. Fill in values,
preview the result, and copy the finished text to your clipboard.

Stories are saved in a per-user store under ~/.stencil (override
with --dir or $STENCIL_HOME).`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// rootDir is the data directory from --dir; empty means use
// $STENCIL_HOME or the home directory.
var rootDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "data directory (default $STENCIL_HOME or home)")
	rootCmd.SetVersionTemplate("stencil version {{.Version}}\n")
}
