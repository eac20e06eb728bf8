package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the display theme",
	Long: `Resolve and persist the display theme.

Without an argument, the saved theme is shown (default: dark). With
an argument, that name overrides the saved value; unknown names fall
back to dark. The resolved theme is always saved, so it sticks for
the next run.

Known themes: dark, light, girly.

Examples:
  stencil theme
  stencil theme light`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	override := ""
	if len(args) == 1 {
		override = args[0]
	}

	theme, err := r.ResolveTheme(override)
	if err != nil {
		return err
	}
	fmt.Printf("Theme: %s\n", theme)
	return nil
}
