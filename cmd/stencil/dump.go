package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/stencil/internal/template"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export all stories as plain text",
	Long: `Export the whole collection as human-readable text for viewing
or sharing. This is a one-way export - it cannot be re-imported.

With --html, each story's text is emitted as escaped HTML with
placeholder variables wrapped in "variable" spans.

Examples:
  stencil dump
  stencil dump --html > stories.html`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var dumpHTML bool

func init() {
	dumpCmd.Flags().BoolVar(&dumpHTML, "html", false, "emit escaped HTML with variable markers")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	for i, s := range r.Stories() {
		if dumpHTML {
			fmt.Printf("<h3>%d. %s</h3>\n", i+1, template.Highlight(s.Title))
			fmt.Printf("<pre>%s</pre>\n\n", template.Highlight(s.Text))
			continue
		}

		fmt.Printf("# %d. %s\n", i+1, s.Title)
		if names := template.Extract(s.Text); len(names) > 0 {
			fmt.Printf("# Variables: %s\n", strings.Join(names, ", "))
		}
		fmt.Println()
		fmt.Println(s.Text)
		fmt.Println()
	}
	return nil
}
