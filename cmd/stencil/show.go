package main

import (
	"fmt"

	"github.com/jacksmith/stencil/internal/cli"
	"github.com/jacksmith/stencil/internal/template"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show a story's full text",
	Long: `Show one story with its placeholder variables highlighted.

Examples:
  stencil show 2
  stencil show 2 --html > story.html`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showHTML bool

func init() {
	showCmd.Flags().BoolVar(&showHTML, "html", false, "emit escaped HTML with variable markers")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	i, err := parseStoryIndex(args[0], r)
	if err != nil {
		return err
	}
	s, err := r.At(i)
	if err != nil {
		return err
	}

	if showHTML {
		fmt.Println(template.Highlight(s.Text))
		return nil
	}

	fmt.Printf("%s\n\n", s.Title)
	// Highlight placeholders by substituting each one with a
	// colored copy of itself.
	highlight := func(name, raw string) string { return cli.Cyan(raw) }
	fmt.Println(template.Substitute(s.Text, nil, highlight))
	return nil
}
