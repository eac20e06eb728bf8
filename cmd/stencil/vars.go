package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/stencil/internal/cli"
	"github.com/jacksmith/stencil/internal/template"
	"github.com/spf13/cobra"
)

var varsCmd = &cobra.Command{
	Use:   "vars <index>",
	Short: "List a story's variables",
	Long: `List the variable names extracted from a story's text, in order
of first occurrence, together with their saved default values.

Examples:
  stencil vars 1`,
	Args: cobra.ExactArgs(1),
	RunE: runVars,
}

func init() {
	rootCmd.AddCommand(varsCmd)
}

func runVars(cmd *cobra.Command, args []string) error {
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

	names := template.Extract(s.Text)
	if len(names) == 0 {
		fmt.Printf("%s has no variables\n", s.Title)
		return nil
	}

	table := cli.NewTable()
	table.AddRow(cli.Gray("VARIABLE"), cli.Gray("DEFAULT"))
	for _, name := range names {
		def := s.Variables[name]
		if def == "" {
			def = cli.Gray("(empty)")
		}
		table.AddRow(cli.Cyan(name), def)
	}
	table.Render(os.Stdout)
	return nil
}
