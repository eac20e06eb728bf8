package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/jacksmith/stencil/internal/cli"
	"github.com/jacksmith/stencil/internal/session"
	"github.com/jacksmith/stencil/internal/template"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <index>",
	Short: "Fill a story's variables and copy the result",
	Long: `Fill in a story's variables and copy the finished text to the
system clipboard. Values come from --var flags on top of the story's
saved defaults; variables left unfilled stay as written so you can
see what is missing.

A story with no variables is copied as-is.

Examples:
  stencil copy 2 --var name=Sam --var topic=roadmap
  stencil copy 2 --var name=Sam --preview
  stencil copy 2 --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

var (
	copyVars    []string
	copyPreview bool
	copyStdout  bool
)

func init() {
	copyCmd.Flags().StringArrayVar(&copyVars, "var", nil, "variable value as name=value (can be repeated)")
	copyCmd.Flags().BoolVar(&copyPreview, "preview", false, "print a preview with unfilled slots marked, copy nothing")
	copyCmd.Flags().BoolVar(&copyStdout, "stdout", false, "print the result instead of using the clipboard")

	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	i, err := parseStoryIndex(args[0], r)
	if err != nil {
		return err
	}

	p, err := session.NewPreview(r, i)
	if err != nil {
		return err
	}

	values, err := parseAssignments("--var", copyVars)
	if err != nil {
		return err
	}
	for name, value := range values {
		p.Set(name, value)
	}

	if copyPreview {
		missing := template.MarkMissing
		if cli.ColorEnabled() {
			// Same marking, but visually styled on a terminal.
			missing = func(name, raw string) string {
				return cli.Yellow(template.MarkMissing(name, raw))
			}
		}
		fmt.Println(p.Render(missing))
		return nil
	}

	text := p.Confirm()
	if copyStdout {
		fmt.Print(text)
		if len(text) > 0 && text[len(text)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w (try --stdout)", err)
	}
	fmt.Printf("Copied %q to clipboard\n", p.Story().Title)
	return nil
}
