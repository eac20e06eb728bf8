package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/stencil/internal/cli"
	"github.com/jacksmith/stencil/internal/session"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an existing story",
	Long: `Edit the story at the given index. Only the fields you pass
change; everything else keeps its saved value. The variables map is
recomputed from the final text on save.

Examples:
  stencil edit 2 --title "New title"
  stencil edit 2 -i
  stencil edit 2 --default name=Jack`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editText        string
	editTextFile    string
	editInteractive bool
	editDefaults    []string
)

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new story title")
	editCmd.Flags().StringVar(&editText, "text", "", "new story text")
	editCmd.Flags().StringVar(&editTextFile, "text-file", "", "read new story text from a file")
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit the story text in $EDITOR")
	editCmd.Flags().StringArrayVar(&editDefaults, "default", nil, "variable default as name=value (can be repeated)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	i, err := parseStoryIndex(args[0], r)
	if err != nil {
		return err
	}

	e, err := session.EditExisting(r, i)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("title") {
		e.SetTitle(editTitle)
	}
	if cmd.Flags().Changed("text") {
		e.SetText(editText)
	}
	if editTextFile != "" {
		data, err := os.ReadFile(editTextFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", editTextFile, err)
		}
		e.SetText(string(data))
	}
	if editInteractive {
		edited, err := cli.EditInEditor([]byte(e.Text()), ".txt")
		if err != nil {
			return err
		}
		e.SetText(string(edited))
	}

	defaults, err := parseAssignments("--default", editDefaults)
	if err != nil {
		return err
	}
	for name, value := range defaults {
		e.SetDefault(name, value)
	}

	story, err := e.Save()
	if err != nil {
		return err
	}

	fmt.Printf("Updated story %d: %s\n", i+1, story.Title)
	if names := e.Variables(); len(names) > 0 {
		fmt.Printf("Variables: %s\n", strings.Join(names, ", "))
	}
	return nil
}
