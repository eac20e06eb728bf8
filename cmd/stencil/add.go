package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/stencil/internal/cli"
	"github.com/jacksmith/stencil/internal/session"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new story",
	Long: `Add a new story to the collection.

The story text may contain placeholder variables in {name} or
{{name}} form; they are extracted automatically on save. Default
values for variables can be set with repeated --default flags.

Examples:
  stencil add --title "Thanks" --text "Thanks {name}!"
  stencil add --title "Invite" --text-file invite.txt --default senderName=Jack
  stencil add --title "Draft" -i`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addTitle       string
	addText        string
	addTextFile    string
	addInteractive bool
	addDefaults    []string
)

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "story title")
	addCmd.Flags().StringVar(&addText, "text", "", "story text")
	addCmd.Flags().StringVar(&addTextFile, "text-file", "", "read story text from a file")
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "write the story text in $EDITOR")
	addCmd.Flags().StringArrayVar(&addDefaults, "default", nil, "variable default as name=value (can be repeated)")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	text := addText
	if addTextFile != "" {
		data, err := os.ReadFile(addTextFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", addTextFile, err)
		}
		text = string(data)
	}
	if addInteractive {
		edited, err := cli.EditInEditor([]byte(text), ".txt")
		if err != nil {
			return err
		}
		text = string(edited)
	}

	e := session.NewEditor(r)
	e.SetTitle(addTitle)
	e.SetText(text)

	defaults, err := parseAssignments("--default", addDefaults)
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

	fmt.Printf("Added story %d: %s\n", r.Len(), story.Title)
	if names := e.Variables(); len(names) > 0 {
		fmt.Printf("Variables: %s\n", strings.Join(names, ", "))
	}
	return nil
}
