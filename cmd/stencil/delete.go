package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a story",
	Long: `Delete the story at the given index. Asks for confirmation
unless --yes is passed.

Examples:
  stencil delete 2
  stencil delete 2 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !deleteYes && !confirm(fmt.Sprintf("Delete story %d %q?", i+1, s.Title)) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := r.RemoveAt(i); err != nil {
		return err
	}
	fmt.Printf("Deleted story %d: %s\n", i+1, s.Title)
	return nil
}
