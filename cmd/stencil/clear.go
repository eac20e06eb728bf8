package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stories",
	Long: `Delete every story in the collection. This cannot be undone.
Asks for confirmation unless --yes is passed.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	if r.Len() == 0 {
		fmt.Println("Nothing to clear")
		return nil
	}

	prompt := fmt.Sprintf("Delete all %d stories? This cannot be undone.", r.Len())
	if !clearYes && !confirm(prompt) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := r.Clear(); err != nil {
		return err
	}
	fmt.Println("All stories cleared")
	return nil
}
