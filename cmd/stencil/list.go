package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/stencil/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stories",
	Long: `List the stories in the collection in display order.

Each row shows the story's index (used by show/edit/copy/delete),
its title, how many variables it has, and the first line of its text.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	if r.Len() == 0 {
		fmt.Println("No stories yet. Run 'stencil add' to create one, or 'stencil seed' for examples.")
		return nil
	}

	table := cli.NewTable()
	table.AddRow(cli.Gray("#"), cli.Gray("TITLE"), cli.Gray("VARS"), cli.Gray("TEXT"))
	for i, s := range r.Stories() {
		table.AddRow(
			fmt.Sprintf("%d", i+1),
			cli.Truncate(s.Title, 40),
			fmt.Sprintf("%d", len(s.Variables)),
			cli.Gray(cli.Excerpt(s.Text, 50)),
		)
	}
	table.Render(os.Stdout)
	return nil
}
