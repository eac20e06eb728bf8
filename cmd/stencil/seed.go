package main

import (
	"fmt"

	"github.com/jacksmith/stencil/internal/repo"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the built-in example stories",
	Long: `Replace the collection with the built-in example stories. The
examples are installed automatically on first run; use this command
to restore them later.

Refuses to overwrite a non-empty collection unless --force is passed.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

var seedForce bool

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "replace existing stories")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	r, _, err := openRepo()
	if err != nil {
		return err
	}

	if r.Len() > 0 && !seedForce {
		return fmt.Errorf("collection is not empty (%d stories); use --force to replace it", r.Len())
	}

	seeds := repo.Seed()
	if err := r.Reset(seeds); err != nil {
		return err
	}
	fmt.Printf("Installed %d example stories\n", len(seeds))
	return nil
}
