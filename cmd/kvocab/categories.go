package main

import (
	"fmt"
	"os"

	"github.com/kurdish-vocab/kvocab/internal/category"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category tree",
	Long: `Show the category tree.

Words are grouped under greetings, family and food. Words whose category
is anything else are left out of the tree and listed as orphans.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	words := mustLoadWords(mustResolveSettings())
	tree := category.Build(words)
	orphans := buildWordEntries(words, category.Orphans(words, tree))

	if !humanOutput {
		return outputJSON(CategoriesResponse{Tree: tree, Orphans: orphans})
	}

	category.Print(os.Stdout, tree)
	for _, leaf := range tree.Children {
		fmt.Printf("%s: %s\n", leaf.Name, formatPositions(leaf.Positions))
	}
	if len(orphans) > 0 {
		fmt.Println("\nNot in any category:")
		for _, e := range orphans {
			fmt.Printf("  %s\n", formatWordHuman(e))
		}
	}
	return nil
}
