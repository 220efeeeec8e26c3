package main

import (
	"fmt"
	"os"

	"github.com/kurdish-vocab/kvocab/internal/lookup"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <term>",
	Short: "Look up a word by its exact Kurdish text",
	Long: `Look up a word by its exact Kurdish text.

Matching is exact: no trimming, case folding or partial matches.
Multi-word terms must be quoted, e.g. kvocab lookup "roj bash".
Exits with code 4 when the word is not found.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	words := mustLoadWords(mustResolveSettings())
	query := args[0]

	resp := LookupResponse{Query: query}
	if pos := lookup.Build(words).Find(query); pos != lookup.NotFound {
		entry := buildWordEntries(words, []int{pos})[0]
		resp.Found = true
		resp.Word = &entry
	}

	if humanOutput {
		if resp.Found {
			fmt.Printf("Kurdish:  %s\n", resp.Word.Source)
			fmt.Printf("English:  %s\n", resp.Word.Target)
			fmt.Printf("Category: %s\n", resp.Word.Category)
		} else {
			fmt.Printf("Word not found: %s\n", query)
		}
	} else if err := outputJSON(resp); err != nil {
		return err
	}

	if !resp.Found {
		os.Exit(ExitNotFound)
	}
	return nil
}
