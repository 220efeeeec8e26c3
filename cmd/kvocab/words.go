package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(wordsCmd)
}

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List all words in deck order",
	Args:  cobra.NoArgs,
	RunE:  runWords,
}

func runWords(cmd *cobra.Command, args []string) error {
	words := mustLoadWords(mustResolveSettings())
	entries := buildWordEntries(words, nil)

	if humanOutput {
		for _, e := range entries {
			fmt.Println(formatWordHuman(e))
		}
		return nil
	}
	return outputJSON(entries)
}
