package main

import (
	"os"

	"github.com/kurdish-vocab/kvocab/internal/graph"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(citiesCmd)
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Show Kurdish city connections",
	Args:  cobra.NoArgs,
	RunE:  runCities,
}

func runCities(cmd *cobra.Command, args []string) error {
	g := graph.Cities()

	if humanOutput {
		g.PrintConnections(os.Stdout)
		return nil
	}
	return outputJSON(buildCityEntries(g))
}
