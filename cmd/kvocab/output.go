package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kurdish-vocab/kvocab/internal/category"
	"github.com/kurdish-vocab/kvocab/internal/graph"
	"github.com/kurdish-vocab/kvocab/internal/storage"
	"github.com/kurdish-vocab/kvocab/internal/vocab"
)

// DefaultHistoryLimit is the default number of sessions shown by history.
const DefaultHistoryLimit = 20

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// WordEntry is a record with its position in the deck.
type WordEntry struct {
	Position int    `json:"position"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Category string `json:"category"`
}

// LookupResponse is the response for the lookup command.
type LookupResponse struct {
	Query string     `json:"query"`
	Found bool       `json:"found"`
	Word  *WordEntry `json:"word,omitempty"`
}

// CategoriesResponse is the response for the categories command.
type CategoriesResponse struct {
	Tree    category.Node `json:"tree"`
	Orphans []WordEntry   `json:"orphans"`
}

// CityEntry is one node of the city graph with its neighbors.
type CityEntry struct {
	Name      string   `json:"name"`
	Neighbors []string `json:"neighbors"`
}

// HistoryResponse is the response for the history command.
type HistoryResponse struct {
	Summary  storage.Summary   `json:"summary"`
	Sessions []storage.Session `json:"sessions"`
}

// buildWordEntries converts the given positions of words to WordEntry values.
// A nil positions slice means every record.
func buildWordEntries(words *vocab.Store, positions []int) []WordEntry {
	if positions == nil {
		positions = make([]int, words.Len())
		for i := range positions {
			positions[i] = i
		}
	}

	entries := make([]WordEntry, 0, len(positions))
	for _, pos := range positions {
		r := words.At(pos)
		entries = append(entries, WordEntry{
			Position: pos,
			Source:   r.Source,
			Target:   r.Target,
			Category: r.Category,
		})
	}
	return entries
}

// buildCityEntries lists each node of g with its neighbor names.
func buildCityEntries(g *graph.Graph) []CityEntry {
	entries := make([]CityEntry, g.Len())
	for i := range entries {
		entries[i] = CityEntry{Name: g.Name(i), Neighbors: g.Neighbors(i)}
	}
	return entries
}

// formatWordHuman formats a record as "source  =  target  [category]".
func formatWordHuman(e WordEntry) string {
	return fmt.Sprintf("%s  =  %s  [%s]", e.Source, e.Target, e.Category)
}

// formatSessionHuman formats a practice session as one line.
func formatSessionHuman(s storage.Session) string {
	status := "quit"
	if s.Completed {
		status = "completed"
	}
	return fmt.Sprintf("%s  %d/%d  %s  %s",
		s.StartedAt.Local().Format(time.DateTime), s.Revealed, s.DeckSize, status, shortID(s.ID))
}

// shortID returns the first 8 characters of an ID.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// formatPositions formats positions as a comma-separated list.
func formatPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ", ")
}
