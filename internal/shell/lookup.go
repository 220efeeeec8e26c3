package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/kurdish-vocab/kvocab/internal/lookup"
)

// Lookup reads one line and reports the record whose source term equals it exactly.
func (s *Shell) Lookup() error {
	fmt.Fprint(s.out, "\nEnter a Kurdish word to look up: ")

	query, err := s.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading lookup query: %w", err)
	}

	pos := s.index.Find(query)
	if pos == lookup.NotFound {
		fmt.Fprintf(s.out, "Word not found: %s\n\n", query)
		return nil
	}

	r := s.words.At(pos)
	fmt.Fprint(s.out, "Found:\n")
	fmt.Fprintf(s.out, "  Kurdish: %s\n", r.Source)
	fmt.Fprintf(s.out, "  English: %s\n", r.Target)
	fmt.Fprintf(s.out, "  Category: %s\n\n", r.Category)
	return nil
}
