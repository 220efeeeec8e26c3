// Package shell runs the interactive menu loop over the vocabulary structures.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kurdish-vocab/kvocab/internal/category"
	"github.com/kurdish-vocab/kvocab/internal/graph"
	"github.com/kurdish-vocab/kvocab/internal/logging"
	"github.com/kurdish-vocab/kvocab/internal/lookup"
	"github.com/kurdish-vocab/kvocab/internal/storage"
	"github.com/kurdish-vocab/kvocab/internal/vocab"
	"go.uber.org/zap"
)

// Menu choices.
const (
	ChoiceExit       = 0
	ChoiceViewAll    = 1
	ChoicePractice   = 2
	ChoiceLookup     = 3
	ChoiceCategories = 4
	ChoiceCities     = 5
)

const menu = `==============================
  Kurdish Vocab Helper
==============================
1. View all words
2. Practice words in order
3. Look up a word
4. Show category tree
5. Show city connections
0. Exit
Choose an option: `

var errNotNumber = errors.New("not a number")

// Recorder stores finished practice sessions.
type Recorder interface {
	RecordSession(s storage.Session) (storage.Session, error)
}

// Shell holds the structures built at startup and the console it talks to.
// Nothing it holds is mutated after New returns.
type Shell struct {
	in  *bufio.Reader
	out io.Writer

	words  *vocab.Store
	index  *lookup.Index
	tree   category.Node
	cities *graph.Graph

	history Recorder
	logger  *zap.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger. A nil logger is replaced with a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) { s.logger = logging.OrNop(l) }
}

// WithHistory records each practice run in r.
func WithHistory(r Recorder) Option {
	return func(s *Shell) { s.history = r }
}

// WithGraph replaces the built-in city graph.
func WithGraph(g *graph.Graph) Option {
	return func(s *Shell) { s.cities = g }
}

// New builds the lookup index and category tree over words.
func New(in io.Reader, out io.Writer, words *vocab.Store, opts ...Option) *Shell {
	s := &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		words:  words,
		cities: graph.Cities(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.index = lookup.Build(words)
	s.tree = category.Build(words)

	s.logger.Debug("vocabulary loaded",
		zap.Int("records", words.Len()),
		zap.Int("indexed", s.index.Len()),
		zap.Ints("orphaned", category.Orphans(words, s.tree)))

	return s
}

// Run shows the menu and dispatches choices until the user exits, input ends,
// or ctx is cancelled. Reaching the end of input is a normal exit.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menu)

		choice, err := s.readChoice()
		switch {
		case errors.Is(err, io.EOF):
			s.farewell()
			return nil
		case errors.Is(err, errNotNumber):
			fmt.Fprint(s.out, "\nInvalid input. Please enter a number.\n\n")
			continue
		case err != nil:
			return fmt.Errorf("reading menu choice: %w", err)
		}

		s.logger.Debug("menu choice", zap.Int("choice", choice))

		if choice == ChoiceExit {
			s.farewell()
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			return err
		}
	}
}

func (s *Shell) dispatch(choice int) error {
	switch choice {
	case ChoiceViewAll:
		s.ViewAll()
	case ChoicePractice:
		if _, err := s.Practice(); err != nil {
			return err
		}
	case ChoiceLookup:
		if err := s.Lookup(); err != nil {
			return err
		}
	case ChoiceCategories:
		fmt.Fprint(s.out, "\nCategory tree:\n")
		category.Print(s.out, s.tree)
		fmt.Fprint(s.out, "\n")
	case ChoiceCities:
		s.cities.PrintConnections(s.out)
	default:
		fmt.Fprint(s.out, "\nInvalid option. Try again.\n\n")
	}
	return nil
}

func (s *Shell) farewell() {
	fmt.Fprint(s.out, "\nGoodbye, spas.\n")
}

// readChoice reads lines until one holds a token, then parses that first
// whitespace-delimited token as an integer. The rest of the line is discarded.
func (s *Shell) readChoice() (int, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, errNotNumber
		}
		return n, nil
	}
}

// readLine returns the next line without its terminator. A final line with
// no trailing newline is returned normally; io.EOF is only returned once no
// input is left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ViewAll lists every record in store order.
func (s *Shell) ViewAll() {
	fmt.Fprint(s.out, "\nAll Kurdish words:\n")
	for _, r := range s.words.All() {
		fmt.Fprintf(s.out, "  %s  =  %s  [%s]\n", r.Source, r.Target, r.Category)
	}
	fmt.Fprint(s.out, "\n")
}
