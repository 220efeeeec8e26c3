package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kurdish-vocab/kvocab/internal/storage"
	"go.uber.org/zap"
)

// PracticeResult reports how far a practice run got.
type PracticeResult struct {
	Revealed  int  // cards whose meaning was shown
	Completed bool // every card was shown
}

// Practice flips through every record once, in store order. A line of "q"
// or "Q" stops early; end of input does the same.
func (s *Shell) Practice() (PracticeResult, error) {
	if s.words.Len() == 0 {
		fmt.Fprint(s.out, "\nNo words to practice.\n\n")
		return PracticeResult{}, nil
	}

	queue := make([]int, s.words.Len())
	for i := range queue {
		queue[i] = i
	}

	started := time.Now().UTC()
	var res PracticeResult

	fmt.Fprint(s.out, "\nPractice mode. Press Enter to flip each card. Type q and Enter to quit.\n\n")

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		r := s.words.At(pos)

		fmt.Fprintf(s.out, "Kurdish: %s\n", r.Source)
		fmt.Fprint(s.out, "[Press Enter to see meaning, or q then Enter to quit]: ")

		line, err := s.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return res, fmt.Errorf("reading practice input: %w", err)
		}
		if errors.Is(err, io.EOF) || strings.EqualFold(line, "q") {
			fmt.Fprint(s.out, "\nExiting practice mode.\n\n")
			s.record(started, res)
			return res, nil
		}

		fmt.Fprintf(s.out, "  English: %s  [%s]\n\n", r.Target, r.Category)
		res.Revealed++
	}

	res.Completed = true
	fmt.Fprint(s.out, "You reached the end of the practice list.\n\n")
	s.record(started, res)
	return res, nil
}

// record stores the run when history is enabled. Failures are logged, not returned.
func (s *Shell) record(started time.Time, res PracticeResult) {
	if s.history == nil {
		return
	}

	sess, err := s.history.RecordSession(storage.Session{
		StartedAt: started,
		DeckSize:  s.words.Len(),
		Revealed:  res.Revealed,
		Completed: res.Completed,
	})
	if err != nil {
		s.logger.Warn("recording practice session", zap.Error(err))
		return
	}
	s.logger.Debug("practice session recorded",
		zap.String("id", sess.ID),
		zap.Int("revealed", sess.Revealed),
		zap.Bool("completed", sess.Completed))
}
