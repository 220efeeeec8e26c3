package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kurdish-vocab/kvocab/internal/graph"
	"github.com/kurdish-vocab/kvocab/internal/storage"
	"github.com/kurdish-vocab/kvocab/internal/vocab"
)

// runScript feeds input to a shell over the built-in deck and returns its output.
func runScript(t *testing.T, input string, opts ...Option) string {
	t.Helper()

	var out bytes.Buffer
	sh := New(strings.NewReader(input), &out, vocab.BuiltinStore(), opts...)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

type fakeRecorder struct {
	sessions []storage.Session
	err      error
}

func (f *fakeRecorder) RecordSession(s storage.Session) (storage.Session, error) {
	if f.err != nil {
		return storage.Session{}, f.err
	}
	s.ID = "fake"
	f.sessions = append(f.sessions, s)
	return s, nil
}

func TestRun_ExitOption(t *testing.T) {
	out := runScript(t, "0\n")

	if strings.Count(out, "Kurdish Vocab Helper") != 1 {
		t.Errorf("menu shown %d times, want 1", strings.Count(out, "Kurdish Vocab Helper"))
	}
	if !strings.HasSuffix(out, "\nGoodbye, spas.\n") {
		t.Errorf("output does not end with farewell:\n%s", out)
	}
}

func TestRun_EndOfInputExits(t *testing.T) {
	out := runScript(t, "")
	if !strings.Contains(out, "Goodbye, spas.") {
		t.Errorf("end of input should say goodbye:\n%s", out)
	}
}

func TestRun_NonNumericInputRecovers(t *testing.T) {
	out := runScript(t, "abc\n1\n0\n")

	if !strings.Contains(out, "Invalid input. Please enter a number.") {
		t.Errorf("missing invalid input message:\n%s", out)
	}
	if got := strings.Count(out, "Choose an option: "); got != 3 {
		t.Errorf("menu shown %d times, want 3", got)
	}
	// Data is intact after the bad input.
	if !strings.Contains(out, "  slaw  =  hello  [greetings]") {
		t.Errorf("view all after bad input is missing records:\n%s", out)
	}
}

func TestRun_BadLineDiscarded(t *testing.T) {
	// Only the first token is read; the rest of the line is dropped.
	out := runScript(t, "abc 1\n0\n")
	if strings.Contains(out, "All Kurdish words:") {
		t.Errorf("trailing token on a rejected line was dispatched:\n%s", out)
	}
}

func TestRun_ExtraTokensOnLineIgnored(t *testing.T) {
	out := runScript(t, "1 5\n0\n")

	if !strings.Contains(out, "All Kurdish words:") {
		t.Errorf("first choice on the line was not run:\n%s", out)
	}
	if strings.Contains(out, "Kurdish city connections:") {
		t.Errorf("second token on the line was run as a choice:\n%s", out)
	}
}

func TestRun_UnknownOption(t *testing.T) {
	out := runScript(t, "7\n-1\n0\n")

	if got := strings.Count(out, "Invalid option. Try again."); got != 2 {
		t.Errorf("invalid option shown %d times, want 2", got)
	}
}

func TestRun_BlankLinesWaitForToken(t *testing.T) {
	out := runScript(t, "\n   \n0\n")

	if got := strings.Count(out, "Choose an option: "); got != 1 {
		t.Errorf("menu shown %d times, want 1", got)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := New(strings.NewReader("1\n"), &out, vocab.BuiltinStore())
	if err := sh.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestViewAll(t *testing.T) {
	out := runScript(t, "1\n0\n")

	want := "\nAll Kurdish words:\n" +
		"  slaw  =  hello  [greetings]\n" +
		"  roj bash  =  good morning  [greetings]\n" +
		"  choni  =  how are you  [greetings]\n" +
		"  bawk  =  father  [family]\n" +
		"  dayik  =  mother  [family]\n" +
		"  brak  =  brother  [family]\n" +
		"  xoshawistim  =  my love  [family]\n" +
		"  nan  =  bread  [food]\n" +
		"  aw  =  water  [food]\n" +
		"  mast  =  yogurt  [food]\n\n"
	if !strings.Contains(out, want) {
		t.Errorf("view all output missing expected listing:\n%s", out)
	}
}

func TestCategoryTree(t *testing.T) {
	out := runScript(t, "4\n0\n")

	want := "\nCategory tree:\n- Kurdish vocabulary\n  - greetings\n  - family\n  - food\n\n"
	if !strings.Contains(out, want) {
		t.Errorf("category tree output:\n%s", out)
	}
}

func TestCityConnections(t *testing.T) {
	out := runScript(t, "5\n0\n")

	want := "  Zakho: Duhok\n  Duhok: Zakho, Erbil\n  Erbil: Duhok, Silemani\n  Silemani: Erbil\n"
	if !strings.Contains(out, want) {
		t.Errorf("city connections output:\n%s", out)
	}
}

func TestCityConnections_CustomGraph(t *testing.T) {
	g := graph.New([]string{"Kirkuk", "Halabja"})
	g.AddUndirectedEdge(0, 1)
	g.AddUndirectedEdge(0, 9) // dropped

	out := runScript(t, "5\n0\n", WithGraph(g))
	if !strings.Contains(out, "  Kirkuk: Halabja\n  Halabja: Kirkuk\n") {
		t.Errorf("custom graph output:\n%s", out)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "exact match",
			query: "slaw",
			want:  []string{"Found:\n", "  Kurdish: slaw\n", "  English: hello\n", "  Category: greetings\n"},
		},
		{
			name:  "multi-word term",
			query: "roj bash",
			want:  []string{"  English: good morning\n"},
		},
		{
			name:  "case mismatch",
			query: "Slaw",
			want:  []string{"Word not found: Slaw\n"},
		},
		{
			name:  "surrounding spaces are not trimmed",
			query: " slaw",
			want:  []string{"Word not found:  slaw\n"},
		},
		{
			name:  "empty query",
			query: "",
			want:  []string{"Word not found: \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, "3\n"+tt.query+"\n0\n")
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("lookup %q output missing %q:\n%s", tt.query, w, out)
				}
			}
		})
	}
}

func TestLookup_CRLF(t *testing.T) {
	out := runScript(t, "3\r\nslaw\r\n0\r\n")
	if !strings.Contains(out, "  English: hello\n") {
		t.Errorf("CRLF input should still match:\n%s", out)
	}
}

func TestLookup_EndOfInput(t *testing.T) {
	out := runScript(t, "3\n")
	if !strings.Contains(out, "Word not found: \n") || !strings.Contains(out, "Goodbye, spas.") {
		t.Errorf("lookup at end of input:\n%s", out)
	}
}
