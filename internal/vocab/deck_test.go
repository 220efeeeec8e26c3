package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinStore(t *testing.T) {
	s := BuiltinStore()
	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}

	first := s.At(0)
	if first.Source != "slaw" || first.Target != "hello" || first.Category != CategoryGreetings {
		t.Errorf("At(0) = %+v, want slaw/hello/greetings", first)
	}

	last := s.At(9)
	if last.Source != "mast" || last.Target != "yogurt" || last.Category != CategoryFood {
		t.Errorf("At(9) = %+v, want mast/yogurt/food", last)
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := BuiltinStore()
	all := s.All()
	all[0].Source = "changed"

	if s.At(0).Source != "slaw" {
		t.Errorf("mutating All() result changed the store: %q", s.At(0).Source)
	}
}

func TestParseDeck(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLen   int
		wantErr   bool
		errSubstr string
	}{
		{
			name: "valid",
			content: `- source: spas
  target: thanks
  category: greetings
- source: xwarin
  target: food
  category: food
`,
			wantLen: 2,
		},
		{
			name:    "empty file",
			content: "",
			wantLen: 0,
		},
		{
			name: "missing target",
			content: `- source: spas
  category: greetings
`,
			wantErr:   true,
			errSubstr: "entry 1: target is required",
		},
		{
			name: "missing several fields",
			content: `- source: spas
  target: thanks
  category: greetings
- target: water
`,
			wantErr:   true,
			errSubstr: "entry 2: source is required; category is required",
		},
		{
			name:    "not a list",
			content: "source: spas\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseDeck([]byte(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDeck() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.errSubstr != "" {
					if !errors.Is(err, ErrInvalidDeck) {
						t.Errorf("error %v is not ErrInvalidDeck", err)
					}
					if !strings.Contains(err.Error(), tt.errSubstr) {
						t.Errorf("error %q does not contain %q", err.Error(), tt.errSubstr)
					}
				}
				return
			}
			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}
		})
	}
}

func TestLoadDeck(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "deck.yml")
	content := "- source: av\n  target: water\n  category: drinks\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing deck: %v", err)
	}

	s, err := LoadDeck(path)
	if err != nil {
		t.Fatalf("LoadDeck() error = %v", err)
	}
	if s.Len() != 1 || s.At(0).Category != "drinks" {
		t.Errorf("LoadDeck() = %+v, want one drinks record", s.All())
	}

	if _, err := LoadDeck(filepath.Join(tmpDir, "missing.yml")); err == nil {
		t.Error("LoadDeck() on missing file should return error")
	}
}
