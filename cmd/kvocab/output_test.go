package main

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kurdish-vocab/kvocab/internal/graph"
	"github.com/kurdish-vocab/kvocab/internal/storage"
	"github.com/kurdish-vocab/kvocab/internal/vocab"
)

func TestBuildWordEntries(t *testing.T) {
	words := vocab.BuiltinStore()

	all := buildWordEntries(words, nil)
	if len(all) != 10 {
		t.Fatalf("buildWordEntries(nil) returned %d, want 10", len(all))
	}
	for i, e := range all {
		if e.Position != i {
			t.Errorf("entry %d has position %d", i, e.Position)
		}
	}

	some := buildWordEntries(words, []int{9, 0})
	want := []WordEntry{
		{Position: 9, Source: "mast", Target: "yogurt", Category: "food"},
		{Position: 0, Source: "slaw", Target: "hello", Category: "greetings"},
	}
	if !reflect.DeepEqual(some, want) {
		t.Errorf("buildWordEntries([9 0]) = %+v, want %+v", some, want)
	}

	if none := buildWordEntries(words, []int{}); len(none) != 0 {
		t.Errorf("buildWordEntries([]) = %+v, want empty", none)
	}
}

func TestBuildCityEntries(t *testing.T) {
	got := buildCityEntries(graph.Cities())
	want := []CityEntry{
		{Name: "Zakho", Neighbors: []string{"Duhok"}},
		{Name: "Duhok", Neighbors: []string{"Zakho", "Erbil"}},
		{Name: "Erbil", Neighbors: []string{"Duhok", "Silemani"}},
		{Name: "Silemani", Neighbors: []string{"Erbil"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildCityEntries() = %+v, want %+v", got, want)
	}
}

func TestFormatWordHuman(t *testing.T) {
	got := formatWordHuman(WordEntry{Source: "roj bash", Target: "good morning", Category: "greetings"})
	want := "roj bash  =  good morning  [greetings]"
	if got != want {
		t.Errorf("formatWordHuman() = %q, want %q", got, want)
	}
}

func TestFormatSessionHuman(t *testing.T) {
	s := storage.Session{
		ID:        "0123456789abcdef",
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		DeckSize:  10,
		Revealed:  2,
	}
	got := formatSessionHuman(s)
	if !strings.Contains(got, "2/10  quit  01234567") {
		t.Errorf("formatSessionHuman() = %q", got)
	}

	s.Completed = true
	s.Revealed = 10
	if got := formatSessionHuman(s); !strings.Contains(got, "10/10  completed") {
		t.Errorf("formatSessionHuman() = %q", got)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"12345678", "12345678"},
		{"123456789", "12345678"},
	}
	for _, tt := range tests {
		if got := shortID(tt.in); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPositions(t *testing.T) {
	if got := formatPositions([]int{3, 4, 5}); got != "3, 4, 5" {
		t.Errorf("formatPositions() = %q", got)
	}
	if got := formatPositions(nil); got != "" {
		t.Errorf("formatPositions(nil) = %q, want empty", got)
	}
}
