// Package vocab defines the word records and the ordered store that holds them.
package vocab

// Record is one source-to-target word translation with a category tag.
type Record struct {
	Source   string `json:"source" yaml:"source" validate:"required"`     // Kurdish term
	Target   string `json:"target" yaml:"target" validate:"required"`     // English meaning
	Category string `json:"category" yaml:"category" validate:"required"` // e.g. greetings, family, food
}

// Store is an ordered, fixed-size sequence of records.
// A record is identified by its position, which is stable for the life of the store.
type Store struct {
	records []Record
}

// NewStore returns a store holding a copy of records in the given order.
func NewStore(records []Record) *Store {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Store{records: cp}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// At returns the record at position i.
// It panics if i is out of range, like a slice index.
func (s *Store) At(i int) Record {
	return s.records[i]
}

// All returns a copy of the records in store order.
func (s *Store) All() []Record {
	cp := make([]Record, len(s.records))
	copy(cp, s.records)
	return cp
}
