// Package lookup provides a fixed-bucket hash index from source term to record position.
package lookup

import (
	"github.com/kurdish-vocab/kvocab/internal/vocab"
)

const (
	// DefaultBuckets is the bucket count used by Build.
	DefaultBuckets = 101

	// NotFound is returned by Find when no entry matches the key.
	NotFound = -1

	hashMultiplier = 31
)

type entry struct {
	key string
	pos int
}

// Index maps a key to a position using separate chaining over a fixed number of buckets.
// It never resizes.
type Index struct {
	buckets [][]entry
	size    int
}

// New returns an empty index with n buckets. n < 1 is treated as 1.
func New(n int) *Index {
	if n < 1 {
		n = 1
	}
	return &Index{buckets: make([][]entry, n)}
}

// Build indexes every record of s by its source term.
// On duplicate source terms the later position wins.
func Build(s *vocab.Store) *Index {
	idx := New(DefaultBuckets)
	for i := 0; i < s.Len(); i++ {
		idx.Insert(s.At(i).Source, i)
	}
	return idx
}

// Hash is a polynomial rolling hash (multiplier 31) over the bytes of key,
// reduced modulo n.
func Hash(key string, n int) int {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*hashMultiplier + uint64(key[i])
	}
	return int(h % uint64(n))
}

// Insert maps key to pos, overwriting any existing mapping for key.
func (x *Index) Insert(key string, pos int) {
	b := Hash(key, len(x.buckets))
	for i := range x.buckets[b] {
		if x.buckets[b][i].key == key {
			x.buckets[b][i].pos = pos
			return
		}
	}
	x.buckets[b] = append(x.buckets[b], entry{key: key, pos: pos})
	x.size++
}

// Find returns the position mapped to key, or NotFound.
// Keys match by exact byte equality.
func (x *Index) Find(key string) int {
	b := Hash(key, len(x.buckets))
	for _, e := range x.buckets[b] {
		if e.key == key {
			return e.pos
		}
	}
	return NotFound
}

// Len returns the number of distinct keys.
func (x *Index) Len() int {
	return x.size
}

// Buckets returns the fixed bucket count.
func (x *Index) Buckets() int {
	return len(x.buckets)
}
