// Package atomset provides a compact set of atom indices backed by a
// 32-bit Roaring Bitmap. It wraps the official roaring implementation.
package atomset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a mutable set of atom indices.
// The zero value is not usable; call New.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Collect builds a set of all indices in [0, n) satisfying pred.
func Collect(n int, pred func(i int) bool) *Set {
	s := New()
	for i := 0; i < n; i++ {
		if pred(i) {
			s.rb.Add(uint32(i))
		}
	}
	return s
}

// Add adds atom index i to the set.
func (s *Set) Add(i int) {
	s.rb.Add(uint32(i))
}

// Remove removes atom index i from the set.
func (s *Set) Remove(i int) {
	s.rb.Remove(uint32(i))
}

// Contains checks if atom index i is in the set.
func (s *Set) Contains(i int) bool {
	return s.rb.Contains(uint32(i))
}

// Cardinality returns the number of indices in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}
