// Package neighbor provides access to the spatial neighbor topology of a
// snapshot and the filtered neighbor statistics the defect rules consume.
//
// Spatial search itself is owned by an external neighbor-finder primitive;
// this package consumes it through the Finder interface and layers the
// perfect-lattice exclusion rule and counting helpers on top.
package neighbor

import (
	"fmt"
	"math"
)

// Finder is the external neighbor-query service. Implementations return
// the indices of all atoms within cutoff distance of atom i, excluding i
// itself, in a deterministic order.
type Finder interface {
	Neighbors(i int, cutoff float64) ([]int, error)
}

// FinderFunc adapts a plain function to the Finder interface.
type FinderFunc func(i int, cutoff float64) ([]int, error)

// Neighbors implements Finder.
func (f FinderFunc) Neighbors(i int, cutoff float64) ([]int, error) {
	return f(i, cutoff)
}

// Compile-time checks to ensure the built-in finders satisfy Finder.
var _ Finder = (FinderFunc)(nil)
var _ Finder = (*Static)(nil)

// Static is a Finder over precomputed adjacency lists, for hosts that
// already ran their own spatial search. The cutoff argument is ignored;
// the lists are assumed to match the configured cutoff.
type Static struct {
	adjacency [][]int
}

// NewStatic creates a Static finder over the given adjacency lists.
// The lists are retained, not copied.
func NewStatic(adjacency [][]int) *Static {
	return &Static{adjacency: adjacency}
}

// Neighbors implements Finder.
func (s *Static) Neighbors(i int, _ float64) ([]int, error) {
	if i < 0 || i >= len(s.adjacency) {
		return nil, fmt.Errorf("atom index %d out of range [0, %d)", i, len(s.adjacency))
	}
	return s.adjacency[i], nil
}

// Cutoff derives the neighbor-search cutoff radius from the lattice
// constant: the second-nearest-neighbor shell distance for BCC,
// (√2 + 1)/2 × a.
func Cutoff(latticeConstant float64) float64 {
	return (math.Sqrt2 + 1) / 2 * latticeConstant
}

// QueryError wraps a neighbor-finder failure for a specific atom.
//
// The original underlying error can be accessed via errors.Unwrap.
type QueryError struct {
	Atom  int
	cause error
}

// NewQueryError creates a QueryError for the given atom.
func NewQueryError(atom int, cause error) *QueryError {
	return &QueryError{Atom: atom, cause: cause}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("neighbor query failed for atom %d: %v", e.Atom, e.cause)
}

func (e *QueryError) Unwrap() error { return e.cause }
