package neighbor

import (
	"github.com/hupe1980/defectgo/internal/atomset"
	"github.com/hupe1980/defectgo/snapshot"
)

// Aggregator returns the filtered neighbor set of an atom and counting
// statistics over it. Atoms carrying the perfect BCC signature are
// excluded from every neighbor list; the exclusion is derived from the
// input descriptors once, so it is stable across atoms regardless of
// evaluation order. The aggregator is read-only and safe for concurrent
// use by multiple goroutines.
type Aggregator struct {
	snap     *snapshot.Snapshot
	finder   Finder
	cutoff   float64
	excluded *atomset.Set
}

// NewAggregator creates an Aggregator over the given snapshot and finder.
// The cutoff is derived from the snapshot's lattice constant.
func NewAggregator(snap *snapshot.Snapshot, finder Finder) *Aggregator {
	return &Aggregator{
		snap:     snap,
		finder:   finder,
		cutoff:   Cutoff(snap.LatticeConstant()),
		excluded: atomset.Collect(snap.Len(), snap.IsPerfectLattice),
	}
}

// CutoffRadius returns the derived neighbor-search cutoff.
func (a *Aggregator) CutoffRadius() float64 { return a.cutoff }

// Of returns the neighbor indices of atom i within the cutoff, with
// perfect-lattice atoms filtered out. A finder failure is returned as a
// *QueryError and aborts the whole pass upstream.
func (a *Aggregator) Of(i int) ([]int, error) {
	raw, err := a.finder.Neighbors(i, a.cutoff)
	if err != nil {
		return nil, NewQueryError(i, err)
	}
	filtered := make([]int, 0, len(raw))
	for _, j := range raw {
		if a.excluded.Contains(j) {
			continue
		}
		filtered = append(filtered, j)
	}
	return filtered, nil
}

// CountWhere counts the neighbors whose descriptors satisfy pred.
func (a *Aggregator) CountWhere(neighbors []int, pred func(d snapshot.Descriptors) bool) int {
	count := 0
	for _, j := range neighbors {
		if pred(a.snap.At(j)) {
			count++
		}
	}
	return count
}

// CountCoord counts the neighbors with the given coordination number.
func (a *Aggregator) CountCoord(neighbors []int, coord int) int {
	count := 0
	for _, j := range neighbors {
		if a.snap.Coordination(j) == coord {
			count++
		}
	}
	return count
}

// CountCoordCSPAbove counts the neighbors with the given coordination
// number and centrosymmetry strictly above threshold.
func (a *Aggregator) CountCoordCSPAbove(neighbors []int, coord int, threshold float64) int {
	count := 0
	for _, j := range neighbors {
		if a.snap.Coordination(j) == coord && a.snap.Centrosymmetry(j) > threshold {
			count++
		}
	}
	return count
}
