package testutil

import (
	"github.com/hupe1980/defectgo/neighbor"
)

// Compile-time check to ensure BruteForceFinder satisfies the finder contract.
var _ neighbor.Finder = (*BruteForceFinder)(nil)

// Position is a 3D atom position.
type Position struct {
	X, Y, Z float64
}

// BruteForceFinder is a neighbor.Finder that scans all positions for
// every query. Exact and simple; intended for tests only.
type BruteForceFinder struct {
	positions []Position
}

// NewBruteForceFinder creates a finder over the given positions.
func NewBruteForceFinder(positions []Position) *BruteForceFinder {
	return &BruteForceFinder{positions: positions}
}

// Neighbors implements neighbor.Finder.
func (f *BruteForceFinder) Neighbors(i int, cutoff float64) ([]int, error) {
	p := f.positions[i]
	cutoff2 := cutoff * cutoff

	var out []int
	for j, q := range f.positions {
		if j == i {
			continue
		}
		dx, dy, dz := q.X-p.X, q.Y-p.Y, q.Z-p.Z
		if dx*dx+dy*dy+dz*dz <= cutoff2 {
			out = append(out, j)
		}
	}
	return out, nil
}

// FullAdjacency returns an adjacency in which every atom neighbors all
// others. Convenient for small rule-level fixtures where the spatial
// layout is irrelevant and only the descriptor composition matters.
func FullAdjacency(n int) [][]int {
	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j != i {
				adjacency[i] = append(adjacency[i], j)
			}
		}
	}
	return adjacency
}
