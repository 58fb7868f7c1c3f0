package defectgo

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hupe1980/defectgo/model"
	"github.com/hupe1980/defectgo/neighbor"
	"github.com/hupe1980/defectgo/snapshot"
	"github.com/hupe1980/defectgo/testutil"
)

// randomFixture derives a snapshot and adjacency from a seed. Every atom
// gets in-domain descriptors and a random sparse neighborhood.
func randomFixture(seed int64, n int) (*snapshot.Snapshot, [][]int) {
	rng := testutil.NewRNG(seed)

	b := testutil.NewSnapshotBuilder(n)
	for i := 0; i < n; i++ {
		b.Atom(i,
			rng.Intn(17),
			rng.Float64()*10,
			model.StructureType(rng.Intn(5)),
		)
	}

	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		degree := rng.Intn(n)
		seen := make(map[int]bool, degree)
		for d := 0; d < degree; d++ {
			j := rng.Intn(n)
			if j != i && !seen[j] {
				seen[j] = true
				adjacency[i] = append(adjacency[i], j)
			}
		}
	}

	return b.Build(), adjacency
}

// TestClassifierInvariants verifies the properties that must hold for
// every valid input, whatever the descriptor composition.
func TestClassifierInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	classify := func(seed int64, n, workers int) ([]model.Label, error) {
		snap, adjacency := randomFixture(seed, n)
		c, err := New(snap, neighbor.NewStatic(adjacency), WithParallelism(workers))
		if err != nil {
			return nil, err
		}
		result, err := c.Classify(context.Background())
		if err != nil {
			return nil, err
		}
		return result.Labels(), nil
	}

	properties.Property("every atom gets exactly one valid label", prop.ForAll(
		func(seed int64, n int) bool {
			labels, err := classify(seed, n, 0)
			if err != nil {
				return false
			}
			if len(labels) != n {
				return false
			}
			for _, l := range labels {
				if !l.Valid() {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 48),
	))

	properties.Property("classification is idempotent", prop.ForAll(
		func(seed int64, n int) bool {
			first, err := classify(seed, n, 0)
			if err != nil {
				return false
			}
			second, err := classify(seed, n, 0)
			if err != nil {
				return false
			}
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 48),
	))

	properties.Property("output is independent of parallelism", prop.ForAll(
		func(seed int64, n int) bool {
			serial, err := classify(seed, n, 1)
			if err != nil {
				return false
			}
			parallel, err := classify(seed, n, 6)
			if err != nil {
				return false
			}
			for i := range serial {
				if serial[i] != parallel[i] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 48),
	))

	properties.Property("perfect lattice sites stay bulk below the twin threshold", prop.ForAll(
		func(seed int64, n int) bool {
			snap, adjacency := randomFixture(seed, n)
			c, err := New(snap, neighbor.NewStatic(adjacency))
			if err != nil {
				return false
			}
			result, err := c.Classify(context.Background())
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				if snap.IsPerfectLattice(i) && snap.Centrosymmetry(i) <= 8 {
					if result.Label(i) != model.LabelBulk {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 48),
	))

	properties.TestingRun(t)
}
