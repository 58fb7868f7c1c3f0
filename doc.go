// Package defectgo classifies every atom of a crystalline BCC snapshot
// into one of seven local-defect categories: bulk, surface, vacancy,
// dislocation, twin, planar fault or unidentified.
//
// The classifier consumes three precomputed per-atom descriptors
// (coordination number, centrosymmetry parameter and CNA structure tag)
// plus an external neighbor-query service, and runs a deterministic,
// priority-ordered rule evaluator over every atom. It does not compute
// descriptors, search for neighbors in space, or perform any I/O.
//
// # Quick Start
//
//	snap := snapshot.New(coordination, centrosymmetry, structureTypes, 3.16)
//
//	finder := neighbor.NewStatic(adjacency) // or any neighbor.Finder
//
//	c, err := defectgo.New(snap, finder,
//	    defectgo.WithColors(),
//	    defectgo.WithParallelism(4),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	result, err := c.Classify(ctx)
//	if err != nil {
//	    panic(err)
//	}
//	for i, label := range result.Labels() {
//	    fmt.Println(i, label)
//	}
//
// # Evaluation Modes
//
// By default the surface rule uses provisional surface flags computed
// from raw descriptors only, which makes the pass deterministic and
// parallelizable. WithSequentialSurface selects the legacy single-pass
// evaluation instead, in which surface labels propagate in index order.
//
// # Error Handling
//
// Malformed input (mismatched array lengths, negative coordination,
// unknown structure tags) aborts before any classification begins with
// an error wrapping ErrInvalidInput. Neighbor-finder failures abort the
// whole pass with an error wrapping ErrNeighborQuery; no partial output
// is ever returned.
package defectgo
