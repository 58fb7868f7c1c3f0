package rule

import (
	"github.com/hupe1980/defectgo/model"
	"github.com/hupe1980/defectgo/neighbor"
	"github.com/hupe1980/defectgo/snapshot"
)

// Classification thresholds. All comparisons against them are exact;
// see the package documentation.
const (
	// surfaceMaxCoordination is the highest coordination the direct
	// surface rule accepts for a non-BCC atom.
	surfaceMaxCoordination = 11
	// surfaceNeighborQuorum is the number of surface-qualifying
	// neighbors that promotes a higher-coordinated non-BCC atom.
	surfaceNeighborQuorum = 4

	// vacancyCSPLow bounds the low-centrosymmetry mono-vacancy branch.
	vacancyCSPLow = 1.0
	// vacancyCSPHigh is the disturbed-site centrosymmetry threshold
	// shared by the vacancy neighbor counts.
	vacancyCSPHigh = 4.0

	// twinCSP13 is the centrosymmetry threshold of the coordination-13
	// twin branch.
	twinCSP13 = 4.5
	// twinCSP14 is the unconditional twin threshold at coordination 14.
	twinCSP14 = 8.0
)

// predicate pairs a defect label with its matcher. Matchers are pure
// functions of the atom's descriptors and its filtered neighbor set.
type predicate struct {
	label model.Label
	match func(i int, neighbors []int) bool
}

// Evaluator classifies single atoms by running the fixed decision chain.
// It is stateless apart from its read-only collaborators and safe for
// concurrent use when the SurfaceSource is.
type Evaluator struct {
	snap    *snapshot.Snapshot
	agg     *neighbor.Aggregator
	surface SurfaceSource
	chain   []predicate
}

// NewEvaluator creates an Evaluator over the given snapshot, aggregator
// and surface source.
func NewEvaluator(snap *snapshot.Snapshot, agg *neighbor.Aggregator, surface SurfaceSource) *Evaluator {
	e := &Evaluator{
		snap:    snap,
		agg:     agg,
		surface: surface,
	}
	e.chain = []predicate{
		{model.LabelSurface, e.matchSurface},
		{model.LabelDislocation, e.matchDislocation},
		{model.LabelVacancy, e.matchVacancy},
		{model.LabelTwin, e.matchTwin},
		{model.LabelPlanarFault, e.matchPlanarFault},
	}
	return e
}

// Evaluate returns the defect label of atom i.
//
// Atoms carrying the perfect BCC signature short-circuit to Bulk without
// a neighbor query, except that a centrosymmetry above twinCSP14 marks a
// twin boundary even on a BCC-tagged site: at coordination 14 it is the
// centrosymmetry, not the structure tag, that separates bulk from twin.
func (e *Evaluator) Evaluate(i int) (model.Label, error) {
	if e.snap.IsPerfectLattice(i) {
		if e.snap.Centrosymmetry(i) > twinCSP14 {
			return model.LabelTwin, nil
		}
		return model.LabelBulk, nil
	}

	neighbors, err := e.agg.Of(i)
	if err != nil {
		return model.LabelUnidentified, err
	}

	for _, p := range e.chain {
		if p.match(i, neighbors) {
			return p.label, nil
		}
	}
	return model.LabelUnidentified, nil
}

// matchSurface implements the surface rule: a non-BCC atom is a surface
// atom when its coordination is at most surfaceMaxCoordination, or when
// at least surfaceNeighborQuorum of its neighbors are themselves
// surface-qualifying.
func (e *Evaluator) matchSurface(i int, neighbors []int) bool {
	if e.snap.StructureType(i) == model.StructureTypeBCC {
		return false
	}
	if e.snap.Coordination(i) <= surfaceMaxCoordination {
		return true
	}
	count := 0
	for _, j := range neighbors {
		if e.surface.SurfaceQualifying(j) {
			count++
		}
	}
	return count >= surfaceNeighborQuorum
}

// matchDislocation implements the dislocation rule over the neighbor
// coordination spectrum.
func (e *Evaluator) matchDislocation(i int, neighbors []int) bool {
	coord := e.snap.Coordination(i)
	switch {
	case coord >= 12 && coord != model.PerfectCoordination:
		n14 := e.agg.CountCoord(neighbors, model.PerfectCoordination)
		return len(neighbors)-n14 > n14
	case coord == model.PerfectCoordination:
		nCore := e.agg.CountWhere(neighbors, func(d snapshot.Descriptors) bool {
			return d.Coordination >= 12 && d.Coordination != model.PerfectCoordination
		})
		n14 := e.agg.CountCoord(neighbors, model.PerfectCoordination)
		return nCore >= 4 && n14 <= 6
	}
	return false
}

// matchVacancy implements the mono- and di-vacancy signatures over
// (coordination, centrosymmetry).
func (e *Evaluator) matchVacancy(i int, neighbors []int) bool {
	coord := e.snap.Coordination(i)
	csp := e.snap.Centrosymmetry(i)
	switch {
	case coord == 13 && csp < vacancyCSPLow:
		n13 := e.agg.CountCoordCSPAbove(neighbors, 13, vacancyCSPHigh)
		n12 := e.agg.CountCoordCSPAbove(neighbors, 12, vacancyCSPHigh)
		return n13 == 4 || (n13 == 2 && n12 == 2)
	case coord == 13 && csp > vacancyCSPHigh:
		return e.agg.CountCoordCSPAbove(neighbors, 13, vacancyCSPHigh) >= 4
	case coord == 12 && csp > vacancyCSPHigh:
		n12 := e.agg.CountCoordCSPAbove(neighbors, 12, vacancyCSPHigh)
		n13 := e.agg.CountCoordCSPAbove(neighbors, 13, vacancyCSPHigh)
		return n12 == 1 && n13 == 4
	}
	return false
}

// matchTwin implements the twin-boundary rule.
func (e *Evaluator) matchTwin(i int, neighbors []int) bool {
	coord := e.snap.Coordination(i)
	csp := e.snap.Centrosymmetry(i)
	switch {
	case coord == 13 && csp > twinCSP13:
		return e.agg.CountCoord(neighbors, 13) == 5 && e.agg.CountCoord(neighbors, 14) == 2
	case coord == model.PerfectCoordination && csp > twinCSP14:
		return true
	case coord == model.PerfectCoordination:
		return e.agg.CountCoord(neighbors, 13) >= 4 && e.agg.CountCoord(neighbors, 14) >= 2
	}
	return false
}

// matchPlanarFault implements the planar-fault rule for non-BCC atoms at
// coordination 12 and 13.
func (e *Evaluator) matchPlanarFault(i int, neighbors []int) bool {
	if e.snap.StructureType(i) == model.StructureTypeBCC {
		return false
	}
	n12 := e.agg.CountCoord(neighbors, 12)
	n13 := e.agg.CountCoord(neighbors, 13)
	switch e.snap.Coordination(i) {
	case 12:
		return n12 >= 3 && n12 <= 6 && n13 >= 7 && n13 <= 9
	case 13:
		return n12+n13 == 9 && n13 >= 7
	}
	return false
}
