package rule

import (
	"github.com/hupe1980/defectgo/internal/atomset"
	"github.com/hupe1980/defectgo/model"
	"github.com/hupe1980/defectgo/snapshot"
)

// SurfaceSource reports whether atom j counts toward another atom's
// surface-neighbor quorum. Two implementations exist: provisional flags
// computed from raw descriptors only (deterministic, parallelizable) and
// a live label reader for the legacy order-dependent single-pass mode.
type SurfaceSource interface {
	SurfaceQualifying(j int) bool
}

// directlySurface reports whether atom i satisfies the direct surface
// rule from its own descriptors: non-BCC structure and coordination at
// most surfaceMaxCoordination.
func directlySurface(snap *snapshot.Snapshot, i int) bool {
	return snap.StructureType(i) != model.StructureTypeBCC && snap.Coordination(i) <= surfaceMaxCoordination
}

// Provisional is a SurfaceSource over flags precomputed from raw
// descriptors. It makes the surface rule independent of evaluation
// order.
type Provisional struct {
	flags *atomset.Set
}

// NewProvisional computes the surface-qualifying flag for every atom of
// the snapshot.
func NewProvisional(snap *snapshot.Snapshot) *Provisional {
	return &Provisional{
		flags: atomset.Collect(snap.Len(), func(i int) bool {
			return directlySurface(snap, i)
		}),
	}
}

// SurfaceQualifying implements SurfaceSource.
func (p *Provisional) SurfaceQualifying(j int) bool {
	return p.flags.Contains(j)
}

// LabelReader is a SurfaceSource that reads the live label array. An
// atom qualifies if it has already been
// labeled Surface or satisfies the direct surface rule. Results depend on
// evaluation order; use only with a strict ascending sequential pass.
type LabelReader struct {
	snap   *snapshot.Snapshot
	labels []model.Label
}

// NewLabelReader creates a LabelReader over the given label array.
func NewLabelReader(snap *snapshot.Snapshot, labels []model.Label) *LabelReader {
	return &LabelReader{snap: snap, labels: labels}
}

// SurfaceQualifying implements SurfaceSource.
func (r *LabelReader) SurfaceQualifying(j int) bool {
	return r.labels[j] == model.LabelSurface || directlySurface(r.snap, j)
}
