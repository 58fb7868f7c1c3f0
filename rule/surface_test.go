package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/defectgo/model"
	"github.com/hupe1980/defectgo/snapshot"
)

func surfaceSnapshot() *snapshot.Snapshot {
	return snapshot.New(
		[]int{10, 12, 14, 11},
		[]float64{0, 0, 0, 0},
		[]model.StructureType{
			model.StructureTypeOther, // qualifying
			model.StructureTypeOther, // too coordinated
			model.StructureTypeBCC,   // perfect
			model.StructureTypeBCC,   // low coordination but BCC
		},
		3.16,
	)
}

func TestProvisional(t *testing.T) {
	p := NewProvisional(surfaceSnapshot())

	assert.True(t, p.SurfaceQualifying(0))
	assert.False(t, p.SurfaceQualifying(1), "coordination 12 exceeds the direct rule")
	assert.False(t, p.SurfaceQualifying(2))
	assert.False(t, p.SurfaceQualifying(3), "BCC tag never qualifies directly")
}

func TestLabelReader(t *testing.T) {
	snap := surfaceSnapshot()
	labels := make([]model.Label, snap.Len())

	r := NewLabelReader(snap, labels)

	assert.True(t, r.SurfaceQualifying(0), "raw descriptors qualify")
	assert.False(t, r.SurfaceQualifying(1))

	// A label written earlier in the pass qualifies atom 1 afterwards.
	labels[1] = model.LabelSurface
	assert.True(t, r.SurfaceQualifying(1))
}
