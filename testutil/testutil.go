package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/defectgo/model"
	"github.com/hupe1980/defectgo/snapshot"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// SnapshotBuilder assembles descriptor arrays for test snapshots.
// Every atom starts as a perfect BCC site; individual atoms are then
// disturbed into defect signatures.
type SnapshotBuilder struct {
	coordination   []int
	centrosymmetry []float64
	structureType  []model.StructureType
	alat           float64
}

// NewSnapshotBuilder creates a builder for n atoms, all initialized to
// the perfect lattice signature (BCC, coordination 14, centrosymmetry 0).
func NewSnapshotBuilder(n int) *SnapshotBuilder {
	b := &SnapshotBuilder{
		coordination:   make([]int, n),
		centrosymmetry: make([]float64, n),
		structureType:  make([]model.StructureType, n),
		alat:           3.16, // BCC tungsten
	}
	for i := 0; i < n; i++ {
		b.coordination[i] = model.PerfectCoordination
		b.structureType[i] = model.StructureTypeBCC
	}
	return b
}

// LatticeConstant overrides the default lattice constant.
func (b *SnapshotBuilder) LatticeConstant(a float64) *SnapshotBuilder {
	b.alat = a
	return b
}

// Atom sets the full descriptor triple of atom i.
func (b *SnapshotBuilder) Atom(i int, coord int, csp float64, st model.StructureType) *SnapshotBuilder {
	b.coordination[i] = coord
	b.centrosymmetry[i] = csp
	b.structureType[i] = st
	return b
}

// Coordination sets the coordination number of atom i.
func (b *SnapshotBuilder) Coordination(i, coord int) *SnapshotBuilder {
	b.coordination[i] = coord
	return b
}

// Centrosymmetry sets the centrosymmetry parameter of atom i.
func (b *SnapshotBuilder) Centrosymmetry(i int, csp float64) *SnapshotBuilder {
	b.centrosymmetry[i] = csp
	return b
}

// StructureType sets the CNA tag of atom i.
func (b *SnapshotBuilder) StructureType(i int, st model.StructureType) *SnapshotBuilder {
	b.structureType[i] = st
	return b
}

// Build returns the assembled snapshot.
func (b *SnapshotBuilder) Build() *snapshot.Snapshot {
	return snapshot.New(b.coordination, b.centrosymmetry, b.structureType, b.alat)
}
