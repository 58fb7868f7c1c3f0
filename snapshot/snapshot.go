// Package snapshot provides a read-only view over the per-atom descriptor
// arrays of a single simulation frame.
//
// The descriptors (coordination number, centrosymmetry parameter and CNA
// structure tag) are computed by an upstream structural-analysis library;
// this package only validates and exposes them. A Snapshot is immutable
// for the duration of one classification pass.
package snapshot

import (
	"fmt"

	"github.com/hupe1980/defectgo/model"
)

// Descriptors bundles the per-atom input values a neighbor predicate
// may inspect.
type Descriptors struct {
	Coordination   int
	Centrosymmetry float64
	StructureType  model.StructureType
}

// Snapshot is an index-aligned, read-only view over the descriptor arrays
// of one frame. All slices must have equal length.
type Snapshot struct {
	coordination   []int
	centrosymmetry []float64
	structureType  []model.StructureType

	latticeConstant float64
}

// New creates a Snapshot over the given descriptor slices. The slices are
// retained, not copied; callers must not mutate them while the snapshot
// is in use. Call Validate before classification.
func New(coordination []int, centrosymmetry []float64, structureType []model.StructureType, latticeConstant float64) *Snapshot {
	return &Snapshot{
		coordination:    coordination,
		centrosymmetry:  centrosymmetry,
		structureType:   structureType,
		latticeConstant: latticeConstant,
	}
}

// Len returns the number of atoms in the snapshot.
func (s *Snapshot) Len() int { return len(s.coordination) }

// LatticeConstant returns the configured lattice constant.
func (s *Snapshot) LatticeConstant() float64 { return s.latticeConstant }

// Coordination returns the coordination number of atom i.
func (s *Snapshot) Coordination(i int) int { return s.coordination[i] }

// Centrosymmetry returns the centrosymmetry parameter of atom i.
func (s *Snapshot) Centrosymmetry(i int) float64 { return s.centrosymmetry[i] }

// StructureType returns the CNA structure tag of atom i.
func (s *Snapshot) StructureType(i int) model.StructureType { return s.structureType[i] }

// At returns all descriptors of atom i.
func (s *Snapshot) At(i int) Descriptors {
	return Descriptors{
		Coordination:   s.coordination[i],
		Centrosymmetry: s.centrosymmetry[i],
		StructureType:  s.structureType[i],
	}
}

// IsPerfectLattice reports whether atom i carries the canonical perfect
// BCC signature (StructureTypeBCC, coordination 14).
func (s *Snapshot) IsPerfectLattice(i int) bool {
	return s.structureType[i] == model.StructureTypeBCC && s.coordination[i] == model.PerfectCoordination
}

// Validate checks the descriptor arrays against the input domain and
// returns the first violation found. A snapshot that fails validation
// must not be classified; partial output would mask upstream corruption.
func (s *Snapshot) Validate() error {
	if s.latticeConstant <= 0 {
		return &ErrInvalidLatticeConstant{Value: s.latticeConstant}
	}
	n := len(s.coordination)
	if len(s.centrosymmetry) != n {
		return &ErrLengthMismatch{Field: "centrosymmetry", Expected: n, Actual: len(s.centrosymmetry)}
	}
	if len(s.structureType) != n {
		return &ErrLengthMismatch{Field: "structureType", Expected: n, Actual: len(s.structureType)}
	}
	for i := 0; i < n; i++ {
		if s.coordination[i] < 0 {
			return &ErrInvalidCoordination{Index: i, Value: s.coordination[i]}
		}
		if s.centrosymmetry[i] < 0 {
			return &ErrInvalidCentrosymmetry{Index: i, Value: s.centrosymmetry[i]}
		}
		if !s.structureType[i].Valid() {
			return &ErrInvalidStructureType{Index: i, Value: s.structureType[i]}
		}
	}
	return nil
}

// ErrLengthMismatch indicates descriptor arrays of unequal length.
type ErrLengthMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("descriptor length mismatch: %s has %d entries, want %d", e.Field, e.Actual, e.Expected)
}

// ErrInvalidCoordination indicates a negative coordination number.
type ErrInvalidCoordination struct {
	Index int
	Value int
}

func (e *ErrInvalidCoordination) Error() string {
	return fmt.Sprintf("invalid coordination %d for atom %d", e.Value, e.Index)
}

// ErrInvalidCentrosymmetry indicates a negative centrosymmetry parameter.
type ErrInvalidCentrosymmetry struct {
	Index int
	Value float64
}

func (e *ErrInvalidCentrosymmetry) Error() string {
	return fmt.Sprintf("invalid centrosymmetry %g for atom %d", e.Value, e.Index)
}

// ErrInvalidStructureType indicates an unrecognized CNA tag.
type ErrInvalidStructureType struct {
	Index int
	Value model.StructureType
}

func (e *ErrInvalidStructureType) Error() string {
	return fmt.Sprintf("unrecognized structure tag %d for atom %d", uint8(e.Value), e.Index)
}

// ErrInvalidLatticeConstant indicates a non-positive lattice constant.
type ErrInvalidLatticeConstant struct {
	Value float64
}

func (e *ErrInvalidLatticeConstant) Error() string {
	return fmt.Sprintf("invalid lattice constant: %g", e.Value)
}
