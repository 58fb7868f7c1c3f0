package model

import (
	"fmt"
)

// Label is the defect classification assigned to a single atom.
type Label uint8

const (
	// LabelBulk marks an atom on a perfect BCC lattice site.
	LabelBulk Label = iota
	// LabelSurface marks an under-coordinated atom at a free surface.
	LabelSurface
	// LabelVacancy marks an atom adjacent to a mono- or di-vacancy.
	LabelVacancy
	// LabelDislocation marks an atom inside a dislocation core.
	LabelDislocation
	// LabelTwin marks an atom on a twin boundary.
	LabelTwin
	// LabelPlanarFault marks an atom on a planar fault.
	LabelPlanarFault
	// LabelUnidentified marks a defective atom no rule matched.
	LabelUnidentified

	// NumLabels is the size of the closed label set.
	NumLabels = int(LabelUnidentified) + 1
)

// String returns a human-readable name for the label.
func (l Label) String() string {
	switch l {
	case LabelBulk:
		return "Bulk"
	case LabelSurface:
		return "Surface"
	case LabelVacancy:
		return "Vacancy"
	case LabelDislocation:
		return "Dislocation"
	case LabelTwin:
		return "Twin"
	case LabelPlanarFault:
		return "PlanarFault"
	case LabelUnidentified:
		return "Unidentified"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(l))
	}
}

// Valid reports whether l is a member of the closed label set.
func (l Label) Valid() bool {
	return int(l) < NumLabels
}

// StructureType is the categorical local-structure tag from common
// neighbor analysis. The numeric values follow the upstream analysis
// convention; StructureTypeBCC denotes the ideal BCC environment.
type StructureType uint8

const (
	StructureTypeOther StructureType = iota
	StructureTypeFCC
	StructureTypeHCP
	StructureTypeBCC
	StructureTypeIco

	numStructureTypes = int(StructureTypeIco) + 1
)

// String returns a human-readable name for the structure tag.
func (s StructureType) String() string {
	switch s {
	case StructureTypeOther:
		return "Other"
	case StructureTypeFCC:
		return "FCC"
	case StructureTypeHCP:
		return "HCP"
	case StructureTypeBCC:
		return "BCC"
	case StructureTypeIco:
		return "Ico"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// Valid reports whether s is a recognized structure tag.
func (s StructureType) Valid() bool {
	return int(s) < numStructureTypes
}

// PerfectCoordination is the coordination number of an ideal BCC site
// counted over the second-nearest-neighbor shell (8 + 6).
const PerfectCoordination = 14
