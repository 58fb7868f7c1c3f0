// Package model defines the shared value types of the defect classifier.
//
// # Types
//
//   - Label: the seven-valued defect classification assigned to an atom
//   - StructureType: the CNA (common neighbor analysis) structure tag
//     supplied by the upstream structural analysis
//   - Color: an RGB display color derived from a Label
//
// The perfect BCC lattice signature is (StructureTypeBCC, coordination 14);
// atoms carrying it are treated as bulk and excluded from neighbor
// statistics during rule evaluation.
package model
