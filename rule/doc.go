// Package rule implements the priority-ordered defect rule evaluator.
//
// Every atom is classified by a fixed decision chain: a perfect-lattice
// gate followed by surface, dislocation, vacancy, twin and planar-fault
// predicates, stopping at the first match and falling back to
// unidentified. The predicates are pure functions of the atom's own
// descriptors and counting statistics over its filtered neighbor set.
//
// All threshold comparisons are exact; swapping any strict/non-strict
// boundary changes classification results.
package rule
