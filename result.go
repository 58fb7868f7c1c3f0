package defectgo

import (
	"github.com/hupe1980/defectgo/model"
)

// Result holds the output of one classification pass: an index-aligned
// label per atom and, when enabled, the derived display colors.
type Result struct {
	labels []model.Label
	colors []model.Color
}

func newResult(labels []model.Label, withColors bool) *Result {
	r := &Result{labels: labels}
	if withColors {
		r.colors = make([]model.Color, len(labels))
		for i, l := range labels {
			r.colors[i] = model.ColorOf(l)
		}
	}
	return r
}

// Len returns the number of classified atoms.
func (r *Result) Len() int { return len(r.labels) }

// Label returns the defect label of atom i.
func (r *Result) Label(i int) model.Label { return r.labels[i] }

// Labels returns the index-aligned label slice. The slice is owned by
// the result; callers must not mutate it.
func (r *Result) Labels() []model.Label { return r.labels }

// Colors returns the index-aligned display colors, or nil when color
// output was not enabled.
func (r *Result) Colors() []model.Color { return r.colors }

// Counts returns the number of atoms per label.
func (r *Result) Counts() map[model.Label]int {
	counts := make(map[model.Label]int, model.NumLabels)
	for _, l := range r.labels {
		counts[l]++
	}
	return counts
}
