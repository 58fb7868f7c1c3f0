package model

// Color is an RGB display color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// colorTable maps every label to its fixed display color.
var colorTable = [NumLabels]Color{
	LabelBulk:         {0.8, 0.8, 0.8},
	LabelSurface:      {0.0, 0.0, 1.0},
	LabelVacancy:      {1.0, 0.0, 0.0},
	LabelDislocation:  {0.0, 1.0, 0.0},
	LabelTwin:         {1.0, 1.0, 0.0},
	LabelPlanarFault:  {1.0, 0.5, 0.0},
	LabelUnidentified: {0.5, 0.5, 0.5},
}

// ColorOf returns the display color for the given label.
// Unknown labels map to the unidentified color.
func ColorOf(l Label) Color {
	if !l.Valid() {
		return colorTable[LabelUnidentified]
	}
	return colorTable[l]
}
