package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelString(t *testing.T) {
	tests := []struct {
		label    Label
		expected string
	}{
		{LabelBulk, "Bulk"},
		{LabelSurface, "Surface"},
		{LabelVacancy, "Vacancy"},
		{LabelDislocation, "Dislocation"},
		{LabelTwin, "Twin"},
		{LabelPlanarFault, "PlanarFault"},
		{LabelUnidentified, "Unidentified"},
		{Label(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.label.String())
		})
	}
}

func TestLabelValid(t *testing.T) {
	for l := LabelBulk; l <= LabelUnidentified; l++ {
		assert.True(t, l.Valid(), l.String())
	}
	assert.False(t, Label(NumLabels).Valid())
}

func TestStructureTypeString(t *testing.T) {
	tests := []struct {
		tag      StructureType
		expected string
	}{
		{StructureTypeOther, "Other"},
		{StructureTypeFCC, "FCC"},
		{StructureTypeHCP, "HCP"},
		{StructureTypeBCC, "BCC"},
		{StructureTypeIco, "Ico"},
		{StructureType(9), "Unknown(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tag.String())
		})
	}
}

func TestStructureTypeValid(t *testing.T) {
	assert.True(t, StructureTypeBCC.Valid())
	assert.True(t, StructureTypeOther.Valid())
	assert.False(t, StructureType(5).Valid())
}
