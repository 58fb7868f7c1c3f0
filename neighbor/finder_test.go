package neighbor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutoff(t *testing.T) {
	tests := []struct {
		name     string
		alat     float64
		expected float64
	}{
		{"Tungsten", 3.16, (math.Sqrt2 + 1) / 2 * 3.16},
		{"Iron", 2.87, (math.Sqrt2 + 1) / 2 * 2.87},
		{"Unit", 1.0, (math.Sqrt2 + 1) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cutoff(tt.alat), 1e-12)
		})
	}
}

func TestCutoffBetweenShells(t *testing.T) {
	// The derived radius must capture both BCC shells (√3/2·a and a)
	// and exclude the third shell (√2·a).
	alat := 3.16
	cutoff := Cutoff(alat)

	assert.Greater(t, cutoff, math.Sqrt(3)/2*alat)
	assert.Greater(t, cutoff, alat)
	assert.Less(t, cutoff, math.Sqrt2*alat)
}

func TestStatic(t *testing.T) {
	finder := NewStatic([][]int{
		{1, 2},
		{0},
		{0},
	})

	ns, err := finder.Neighbors(0, 4.0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ns)

	ns, err = finder.Neighbors(1, 4.0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ns)
}

func TestStaticOutOfRange(t *testing.T) {
	finder := NewStatic([][]int{{1}, {0}})

	_, err := finder.Neighbors(2, 4.0)
	assert.Error(t, err)

	_, err = finder.Neighbors(-1, 4.0)
	assert.Error(t, err)
}

func TestFinderFunc(t *testing.T) {
	var gotCutoff float64
	finder := FinderFunc(func(i int, cutoff float64) ([]int, error) {
		gotCutoff = cutoff
		return []int{i + 1}, nil
	})

	ns, err := finder.Neighbors(3, 1.5)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, ns)
	assert.Equal(t, 1.5, gotCutoff)
}

func TestQueryErrorUnwrap(t *testing.T) {
	cause := errors.New("spatial index not built")
	err := NewQueryError(7, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "atom 7")
}
