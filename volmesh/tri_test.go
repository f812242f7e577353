package volmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/volsim/volmesh/vector"
)

func unitTriangle(t *testing.T) *TriMesh {
	t.Helper()
	m, err := NewTriMesh(3, []float64{0, 0, 1, 0, 0, 1}, 1, []int{0, 1, 2})
	require.NoError(t, err)
	return m
}

func TestTriArea(t *testing.T) {
	m := unitTriangle(t)

	area, err := m.ElementVolume(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, area, 1e-14)

	signed, err := m.SignedArea(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, signed, 1e-14)

	// Clockwise winding flips the sign but not the measure.
	cw, err := NewTriMesh(3, []float64{0, 0, 1, 0, 0, 1}, 1, []int{0, 2, 1})
	require.NoError(t, err)
	signed, err = cw.SignedArea(0)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, signed, 1e-14)
	area, err = cw.ElementVolume(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, area, 1e-14)
}

func TestTriInterpolationWeights(t *testing.T) {
	m := unitTriangle(t)

	// Vertices give unit weights.
	for lv := 0; lv < 3; lv++ {
		p, err := m.ElementVertexPosition(0, lv)
		require.NoError(t, err)
		w, err := m.InterpolationWeights(0, p)
		require.NoError(t, err)
		require.Len(t, w, 3)
		for i := range w {
			expect := 0.0
			if i == lv {
				expect = 1.0
			}
			assert.InDelta(t, expect, w[i], 1e-14)
		}
	}

	// Centroid weights are all one third.
	w, err := m.InterpolationWeights(0, vector.V2(1.0/3, 1.0/3))
	require.NoError(t, err)
	for _, wi := range w {
		assert.InDelta(t, 1.0/3, wi, 1e-14)
	}

	// Outside the element the weights extrapolate but still sum to 1.
	w, err = m.InterpolationWeights(0, vector.V2(2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-12)
	assert.Less(t, w[0], 0.0)
}

func TestTriContainsPoint(t *testing.T) {
	m := unitTriangle(t)

	inside, err := m.ContainsPoint(0, vector.V2(0.25, 0.25))
	require.NoError(t, err)
	assert.True(t, inside)

	// Boundary counts as inside.
	inside, err = m.ContainsPoint(0, vector.V2(0.5, 0.5))
	require.NoError(t, err)
	assert.True(t, inside)

	inside, err = m.ContainsPoint(0, vector.V2(0.75, 0.75))
	require.NoError(t, err)
	assert.False(t, inside)
}

func TestTriDegenerate(t *testing.T) {
	m, err := NewTriMesh(3, []float64{0, 0, 1, 1, 2, 2}, 1, []int{0, 1, 2})
	require.NoError(t, err)
	_, err = m.InterpolationWeights(0, vector.V2(0, 0))
	assert.ErrorIs(t, err, ErrDegenerateElement)
}

func TestTriPointDimension(t *testing.T) {
	m := unitTriangle(t)
	_, err := m.InterpolationWeights(0, vector.V3(0, 0, 0))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = m.ContainsPoint(0, vector.V3(0, 0, 0))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
