package volmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/volsim/volmesh/vector"
)

func unitQuad(t *testing.T) *QuadMesh {
	t.Helper()
	m, err := NewQuadMesh(4, []float64{0, 0, 1, 0, 1, 1, 0, 1}, 1, []int{0, 1, 2, 3})
	require.NoError(t, err)
	return m
}

func TestQuadArea(t *testing.T) {
	m := unitQuad(t)
	area, err := m.ElementVolume(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, area, 1e-14)

	// A skewed parallelogram keeps the shoelace area of its base times
	// height.
	skew, err := NewQuadMesh(4, []float64{0, 0, 2, 0, 3, 1, 1, 1}, 1, []int{0, 1, 2, 3})
	require.NoError(t, err)
	area, err = skew.ElementVolume(0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, area, 1e-14)
}

func TestQuadInterpolationWeights(t *testing.T) {
	m := unitQuad(t)

	// Center of the unit square maps to the reference origin.
	w, err := m.InterpolationWeights(0, vector.V2(0.5, 0.5))
	require.NoError(t, err)
	require.Len(t, w, 4)
	for _, wi := range w {
		assert.InDelta(t, 0.25, wi, 1e-10)
	}

	// Closed form for an axis-aligned unit square at (0.25, 0.75).
	w, err = m.InterpolationWeights(0, vector.V2(0.25, 0.75))
	require.NoError(t, err)
	assert.InDelta(t, 0.1875, w[0], 1e-10)
	assert.InDelta(t, 0.0625, w[1], 1e-10)
	assert.InDelta(t, 0.1875, w[2], 1e-10)
	assert.InDelta(t, 0.5625, w[3], 1e-10)
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-10)
}

// The weights must reproduce the query point on a non-rectangular quad.
func TestQuadWeightsReproducePoint(t *testing.T) {
	m, err := NewQuadMesh(4, []float64{0, 0, 2, 0.2, 1.8, 1.5, -0.1, 1}, 1, []int{0, 1, 2, 3})
	require.NoError(t, err)

	p := vector.V2(0.9, 0.7)
	w, err := m.InterpolationWeights(0, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-10)

	interp := vector.V2(0, 0)
	for lv, wi := range w {
		v, err := m.ElementVertexPosition(0, lv)
		require.NoError(t, err)
		interp = interp.Add(v.Scale(wi))
	}
	assert.InDelta(t, p.X(), interp.X(), 1e-9)
	assert.InDelta(t, p.Y(), interp.Y(), 1e-9)
}

func TestQuadContainsPoint(t *testing.T) {
	m := unitQuad(t)

	inside, err := m.ContainsPoint(0, vector.V2(0.5, 0.5))
	require.NoError(t, err)
	assert.True(t, inside)

	inside, err = m.ContainsPoint(0, vector.V2(1, 1))
	require.NoError(t, err)
	assert.True(t, inside)

	inside, err = m.ContainsPoint(0, vector.V2(1.2, 0.5))
	require.NoError(t, err)
	assert.False(t, inside)
}
