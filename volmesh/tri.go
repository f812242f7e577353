package volmesh

import (
	"fmt"
	"math"

	"github.com/volsim/volmesh/vector"
)

// TriMesh is a 2D uniform mesh of linear triangles. Local vertex order is
// counter-clockwise for a positively oriented element.
type TriMesh struct {
	*Mesh
}

// NewTriMesh builds a triangle mesh; elems holds 3 vertex indices per
// element.
func NewTriMesh(vertexCount int, coords []float64, elementCount int, elems []int) (*TriMesh, error) {
	m, err := NewUniform(2, vertexCount, coords, elementCount, elems, 3)
	if err != nil {
		return nil, err
	}
	return &TriMesh{Mesh: m}, nil
}

// SignedArea returns the area of element e with its winding sign: positive
// for counter-clockwise local vertex order.
func (t *TriMesh) SignedArea(e int) (float64, error) {
	v, err := elementPositions(t.Mesh, e)
	if err != nil {
		return 0, err
	}
	return 0.5 * v[1].Sub(v[0]).Cross2(v[2].Sub(v[0])), nil
}

func (t *TriMesh) ElementVolume(e int) (float64, error) {
	a, err := t.SignedArea(e)
	return math.Abs(a), err
}

// InterpolationWeights returns the barycentric coordinates of p with respect
// to element e. Outside the element the coordinates extrapolate and one or
// more weights go negative; they still sum to 1.
func (t *TriMesh) InterpolationWeights(e int, p vector.Vec) ([]float64, error) {
	if err := checkPoint(t.Mesh, p); err != nil {
		return nil, err
	}
	v, err := elementPositions(t.Mesh, e)
	if err != nil {
		return nil, err
	}
	area2 := v[1].Sub(v[0]).Cross2(v[2].Sub(v[0]))
	if area2 == 0 {
		return nil, fmt.Errorf("%w: triangle %d has zero area", ErrDegenerateElement, e)
	}
	// Sub-triangle areas opposite each vertex, normalized by the full area.
	w0 := v[1].Sub(p).Cross2(v[2].Sub(p)) / area2
	w1 := v[2].Sub(p).Cross2(v[0].Sub(p)) / area2
	return []float64{w0, w1, 1 - w0 - w1}, nil
}

func (t *TriMesh) ContainsPoint(e int, p vector.Vec) (bool, error) {
	w, err := t.InterpolationWeights(e, p)
	if err != nil {
		return false, err
	}
	for _, wi := range w {
		if wi < -geomEps {
			return false, nil
		}
	}
	return true, nil
}
