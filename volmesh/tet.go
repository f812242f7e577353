package volmesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/volsim/volmesh/vector"
)

// TetMesh is a 3D uniform mesh of linear tetrahedra. Local vertex order
// follows the usual convention: v1, v2, v3 counter-clockwise when seen from
// v0 gives a positive signed volume.
type TetMesh struct {
	*Mesh
}

// NewTetMesh builds a tetrahedral mesh; elems holds 4 vertex indices per
// element.
func NewTetMesh(vertexCount int, coords []float64, elementCount int, elems []int) (*TetMesh, error) {
	m, err := NewUniform(3, vertexCount, coords, elementCount, elems, 4)
	if err != nil {
		return nil, err
	}
	return &TetMesh{Mesh: m}, nil
}

// SignedVolume returns the volume of element e with its orientation sign.
func (t *TetMesh) SignedVolume(e int) (float64, error) {
	v, err := elementPositions(t.Mesh, e)
	if err != nil {
		return 0, err
	}
	return v[1].Sub(v[0]).Dot(v[2].Sub(v[0]).Cross(v[3].Sub(v[0]))) / 6, nil
}

func (t *TetMesh) ElementVolume(e int) (float64, error) {
	vol, err := t.SignedVolume(e)
	return math.Abs(vol), err
}

// InterpolationWeights returns the barycentric coordinates of p with respect
// to tetrahedron e, solving the 3x3 edge system. Outside points extrapolate
// to negative weights; the weights always sum to 1.
func (t *TetMesh) InterpolationWeights(e int, p vector.Vec) ([]float64, error) {
	if err := checkPoint(t.Mesh, p); err != nil {
		return nil, err
	}
	v, err := elementPositions(t.Mesh, e)
	if err != nil {
		return nil, err
	}
	// Columns are the edge vectors from v0; lambda solves A*lambda = p-v0.
	A := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			A.Set(i, j, v[j+1].At(i)-v[0].At(i))
		}
	}
	b := mat.NewVecDense(3, p.Sub(v[0]).Slice())
	var lambda mat.VecDense
	if err := lambda.SolveVec(A, b); err != nil {
		return nil, fmt.Errorf("%w: tetrahedron %d has zero volume", ErrDegenerateElement, e)
	}
	w1, w2, w3 := lambda.AtVec(0), lambda.AtVec(1), lambda.AtVec(2)
	return []float64{1 - w1 - w2 - w3, w1, w2, w3}, nil
}

func (t *TetMesh) ContainsPoint(e int, p vector.Vec) (bool, error) {
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
