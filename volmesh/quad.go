package volmesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/volsim/volmesh/vector"
)

// TriMesh and TetMesh invert their reference maps in closed form; the
// bilinear quad and trilinear hex need a Newton iteration.
const (
	newtonMaxIter = 30
	newtonTol     = 1e-12
)

// QuadMesh is a 2D uniform mesh of bilinear quadrilaterals. Local vertex
// order is counter-clockwise around the element: v0, v1, v2, v3 map to the
// reference square corners (-1,-1), (1,-1), (1,1), (-1,1).
type QuadMesh struct {
	*Mesh
}

// NewQuadMesh builds a quadrilateral mesh; elems holds 4 vertex indices per
// element.
func NewQuadMesh(vertexCount int, coords []float64, elementCount int, elems []int) (*QuadMesh, error) {
	m, err := NewUniform(2, vertexCount, coords, elementCount, elems, 4)
	if err != nil {
		return nil, err
	}
	return &QuadMesh{Mesh: m}, nil
}

// quadShape evaluates the four bilinear shape functions at (xi, eta).
func quadShape(xi, eta float64) [4]float64 {
	return [4]float64{
		(1 - xi) * (1 - eta) / 4,
		(1 + xi) * (1 - eta) / 4,
		(1 + xi) * (1 + eta) / 4,
		(1 - xi) * (1 + eta) / 4,
	}
}

// quadShapeDeriv evaluates the shape function derivatives with respect to
// xi and eta.
func quadShapeDeriv(xi, eta float64) (dXi, dEta [4]float64) {
	dXi = [4]float64{-(1 - eta) / 4, (1 - eta) / 4, (1 + eta) / 4, -(1 + eta) / 4}
	dEta = [4]float64{-(1 - xi) / 4, -(1 + xi) / 4, (1 + xi) / 4, (1 - xi) / 4}
	return
}

// invertBilinear maps the physical point p back to reference coordinates by
// Newton iteration starting from the element center. It reports whether the
// residual converged; far outside points may not, and the caller treats the
// last iterate as the nearest reference coordinates.
func invertBilinear(v []vector.Vec, p vector.Vec) (xi, eta float64, converged bool, err error) {
	for iter := 0; iter < newtonMaxIter; iter++ {
		n := quadShape(xi, eta)
		var x, y float64
		for i := 0; i < 4; i++ {
			x += n[i] * v[i].X()
			y += n[i] * v[i].Y()
		}
		rx, ry := x-p.X(), y-p.Y()
		if math.Hypot(rx, ry) < newtonTol {
			return xi, eta, true, nil
		}
		dXi, dEta := quadShapeDeriv(xi, eta)
		J := mat.NewDense(2, 2, nil)
		for i := 0; i < 4; i++ {
			J.Set(0, 0, J.At(0, 0)+dXi[i]*v[i].X())
			J.Set(0, 1, J.At(0, 1)+dEta[i]*v[i].X())
			J.Set(1, 0, J.At(1, 0)+dXi[i]*v[i].Y())
			J.Set(1, 1, J.At(1, 1)+dEta[i]*v[i].Y())
		}
		var delta mat.VecDense
		if err = delta.SolveVec(J, mat.NewVecDense(2, []float64{rx, ry})); err != nil {
			return xi, eta, false, err
		}
		xi -= delta.AtVec(0)
		eta -= delta.AtVec(1)
	}
	return xi, eta, false, nil
}

// SignedArea returns the shoelace area of element e: positive for
// counter-clockwise local vertex order.
func (q *QuadMesh) SignedArea(e int) (float64, error) {
	v, err := elementPositions(q.Mesh, e)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		sum += v[i].X()*v[j].Y() - v[j].X()*v[i].Y()
	}
	return sum / 2, nil
}

func (q *QuadMesh) ElementVolume(e int) (float64, error) {
	a, err := q.SignedArea(e)
	return math.Abs(a), err
}

// InterpolationWeights returns the bilinear shape function values at the
// reference coordinates of p. For points outside the element the weights
// are evaluated at the last Newton iterate.
func (q *QuadMesh) InterpolationWeights(e int, p vector.Vec) ([]float64, error) {
	if err := checkPoint(q.Mesh, p); err != nil {
		return nil, err
	}
	v, err := elementPositions(q.Mesh, e)
	if err != nil {
		return nil, err
	}
	xi, eta, _, err := invertBilinear(v, p)
	if err != nil {
		return nil, fmt.Errorf("%w: quad %d has a singular bilinear map", ErrDegenerateElement, e)
	}
	n := quadShape(xi, eta)
	return n[:], nil
}

func (q *QuadMesh) ContainsPoint(e int, p vector.Vec) (bool, error) {
	if err := checkPoint(q.Mesh, p); err != nil {
		return false, err
	}
	v, err := elementPositions(q.Mesh, e)
	if err != nil {
		return false, err
	}
	xi, eta, converged, err := invertBilinear(v, p)
	if err != nil {
		return false, fmt.Errorf("%w: quad %d has a singular bilinear map", ErrDegenerateElement, e)
	}
	if !converged {
		return false, nil
	}
	return math.Abs(xi) <= 1+geomEps && math.Abs(eta) <= 1+geomEps, nil
}
