package volmesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/volsim/volmesh/vector"
)

// hexSigns holds the reference-cube corner signs for the standard hex
// vertex ordering: bottom face v0..v3 counter-clockwise, top face v4..v7
// above them.
var hexSigns = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// HexMesh is a 3D uniform mesh of trilinear hexahedra.
type HexMesh struct {
	*Mesh
}

// NewHexMesh builds a hexahedral mesh; elems holds 8 vertex indices per
// element in the ordering documented on hexSigns.
func NewHexMesh(vertexCount int, coords []float64, elementCount int, elems []int) (*HexMesh, error) {
	m, err := NewUniform(3, vertexCount, coords, elementCount, elems, 8)
	if err != nil {
		return nil, err
	}
	return &HexMesh{Mesh: m}, nil
}

// hexShape evaluates the eight trilinear shape functions at (xi, eta, zeta).
func hexShape(xi, eta, zeta float64) [8]float64 {
	var n [8]float64
	for i, s := range hexSigns {
		n[i] = (1 + s[0]*xi) * (1 + s[1]*eta) * (1 + s[2]*zeta) / 8
	}
	return n
}

// hexJacobian assembles the 3x3 Jacobian of the trilinear map at the given
// reference coordinates.
func hexJacobian(v []vector.Vec, xi, eta, zeta float64) *mat.Dense {
	J := mat.NewDense(3, 3, nil)
	for i, s := range hexSigns {
		d := [3]float64{
			s[0] * (1 + s[1]*eta) * (1 + s[2]*zeta) / 8,
			s[1] * (1 + s[0]*xi) * (1 + s[2]*zeta) / 8,
			s[2] * (1 + s[0]*xi) * (1 + s[1]*eta) / 8,
		}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				J.Set(r, c, J.At(r, c)+d[c]*v[i].At(r))
			}
		}
	}
	return J
}

// invertTrilinear maps the physical point p back to reference coordinates
// by Newton iteration from the element center, reporting convergence the
// same way invertBilinear does.
func invertTrilinear(v []vector.Vec, p vector.Vec) (ref [3]float64, converged bool, err error) {
	for iter := 0; iter < newtonMaxIter; iter++ {
		n := hexShape(ref[0], ref[1], ref[2])
		x := vector.V3(0, 0, 0)
		for i := 0; i < 8; i++ {
			x = x.Add(v[i].Scale(n[i]))
		}
		r := x.Sub(p)
		if r.Norm() < newtonTol {
			return ref, true, nil
		}
		J := hexJacobian(v, ref[0], ref[1], ref[2])
		var delta mat.VecDense
		if err = delta.SolveVec(J, mat.NewVecDense(3, r.Slice())); err != nil {
			return ref, false, err
		}
		for k := 0; k < 3; k++ {
			ref[k] -= delta.AtVec(k)
		}
	}
	return ref, false, nil
}

// ElementVolume integrates the Jacobian determinant of the trilinear map
// with a 2x2x2 Gauss rule, which is exact for trilinear geometry. The
// result is unsigned.
func (h *HexMesh) ElementVolume(e int) (float64, error) {
	v, err := elementPositions(h.Mesh, e)
	if err != nil {
		return 0, err
	}
	g := 1 / math.Sqrt(3)
	var vol float64
	for _, sx := range [2]float64{-g, g} {
		for _, sy := range [2]float64{-g, g} {
			for _, sz := range [2]float64{-g, g} {
				vol += mat.Det(hexJacobian(v, sx, sy, sz))
			}
		}
	}
	return math.Abs(vol), nil
}

// InterpolationWeights returns the trilinear shape function values at the
// reference coordinates of p, evaluated at the last Newton iterate when p
// lies outside the element.
func (h *HexMesh) InterpolationWeights(e int, p vector.Vec) ([]float64, error) {
	if err := checkPoint(h.Mesh, p); err != nil {
		return nil, err
	}
	v, err := elementPositions(h.Mesh, e)
	if err != nil {
		return nil, err
	}
	ref, _, err := invertTrilinear(v, p)
	if err != nil {
		return nil, fmt.Errorf("%w: hex %d has a singular trilinear map", ErrDegenerateElement, e)
	}
	n := hexShape(ref[0], ref[1], ref[2])
	return n[:], nil
}

func (h *HexMesh) ContainsPoint(e int, p vector.Vec) (bool, error) {
	if err := checkPoint(h.Mesh, p); err != nil {
		return false, err
	}
	v, err := elementPositions(h.Mesh, e)
	if err != nil {
		return false, err
	}
	ref, converged, err := invertTrilinear(v, p)
	if err != nil {
		return false, fmt.Errorf("%w: hex %d has a singular trilinear map", ErrDegenerateElement, e)
	}
	if !converged {
		return false, nil
	}
	for _, c := range ref {
		if math.Abs(c) > 1+geomEps {
			return false, nil
		}
	}
	return true, nil
}
