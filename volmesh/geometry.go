package volmesh

import (
	"fmt"

	"github.com/volsim/volmesh/vector"
)

// ElementGeometry is the capability contract every concrete element-shape
// mesh satisfies on top of the flat storage in Mesh. Implementations exist
// per shape (TriMesh, QuadMesh, TetMesh, HexMesh); the base storage carries
// no geometry of its own.
type ElementGeometry interface {
	// ElementVolume returns the measure (area in 2D, volume in 3D) of
	// element e. Whether the result is signed is a per-shape convention;
	// the implementations here return unsigned measures and export signed
	// variants separately where winding matters.
	ElementVolume(e int) (float64, error)

	// ContainsPoint reports whether p lies inside element e (boundary
	// included, within a small geometric tolerance).
	ContainsPoint(e int, p vector.Vec) (bool, error)

	// InterpolationWeights returns one weight per local vertex of element
	// e, in local vertex order. For points inside the element the weights
	// sum to 1 and interpolate vertex-attached fields at p. Behavior for
	// outside points is shape specific: barycentric shapes extrapolate
	// (weights may go negative), mapped shapes return the weights at the
	// nearest converged reference coordinates.
	InterpolationWeights(e int, p vector.Vec) ([]float64, error)
}

// VolumetricMesh is what simulation code consumes: the storage queries of
// Mesh plus per-shape geometry.
type VolumetricMesh interface {
	Dim() int
	VertexCount() int
	ElementCount() int
	IsUniform() bool
	ElementArity(e int) (int, error)
	VertexPosition(v int) (vector.Vec, error)
	ElementVertex(e, lv int) (int, error)
	ElementVertexPosition(e, lv int) (vector.Vec, error)

	ElementGeometry
}

// Compile-time checks that every concrete shape mesh satisfies the full
// contract.
var (
	_ VolumetricMesh = (*TriMesh)(nil)
	_ VolumetricMesh = (*QuadMesh)(nil)
	_ VolumetricMesh = (*TetMesh)(nil)
	_ VolumetricMesh = (*HexMesh)(nil)
)

// geomEps is the tolerance used by containment tests so that points on an
// element boundary count as inside.
const geomEps = 1e-10

// checkPoint rejects query points of the wrong dimension.
func checkPoint(m *Mesh, p vector.Vec) error {
	if p.Dim() != m.Dim() {
		return fmt.Errorf("%w: point dimension %d, mesh dimension %d", ErrDimensionMismatch, p.Dim(), m.Dim())
	}
	return nil
}

// elementPositions gathers the positions of element e's vertices in local
// order.
func elementPositions(m *Mesh, e int) ([]vector.Vec, error) {
	a, err := m.ElementArity(e)
	if err != nil {
		return nil, err
	}
	verts := make([]vector.Vec, a)
	for lv := 0; lv < a; lv++ {
		if verts[lv], err = m.ElementVertexPosition(e, lv); err != nil {
			return nil, err
		}
	}
	return verts, nil
}
