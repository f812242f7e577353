// Package volmesh implements the volumetric mesh substrate for finite
// element style simulation: flat, immutable vertex and element storage with
// uniform or per-element arity, plus the geometric query contract concrete
// element-shape meshes implement on top of it.
package volmesh

import (
	"fmt"

	"github.com/volsim/volmesh/vector"
)

// ArityMode selects the element storage layout of a Mesh.
type ArityMode int

const (
	// Uniform means every element has the same number of vertices.
	Uniform ArityMode = iota
	// Mixed means each element carries its own vertex count.
	Mixed
)

func (m ArityMode) String() string {
	return [...]string{"Uniform", "Mixed"}[m]
}

// Mesh is a dimension-generic (2D or 3D) volumetric mesh. Vertices are
// stored as a flat coordinate buffer, elements as a flat buffer of global
// vertex indices. The arity descriptor is fixed at construction as either
// one shared vertex count (Uniform) or a per-element list (Mixed); in Mixed
// mode a prefix-offset table is cached so element lookup stays O(1).
//
// A Mesh is immutable once built. All query methods are pure reads, so
// concurrent readers need no synchronization.
type Mesh struct {
	dim          int
	vertexCount  int
	elementCount int

	coords []float64 // vertexCount*dim coordinates, vertex-major
	elems  []int     // global vertex indices, element-major

	mode            ArityMode
	vertsPerElement int   // Uniform mode only
	arities         []int // Mixed mode only, one entry per element
	offsets         []int // Mixed mode only, elementCount+1 prefix sums
}

// NewUniform builds a mesh in which every element references exactly
// vertsPerElement vertices. Element e occupies elems[e*vertsPerElement :
// (e+1)*vertsPerElement]. All inputs are copied; the caller's slices are not
// retained.
//
// Vertex indices inside elems are not range checked here (a documented trust
// boundary); an out-of-range reference surfaces as ErrOutOfRange from the
// query that touches it.
func NewUniform(dim, vertexCount int, coords []float64, elementCount int, elems []int, vertsPerElement int) (*Mesh, error) {
	if vertsPerElement < 1 {
		return nil, fmt.Errorf("%w: vertsPerElement %d < 1", ErrMalformedInput, vertsPerElement)
	}
	m := &Mesh{
		mode:            Uniform,
		vertsPerElement: vertsPerElement,
	}
	if err := m.init(dim, vertexCount, coords, elementCount, elems, elementCount*vertsPerElement); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMixed builds a mesh in which element e references arities[e] vertices.
// Element slots are laid out back to back, so element e starts at the prefix
// sum of arities[0:e]; the prefix table is computed once here. All inputs
// are copied. The same vertex-index trust boundary as NewUniform applies.
func NewMixed(dim, vertexCount int, coords []float64, elementCount int, elems []int, arities []int) (*Mesh, error) {
	if elementCount < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrMalformedInput, elementCount)
	}
	if len(arities) < elementCount {
		return nil, fmt.Errorf("%w: have %d arities for %d elements", ErrMalformedInput, len(arities), elementCount)
	}
	m := &Mesh{
		mode:    Mixed,
		arities: make([]int, elementCount),
		offsets: make([]int, elementCount+1),
	}
	copy(m.arities, arities)
	for e, a := range m.arities {
		if a < 1 {
			return nil, fmt.Errorf("%w: element %d has arity %d < 1", ErrMalformedInput, e, a)
		}
		m.offsets[e+1] = m.offsets[e] + a
	}
	if err := m.init(dim, vertexCount, coords, elementCount, elems, m.offsets[elementCount]); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) init(dim, vertexCount int, coords []float64, elementCount int, elems []int, totalSlots int) error {
	if dim != 2 && dim != 3 {
		return fmt.Errorf("%w: dimension %d, must be 2 or 3", ErrMalformedInput, dim)
	}
	if vertexCount < 0 || elementCount < 0 {
		return fmt.Errorf("%w: negative counts (%d vertices, %d elements)", ErrMalformedInput, vertexCount, elementCount)
	}
	if len(coords) < vertexCount*dim {
		return fmt.Errorf("%w: have %d coordinates, need %d", ErrMalformedInput, len(coords), vertexCount*dim)
	}
	if len(elems) < totalSlots {
		return fmt.Errorf("%w: have %d element vertex refs, need %d", ErrMalformedInput, len(elems), totalSlots)
	}
	m.dim = dim
	m.vertexCount = vertexCount
	m.elementCount = elementCount
	m.coords = make([]float64, vertexCount*dim)
	copy(m.coords, coords)
	m.elems = make([]int, totalSlots)
	copy(m.elems, elems)
	return nil
}

// Dim returns the spatial dimension, 2 or 3.
func (m *Mesh) Dim() int { return m.dim }

func (m *Mesh) VertexCount() int  { return m.vertexCount }
func (m *Mesh) ElementCount() int { return m.elementCount }

// Mode returns the arity storage layout.
func (m *Mesh) Mode() ArityMode { return m.mode }

func (m *Mesh) IsUniform() bool { return m.mode == Uniform }

// ElementArity returns the number of vertices of element e.
func (m *Mesh) ElementArity(e int) (int, error) {
	if e < 0 || e >= m.elementCount {
		return 0, fmt.Errorf("%w: element %d, have %d elements", ErrOutOfRange, e, m.elementCount)
	}
	if m.mode == Uniform {
		return m.vertsPerElement, nil
	}
	return m.arities[e], nil
}

// elementOffset returns the slot index of element e's first vertex ref.
// The caller has already range checked e.
func (m *Mesh) elementOffset(e int) int {
	if m.mode == Uniform {
		return e * m.vertsPerElement
	}
	return m.offsets[e]
}

// VertexPosition returns the position of vertex v as a value copy.
func (m *Mesh) VertexPosition(v int) (vector.Vec, error) {
	if v < 0 || v >= m.vertexCount {
		return vector.Vec{}, fmt.Errorf("%w: vertex %d, have %d vertices", ErrOutOfRange, v, m.vertexCount)
	}
	return vector.FromSlice(m.coords[v*m.dim : (v+1)*m.dim]), nil
}

// ElementVertex resolves local vertex lv of element e to its global vertex
// index, in the element's declared local order.
func (m *Mesh) ElementVertex(e, lv int) (int, error) {
	a, err := m.ElementArity(e)
	if err != nil {
		return 0, err
	}
	if lv < 0 || lv >= a {
		return 0, fmt.Errorf("%w: local vertex %d, element %d has arity %d", ErrOutOfRange, lv, e, a)
	}
	return m.elems[m.elementOffset(e)+lv], nil
}

// ElementVertexPosition returns the position of local vertex lv of element
// e. An out-of-range global reference stored in the element buffer is
// reported here rather than at construction.
func (m *Mesh) ElementVertexPosition(e, lv int) (vector.Vec, error) {
	v, err := m.ElementVertex(e, lv)
	if err != nil {
		return vector.Vec{}, err
	}
	return m.VertexPosition(v)
}

// ElementVertices returns a copy of element e's global vertex indices in
// local order.
func (m *Mesh) ElementVertices(e int) ([]int, error) {
	a, err := m.ElementArity(e)
	if err != nil {
		return nil, err
	}
	off := m.elementOffset(e)
	verts := make([]int, a)
	copy(verts, m.elems[off:off+a])
	return verts, nil
}
