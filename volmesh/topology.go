package volmesh

import (
	"fmt"
	"sort"
)

// ElementKind identifies the polytope shape of a uniform mesh's elements,
// fixing its arity and face ordering convention.
type ElementKind int

const (
	Triangle ElementKind = iota
	Quad
	Tet
	Hex
)

func (k ElementKind) String() string {
	return [...]string{"Triangle", "Quad", "Tet", "Hex"}[k]
}

// Arity returns the number of vertices per element of this kind.
func (k ElementKind) Arity() int {
	return [...]int{3, 4, 4, 8}[k]
}

// Dim returns the spatial dimension the kind lives in.
func (k ElementKind) Dim() int {
	return [...]int{2, 2, 3, 3}[k]
}

// KindFaces returns the faces of the kind as local vertex index lists. In 2D
// the faces are the element edges. Face winding points outward for a
// positively oriented element.
func KindFaces(k ElementKind) [][]int {
	switch k {
	case Triangle:
		return [][]int{{0, 1}, {1, 2}, {2, 0}}
	case Quad:
		return [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	case Tet:
		return [][]int{
			{0, 2, 1},
			{0, 1, 3},
			{1, 2, 3},
			{0, 3, 2},
		}
	case Hex:
		return [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		}
	default:
		return nil
	}
}

// Connectivity holds element-to-element adjacency derived from shared
// faces. For element e and local face f, EToE[e][f] is the neighboring
// element and EToF[e][f] the neighbor's local face index; both are -1 on
// the mesh boundary.
type Connectivity struct {
	EToE     [][]int
	EToF     [][]int
	NumFaces int
}

// faceRecord remembers the first element that registered a face.
type faceRecord struct {
	element int
	localID int
}

// BuildConnectivity derives face adjacency for a uniform mesh whose
// elements are all of the given kind. Faces are matched by their sorted
// global vertex sets.
func BuildConnectivity(m *Mesh, kind ElementKind) (*Connectivity, error) {
	if !m.IsUniform() {
		return nil, fmt.Errorf("%w: connectivity requires a uniform mesh", ErrMalformedInput)
	}
	if m.Dim() != kind.Dim() {
		return nil, fmt.Errorf("%w: %s elements in dimension %d", ErrMalformedInput, kind, m.Dim())
	}
	if m.ElementCount() > 0 {
		if a, _ := m.ElementArity(0); a != kind.Arity() {
			return nil, fmt.Errorf("%w: %s needs arity %d, mesh has %d", ErrMalformedInput, kind, kind.Arity(), a)
		}
	}

	faces := KindFaces(kind)
	c := &Connectivity{
		EToE: make([][]int, m.ElementCount()),
		EToF: make([][]int, m.ElementCount()),
	}
	seen := make(map[string]faceRecord)

	for e := 0; e < m.ElementCount(); e++ {
		verts, err := m.ElementVertices(e)
		if err != nil {
			return nil, err
		}
		c.EToE[e] = make([]int, len(faces))
		c.EToF[e] = make([]int, len(faces))
		for f := range faces {
			c.EToE[e][f] = -1
			c.EToF[e][f] = -1
		}

		for f, local := range faces {
			sorted := make([]int, len(local))
			for i, lv := range local {
				sorted[i] = verts[lv]
			}
			sort.Ints(sorted)
			key := fmt.Sprintf("%v", sorted)

			if rec, ok := seen[key]; ok {
				// Interior face: record reciprocal adjacency with the
				// neighbor's local face index.
				c.EToE[e][f] = rec.element
				c.EToF[e][f] = rec.localID
				c.EToE[rec.element][rec.localID] = e
				c.EToF[rec.element][rec.localID] = f
			} else {
				seen[key] = faceRecord{element: e, localID: f}
				c.NumFaces++
			}
		}
	}
	return c, nil
}

// BoundaryFaceCount returns the number of faces with no neighboring
// element.
func (c *Connectivity) BoundaryFaceCount() int {
	var n int
	for _, row := range c.EToE {
		for _, nb := range row {
			if nb < 0 {
				n++
			}
		}
	}
	return n
}
