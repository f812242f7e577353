package volmesh

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
)

// Incidence answers which elements touch a given vertex, the reverse of the
// element buffer's vertex references. The relation is assembled once into a
// sparse CSR matrix (rows vertices, columns elements) and queried read-only
// afterwards, mirroring the immutability of the mesh itself.
type Incidence struct {
	vertToElem *sparse.CSR
	elements   int
}

// NewIncidence builds the vertex-to-element incidence of m. Because it
// walks every element's vertex references, it also surfaces any
// out-of-range reference the construction trust boundary let through.
func NewIncidence(m *Mesh) (*Incidence, error) {
	dok := sparse.NewDOK(m.VertexCount(), m.ElementCount())
	for e := 0; e < m.ElementCount(); e++ {
		a, err := m.ElementArity(e)
		if err != nil {
			return nil, err
		}
		for lv := 0; lv < a; lv++ {
			v, err := m.ElementVertex(e, lv)
			if err != nil {
				return nil, err
			}
			if v < 0 || v >= m.VertexCount() {
				return nil, fmt.Errorf("%w: element %d references vertex %d, have %d vertices",
					ErrOutOfRange, e, v, m.VertexCount())
			}
			dok.Set(v, e, 1)
		}
	}
	return &Incidence{vertToElem: dok.ToCSR(), elements: m.ElementCount()}, nil
}

// ElementsAroundVertex returns the indices of all elements that reference
// vertex v, in ascending order.
func (inc *Incidence) ElementsAroundVertex(v int) ([]int, error) {
	rows, _ := inc.vertToElem.Dims()
	if v < 0 || v >= rows {
		return nil, fmt.Errorf("%w: vertex %d, have %d vertices", ErrOutOfRange, v, rows)
	}
	var elems []int
	inc.vertToElem.DoRowNonZero(v, func(_, e int, _ float64) {
		elems = append(elems, e)
	})
	sort.Ints(elems)
	return elems, nil
}

// VertexDegree returns the number of elements that reference vertex v.
func (inc *Incidence) VertexDegree(v int) (int, error) {
	rows, _ := inc.vertToElem.Dims()
	if v < 0 || v >= rows {
		return 0, fmt.Errorf("%w: vertex %d, have %d vertices", ErrOutOfRange, v, rows)
	}
	return inc.vertToElem.RowNNZ(v), nil
}
