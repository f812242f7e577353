package volmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTables(t *testing.T) {
	assert.Equal(t, 3, Triangle.Arity())
	assert.Equal(t, 4, Quad.Arity())
	assert.Equal(t, 4, Tet.Arity())
	assert.Equal(t, 8, Hex.Arity())
	assert.Equal(t, 2, Triangle.Dim())
	assert.Equal(t, 3, Hex.Dim())
	assert.Equal(t, "Tet", Tet.String())

	assert.Len(t, KindFaces(Triangle), 3)
	assert.Len(t, KindFaces(Quad), 4)
	assert.Len(t, KindFaces(Tet), 4)
	assert.Len(t, KindFaces(Hex), 6)
}

func TestConnectivityTwoTriangles(t *testing.T) {
	m := twoTriangles(t)
	conn, err := BuildConnectivity(m, Triangle)
	require.NoError(t, err)

	// Two triangles sharing one edge: 5 unique edges, 4 on the boundary.
	assert.Equal(t, 5, conn.NumFaces)
	assert.Equal(t, 4, conn.BoundaryFaceCount())

	// The shared edge {1,2} is local face 1 of element 0 and local face 2
	// of element 1.
	assert.Equal(t, 1, conn.EToE[0][1])
	assert.Equal(t, 2, conn.EToF[0][1])
	assert.Equal(t, 0, conn.EToE[1][2])
	assert.Equal(t, 1, conn.EToF[1][2])
}

func TestConnectivityTwoTets(t *testing.T) {
	m, err := NewUniform(3, 5, []float64{
		0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1,
	}, 2, []int{0, 1, 2, 3, 1, 2, 3, 4}, 4)
	require.NoError(t, err)

	conn, err := BuildConnectivity(m, Tet)
	require.NoError(t, err)

	// Two tets sharing the {1,2,3} face: 7 unique faces, 6 boundary.
	assert.Equal(t, 7, conn.NumFaces)
	assert.Equal(t, 6, conn.BoundaryFaceCount())

	// Reciprocity: if element e face f sees a neighbor, that neighbor's
	// recorded face must point straight back.
	for e := range conn.EToE {
		for f, nb := range conn.EToE[e] {
			if nb < 0 {
				continue
			}
			nf := conn.EToF[e][f]
			require.GreaterOrEqual(t, nf, 0)
			assert.Equal(t, e, conn.EToE[nb][nf], "element %d face %d", e, f)
			assert.Equal(t, f, conn.EToF[nb][nf], "element %d face %d", e, f)
		}
	}
}

func TestConnectivityRejectsMismatch(t *testing.T) {
	m := triPlusQuad(t)
	_, err := BuildConnectivity(m, Triangle)
	assert.ErrorIs(t, err, ErrMalformedInput)

	u := twoTriangles(t)
	_, err = BuildConnectivity(u, Tet) // wrong dimension
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = BuildConnectivity(u, Quad) // wrong arity
	assert.ErrorIs(t, err, ErrMalformedInput)
}
