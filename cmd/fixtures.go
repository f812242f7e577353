package cmd

import (
	"fmt"

	"github.com/volsim/volmesh/volmesh"
)

// Structured sample meshes over the unit square/cube, used by the info and
// bench commands. Building them lives here, not in volmesh: the core answers
// queries, it does not generate meshes.

func gridVertex2D(nx int, i, j int) int {
	return j*(nx+1) + i
}

func gridVertex3D(nx, ny int, i, j, k int) int {
	return (k*(ny+1)+j)*(nx+1) + i
}

func gridCoords2D(nx, ny int) []float64 {
	coords := make([]float64, 0, 2*(nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			coords = append(coords, float64(i)/float64(nx), float64(j)/float64(ny))
		}
	}
	return coords
}

func gridCoords3D(nx, ny, nz int) []float64 {
	coords := make([]float64, 0, 3*(nx+1)*(ny+1)*(nz+1))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				coords = append(coords,
					float64(i)/float64(nx), float64(j)/float64(ny), float64(k)/float64(nz))
			}
		}
	}
	return coords
}

// triFixture splits each grid cell into two counter-clockwise triangles.
func triFixture(nx, ny int) (*volmesh.TriMesh, error) {
	coords := gridCoords2D(nx, ny)
	var elems []int
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00 := gridVertex2D(nx, i, j)
			v10 := gridVertex2D(nx, i+1, j)
			v11 := gridVertex2D(nx, i+1, j+1)
			v01 := gridVertex2D(nx, i, j+1)
			elems = append(elems, v00, v10, v11, v00, v11, v01)
		}
	}
	return volmesh.NewTriMesh((nx+1)*(ny+1), coords, 2*nx*ny, elems)
}

func quadFixture(nx, ny int) (*volmesh.QuadMesh, error) {
	coords := gridCoords2D(nx, ny)
	var elems []int
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			elems = append(elems,
				gridVertex2D(nx, i, j), gridVertex2D(nx, i+1, j),
				gridVertex2D(nx, i+1, j+1), gridVertex2D(nx, i, j+1))
		}
	}
	return volmesh.NewQuadMesh((nx+1)*(ny+1), coords, nx*ny, elems)
}

func hexFixture(nx, ny, nz int) (*volmesh.HexMesh, error) {
	coords := gridCoords3D(nx, ny, nz)
	var elems []int
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				elems = append(elems,
					gridVertex3D(nx, ny, i, j, k), gridVertex3D(nx, ny, i+1, j, k),
					gridVertex3D(nx, ny, i+1, j+1, k), gridVertex3D(nx, ny, i, j+1, k),
					gridVertex3D(nx, ny, i, j, k+1), gridVertex3D(nx, ny, i+1, j, k+1),
					gridVertex3D(nx, ny, i+1, j+1, k+1), gridVertex3D(nx, ny, i, j+1, k+1))
			}
		}
	}
	return volmesh.NewHexMesh((nx+1)*(ny+1)*(nz+1), coords, nx*ny*nz, elems)
}

// kuhnTets lists the six tetrahedra of the Kuhn split of a cube, as corner
// indices in the hex vertex ordering. Each tet runs along the main diagonal
// v0-v6.
var kuhnTets = [6][4]int{
	{0, 1, 2, 6},
	{0, 1, 5, 6},
	{0, 3, 2, 6},
	{0, 3, 7, 6},
	{0, 4, 5, 6},
	{0, 4, 7, 6},
}

// tetFixture splits each grid cell into six tetrahedra.
func tetFixture(nx, ny, nz int) (*volmesh.TetMesh, error) {
	coords := gridCoords3D(nx, ny, nz)
	var elems []int
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				corner := [8]int{
					gridVertex3D(nx, ny, i, j, k), gridVertex3D(nx, ny, i+1, j, k),
					gridVertex3D(nx, ny, i+1, j+1, k), gridVertex3D(nx, ny, i, j+1, k),
					gridVertex3D(nx, ny, i, j, k+1), gridVertex3D(nx, ny, i+1, j, k+1),
					gridVertex3D(nx, ny, i+1, j+1, k+1), gridVertex3D(nx, ny, i, j+1, k+1),
				}
				for _, tet := range kuhnTets {
					for _, c := range tet {
						elems = append(elems, corner[c])
					}
				}
			}
		}
	}
	return volmesh.NewTetMesh((nx+1)*(ny+1)*(nz+1), coords, 6*nx*ny*nz, elems)
}

// mixedFixture builds a single strip of cells alternating between one quad
// and two triangles, exercising the Mixed arity layout.
func mixedFixture(nx int) (*volmesh.Mesh, error) {
	coords := gridCoords2D(nx, 1)
	var elems, arities []int
	var count int
	for i := 0; i < nx; i++ {
		v00 := gridVertex2D(nx, i, 0)
		v10 := gridVertex2D(nx, i+1, 0)
		v11 := gridVertex2D(nx, i+1, 1)
		v01 := gridVertex2D(nx, i, 1)
		if i%2 == 0 {
			elems = append(elems, v00, v10, v11, v01)
			arities = append(arities, 4)
			count++
		} else {
			elems = append(elems, v00, v10, v11, v00, v11, v01)
			arities = append(arities, 3, 3)
			count += 2
		}
	}
	return volmesh.NewMixed(2, 2*(nx+1), coords, count, elems, arities)
}

// fixtureMesh builds the requested fixture and returns it behind the
// geometry interface where one exists (the mixed fixture has storage only).
func fixtureMesh(kind string, nx, ny, nz int) (volmesh.VolumetricMesh, *volmesh.Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, nil, fmt.Errorf("grid sizes must be at least 1, have %d x %d x %d", nx, ny, nz)
	}
	switch kind {
	case "tri":
		m, err := triFixture(nx, ny)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Mesh, nil
	case "quad":
		m, err := quadFixture(nx, ny)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Mesh, nil
	case "tet":
		m, err := tetFixture(nx, ny, nz)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Mesh, nil
	case "hex":
		m, err := hexFixture(nx, ny, nz)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Mesh, nil
	case "mixed":
		m, err := mixedFixture(nx)
		if err != nil {
			return nil, nil, err
		}
		return nil, m, nil
	default:
		return nil, nil, fmt.Errorf("unknown mesh kind %q, want tri, quad, tet, hex or mixed", kind)
	}
}
