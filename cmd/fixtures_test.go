package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/volsim/volmesh/volmesh"
)

// Every fixture tiles the unit square or cube, so the element measures must
// sum to 1 regardless of grid size.
func TestFixtureMeasures(t *testing.T) {
	for _, kind := range []string{"tri", "quad", "tet", "hex"} {
		t.Run(kind, func(t *testing.T) {
			geom, m, err := fixtureMesh(kind, 3, 2, 4)
			require.NoError(t, err)
			require.NotNil(t, geom)

			vols := make([]float64, m.ElementCount())
			for e := range vols {
				vols[e], err = geom.ElementVolume(e)
				require.NoError(t, err)
			}
			assert.InDelta(t, 1.0, floats.Sum(vols), 1e-10)
		})
	}
}

func TestMixedFixtureLayout(t *testing.T) {
	_, m, err := fixtureMesh("mixed", 5, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, volmesh.Mixed, m.Mode())

	// Cells 0, 2, 4 are quads; cells 1 and 3 contribute two triangles each.
	assert.Equal(t, 7, m.ElementCount())
	var quads, tris int
	for e := 0; e < m.ElementCount(); e++ {
		a, err := m.ElementArity(e)
		require.NoError(t, err)
		switch a {
		case 3:
			tris++
		case 4:
			quads++
		default:
			t.Fatalf("unexpected arity %d", a)
		}
	}
	assert.Equal(t, 3, quads)
	assert.Equal(t, 4, tris)
}

func TestFixtureValidation(t *testing.T) {
	_, _, err := fixtureMesh("pyramid", 2, 2, 2)
	assert.Error(t, err)
	_, _, err = fixtureMesh("tet", 0, 2, 2)
	assert.Error(t, err)
}

func TestRunInfoSmoke(t *testing.T) {
	for _, kind := range []string{"tri", "mixed", "hex"} {
		require.NoError(t, runInfo(kind, 2, 2, 2))
	}
}

func TestRunBenchSmoke(t *testing.T) {
	bp := &BenchParameters{Kind: "tet", Nx: 2, Ny: 2, Nz: 2, Queries: 50, Seed: 1}
	require.NoError(t, runBench(bp))
}
