/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/volsim/volmesh/volmesh"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Build a sample mesh and print its statistics",
	Long: `
Builds a structured sample mesh of the requested element kind and prints the
storage layout, total measure and adjacency statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("kind")
		nx, _ := cmd.Flags().GetInt("nx")
		ny, _ := cmd.Flags().GetInt("ny")
		nz, _ := cmd.Flags().GetInt("nz")
		if err := runInfo(kind, nx, ny, nz); err != nil {
			fmt.Printf("error: %s\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringP("kind", "t", "tet", "element kind: tri, quad, tet, hex or mixed")
	infoCmd.Flags().IntP("nx", "x", 8, "grid cells in x")
	infoCmd.Flags().IntP("ny", "y", 8, "grid cells in y")
	infoCmd.Flags().IntP("nz", "z", 8, "grid cells in z (3D kinds)")
}

var kindByName = map[string]volmesh.ElementKind{
	"tri":  volmesh.Triangle,
	"quad": volmesh.Quad,
	"tet":  volmesh.Tet,
	"hex":  volmesh.Hex,
}

func runInfo(kind string, nx, ny, nz int) error {
	geom, m, err := fixtureMesh(kind, nx, ny, nz)
	if err != nil {
		return err
	}

	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Dimension: %d\n", m.Dim())
	fmt.Printf("  Vertices: %d\n", m.VertexCount())
	fmt.Printf("  Elements: %d\n", m.ElementCount())
	fmt.Printf("  Arity mode: %s\n", m.Mode())

	arityCounts := make(map[int]int)
	for e := 0; e < m.ElementCount(); e++ {
		a, err := m.ElementArity(e)
		if err != nil {
			return err
		}
		arityCounts[a]++
	}
	arities := make([]int, 0, len(arityCounts))
	for a := range arityCounts {
		arities = append(arities, a)
	}
	sort.Ints(arities)
	fmt.Printf("  Element arities:\n")
	for _, a := range arities {
		fmt.Printf("    %d vertices: %d elements\n", a, arityCounts[a])
	}

	if geom != nil {
		vols := make([]float64, m.ElementCount())
		for e := range vols {
			if vols[e], err = geom.ElementVolume(e); err != nil {
				return err
			}
		}
		fmt.Printf("  Total measure: %.6f\n", floats.Sum(vols))
	}

	if ek, ok := kindByName[kind]; ok {
		conn, err := volmesh.BuildConnectivity(m, ek)
		if err != nil {
			return err
		}
		fmt.Printf("  Faces: %d\n", conn.NumFaces)
		fmt.Printf("  Boundary faces: %d\n", conn.BoundaryFaceCount())
	}

	inc, err := volmesh.NewIncidence(m)
	if err != nil {
		return err
	}
	var maxDegree int
	for v := 0; v < m.VertexCount(); v++ {
		d, err := inc.VertexDegree(v)
		if err != nil {
			return err
		}
		if d > maxDegree {
			maxDegree = d
		}
	}
	fmt.Printf("  Max vertex degree: %d\n", maxDegree)
	return nil
}
