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
	"math/rand"
	"os"
	"time"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/volsim/volmesh/vector"
)

// BenchParameters describes a query benchmark run; it can be supplied as a
// YAML file via --paramFile.
type BenchParameters struct {
	Kind    string `yaml:"Kind"`
	Nx      int    `yaml:"Nx"`
	Ny      int    `yaml:"Ny"`
	Nz      int    `yaml:"Nz"`
	Queries int    `yaml:"Queries"`
	Seed    int64  `yaml:"Seed"`
}

func (bp *BenchParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BenchParameters) Print() {
	fmt.Printf("[%s]\t\t= Kind\n", bp.Kind)
	fmt.Printf("%d x %d x %d\t= Grid\n", bp.Nx, bp.Ny, bp.Nz)
	fmt.Printf("%d\t\t= Queries\n", bp.Queries)
	fmt.Printf("%d\t\t= Seed\n", bp.Seed)
}

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Micro-benchmark the mesh query paths",
	Long: `
Builds a sample mesh and times random position, containment and
interpolation-weight queries against it.`,
	Run: func(cmd *cobra.Command, args []string) {
		bp := &BenchParameters{}
		if pf, _ := cmd.Flags().GetString("paramFile"); pf != "" {
			data, err := os.ReadFile(pf)
			if err != nil {
				fmt.Printf("error: %s\n", err)
				os.Exit(1)
			}
			if err = bp.Parse(data); err != nil {
				fmt.Printf("error: %s\n", err)
				os.Exit(1)
			}
		} else {
			bp.Kind, _ = cmd.Flags().GetString("kind")
			bp.Nx, _ = cmd.Flags().GetInt("nx")
			bp.Ny, _ = cmd.Flags().GetInt("ny")
			bp.Nz, _ = cmd.Flags().GetInt("nz")
			bp.Queries, _ = cmd.Flags().GetInt("queries")
			bp.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		bp.Print()
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err := runBench(bp); err != nil {
			fmt.Printf("error: %s\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringP("kind", "t", "tet", "element kind: tri, quad, tet, hex or mixed")
	benchCmd.Flags().IntP("nx", "x", 16, "grid cells in x")
	benchCmd.Flags().IntP("ny", "y", 16, "grid cells in y")
	benchCmd.Flags().IntP("nz", "z", 16, "grid cells in z (3D kinds)")
	benchCmd.Flags().IntP("queries", "q", 1000000, "number of random queries per path")
	benchCmd.Flags().Int64("seed", 1, "random seed")
	benchCmd.Flags().StringP("paramFile", "I", "", "YAML file with benchmark parameters")
	benchCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

func runBench(bp *BenchParameters) error {
	geom, m, err := fixtureMesh(bp.Kind, bp.Nx, bp.Ny, bp.Nz)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(bp.Seed))

	elems := make([]int, bp.Queries)
	locals := make([]int, bp.Queries)
	points := make([]vector.Vec, bp.Queries)
	for i := range elems {
		e := rng.Intn(m.ElementCount())
		a, err := m.ElementArity(e)
		if err != nil {
			return err
		}
		elems[i] = e
		locals[i] = rng.Intn(a)
		if m.Dim() == 2 {
			points[i] = vector.V2(rng.Float64(), rng.Float64())
		} else {
			points[i] = vector.V3(rng.Float64(), rng.Float64(), rng.Float64())
		}
	}

	start := time.Now()
	for i := range elems {
		if _, err := m.ElementVertexPosition(elems[i], locals[i]); err != nil {
			return err
		}
	}
	report("ElementVertexPosition", bp.Queries, time.Since(start))

	if geom == nil {
		return nil
	}

	start = time.Now()
	for i := range elems {
		if _, err := geom.ContainsPoint(elems[i], points[i]); err != nil {
			return err
		}
	}
	report("ContainsPoint", bp.Queries, time.Since(start))

	start = time.Now()
	for i := range elems {
		if _, err := geom.InterpolationWeights(elems[i], points[i]); err != nil {
			return err
		}
	}
	report("InterpolationWeights", bp.Queries, time.Since(start))
	return nil
}

func report(name string, n int, elapsed time.Duration) {
	perOp := elapsed / time.Duration(n)
	fmt.Printf("%-24s %10d queries in %12s (%s/op)\n", name, n, elapsed, perOp)
}
