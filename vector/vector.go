// Package vector provides the small fixed-size 2D/3D vector value type used
// by the volumetric mesh packages. A Vec carries its dimension at runtime so
// that mesh code can be written once for 2D and 3D.
package vector

import (
	"fmt"
	"math"
)

// Vec is a 2D or 3D vector with value semantics. The zero Vec is invalid;
// construct with V2, V3 or FromSlice. Vecs of equal dimension are comparable
// with ==.
type Vec struct {
	dim int
	c   [3]float64
}

func V2(x, y float64) Vec {
	return Vec{dim: 2, c: [3]float64{x, y, 0}}
}

func V3(x, y, z float64) Vec {
	return Vec{dim: 3, c: [3]float64{x, y, z}}
}

// FromSlice builds a Vec from 2 or 3 coordinates.
func FromSlice(c []float64) Vec {
	switch len(c) {
	case 2:
		return V2(c[0], c[1])
	case 3:
		return V3(c[0], c[1], c[2])
	default:
		panic(fmt.Errorf("vector: need 2 or 3 coordinates, have %d", len(c)))
	}
}

func (v Vec) Dim() int { return v.dim }

// At returns component i. Panics if i is outside [0, Dim()).
func (v Vec) At(i int) float64 {
	if i < 0 || i >= v.dim {
		panic(fmt.Errorf("vector: component %d out of range for dimension %d", i, v.dim))
	}
	return v.c[i]
}

func (v Vec) X() float64 { return v.c[0] }
func (v Vec) Y() float64 { return v.c[1] }

// Z returns the third component. Panics for 2D vectors.
func (v Vec) Z() float64 {
	if v.dim < 3 {
		panic(fmt.Errorf("vector: no Z component in dimension %d", v.dim))
	}
	return v.c[2]
}

func (v Vec) checkDim(w Vec) {
	if v.dim != w.dim {
		panic(fmt.Errorf("vector: dimension mismatch %d vs %d", v.dim, w.dim))
	}
}

func (v Vec) Add(w Vec) Vec {
	v.checkDim(w)
	return Vec{dim: v.dim, c: [3]float64{v.c[0] + w.c[0], v.c[1] + w.c[1], v.c[2] + w.c[2]}}
}

func (v Vec) Sub(w Vec) Vec {
	v.checkDim(w)
	return Vec{dim: v.dim, c: [3]float64{v.c[0] - w.c[0], v.c[1] - w.c[1], v.c[2] - w.c[2]}}
}

func (v Vec) Scale(a float64) Vec {
	return Vec{dim: v.dim, c: [3]float64{a * v.c[0], a * v.c[1], a * v.c[2]}}
}

func (v Vec) Dot(w Vec) float64 {
	v.checkDim(w)
	return v.c[0]*w.c[0] + v.c[1]*w.c[1] + v.c[2]*w.c[2]
}

// Cross returns the 3D cross product. Panics unless both vectors are 3D.
func (v Vec) Cross(w Vec) Vec {
	if v.dim != 3 || w.dim != 3 {
		panic(fmt.Errorf("vector: Cross requires 3D vectors, have %d and %d", v.dim, w.dim))
	}
	return V3(
		v.c[1]*w.c[2]-v.c[2]*w.c[1],
		v.c[2]*w.c[0]-v.c[0]*w.c[2],
		v.c[0]*w.c[1]-v.c[1]*w.c[0],
	)
}

// Cross2 returns the scalar (z) component of the 2D cross product.
// Panics unless both vectors are 2D.
func (v Vec) Cross2(w Vec) float64 {
	if v.dim != 2 || w.dim != 2 {
		panic(fmt.Errorf("vector: Cross2 requires 2D vectors, have %d and %d", v.dim, w.dim))
	}
	return v.c[0]*w.c[1] - v.c[1]*w.c[0]
}

func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v. The zero vector
// is returned unchanged.
func (v Vec) Normalize() Vec {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Slice returns the components as a fresh slice of length Dim().
func (v Vec) Slice() []float64 {
	s := make([]float64, v.dim)
	copy(s, v.c[:v.dim])
	return s
}

func (v Vec) String() string {
	if v.dim == 2 {
		return fmt.Sprintf("(%g, %g)", v.c[0], v.c[1])
	}
	return fmt.Sprintf("(%g, %g, %g)", v.c[0], v.c[1], v.c[2])
}
