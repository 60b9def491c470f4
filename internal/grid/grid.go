// Package grid describes a vector field in physical coordinates.
//
// A VectorGrid pairs a (nx, ny, nz, 3) tensor with grid coordinates given
// either as uniform spacing from an origin or as explicit per-axis
// coordinates. It shifts coordinates so the tracing engine sees axes that
// start at 0, and it checks that cyclic axes have matching faces.
package grid

import (
	"math"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/field"
)

type VectorGrid struct {
	vectors field.Values
	coords  [3][]float64
	origin  dynamo.Vec3
	cyclic  [3]bool
	// shifted holds coords - origin, the axes handed to the engine.
	shifted [3][]float64
}

// NewUniform builds a grid with spacing[a] between points along axis a,
// starting at origin.
func NewUniform(vectors field.Values, spacing, origin dynamo.Vec3, cyclic [3]bool) (*VectorGrid, error) {
	if err := checkVectors(vectors); err != nil {
		return nil, err
	}

	var coords [3][]float64
	for a := 0; a < 3; a++ {
		if !(spacing[a] > 0) || math.IsInf(spacing[a], 0) {
			return nil, dynamo.Invalid("grid spacing", "%s spacing must be positive, got %g", dynamo.AxisName(a), spacing[a])
		}
		coords[a] = UniformAxis(vectors.Shape[a], spacing[a], origin[a])
	}

	return newGrid(vectors, coords, origin, cyclic)
}

// NewRectilinear builds a grid from explicit coordinates. The origin is the
// first coordinate of each axis.
func NewRectilinear(vectors field.Values, coords [3][]float64, cyclic [3]bool) (*VectorGrid, error) {
	if err := checkVectors(vectors); err != nil {
		return nil, err
	}

	var origin dynamo.Vec3
	for a := 0; a < 3; a++ {
		if len(coords[a]) != vectors.Shape[a] {
			return nil, dynamo.Invalid("grid coords", "expected %d %s coordinates but got %d", vectors.Shape[a], dynamo.AxisName(a), len(coords[a]))
		}
		origin[a] = coords[a][0]
	}

	return newGrid(vectors, coords, origin, cyclic)
}

func checkVectors(v field.Values) error {
	if v.Shape[3] != 3 {
		return dynamo.Invalid("vectors", "must have shape (nx, ny, nz, 3), got %v", v.Shape)
	}
	for a := 0; a < 3; a++ {
		if v.Shape[a] < 2 {
			return dynamo.Invalid("vectors", "need at least 2 points along %s, got %d", dynamo.AxisName(a), v.Shape[a])
		}
	}
	if len(v.Data) != v.Shape[0]*v.Shape[1]*v.Shape[2]*3 {
		return dynamo.Invalid("vectors", "shape %v does not match %d elements", v.Shape, len(v.Data))
	}
	return nil
}

func newGrid(vectors field.Values, coords [3][]float64, origin dynamo.Vec3, cyclic [3]bool) (*VectorGrid, error) {
	g := &VectorGrid{vectors: vectors, coords: coords, origin: origin, cyclic: cyclic}

	for a := 0; a < 3; a++ {
		if cyclic[a] && !g.facesMatch(a) {
			return nil, dynamo.Invalid("cyclic", "grid values in dimension %s (size %d) do not match on each side of the cube", dynamo.AxisName(a), vectors.Shape[a])
		}

		g.shifted[a] = make([]float64, len(coords[a]))
		for i, c := range coords[a] {
			g.shifted[a][i] = c - origin[a]
		}
	}

	return g, nil
}

// facesMatch reports whether the first and last planes along axis a hold
// identical vectors.
func (g *VectorGrid) facesMatch(a int) bool {
	shape := g.vectors.Shape
	last := shape[a] - 1

	var idx, other [3]int
	for idx[0] = 0; idx[0] < shape[0]; idx[0]++ {
		for idx[1] = 0; idx[1] < shape[1]; idx[1]++ {
			for idx[2] = 0; idx[2] < shape[2]; idx[2]++ {
				if idx[a] != 0 {
					continue
				}
				other = idx
				other[a] = last
				if g.vectors.At(idx[0], idx[1], idx[2]) != g.vectors.At(other[0], other[1], other[2]) {
					return false
				}
			}
		}
	}
	return true
}

func (g *VectorGrid) Vectors() field.Values { return g.vectors }

// Coords returns the physical coordinates along axis a.
func (g *VectorGrid) Coords(a int) []float64 { return g.coords[a] }

// Origin is the physical coordinate of grid index (0, 0, 0).
func (g *VectorGrid) Origin() dynamo.Vec3 { return g.origin }

func (g *VectorGrid) Cyclic() [3]bool { return g.cyclic }

// Bounds returns the lower and upper physical corners of the grid.
func (g *VectorGrid) Bounds() (lo, hi dynamo.Vec3) {
	for a := 0; a < 3; a++ {
		lo[a] = g.coords[a][0]
		hi[a] = g.coords[a][len(g.coords[a])-1]
	}
	return lo, hi
}

// Field returns the engine view of the grid: axes shifted to start at 0
// over the same, uncopied tensor.
func (g *VectorGrid) Field() (*field.Field, error) {
	return field.New(g.shifted[0], g.shifted[1], g.shifted[2], g.vectors, g.cyclic[:])
}

// ToGrid converts a physical point to engine coordinates.
func (g *VectorGrid) ToGrid(p dynamo.Vec3) dynamo.Vec3 { return p.Sub(g.origin) }

// ToPhysical converts an engine point back to physical coordinates.
func (g *VectorGrid) ToPhysical(p dynamo.Vec3) dynamo.Vec3 { return p.Add(g.origin) }

// UniformAxis returns n coordinates starting at origin with the given
// spacing.
func UniformAxis(n int, spacing, origin float64) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = spacing*float64(i) + origin
	}
	return axis
}
