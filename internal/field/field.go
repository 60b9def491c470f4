package field

import (
	"fmt"
	"math"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/interp"
)

// Bounds classifies a point against the grid domain.
type Bounds int

const (
	In Bounds = iota
	Out
)

func (b Bounds) String() string {
	if b == In {
		return "in"
	}
	return "out"
}

// Field is a vector field defined at the corners of a rectilinear grid.
type Field struct {
	axes   [3][]float64
	values Values
	cyclic [3]bool
}

// New checks the shapes of the axes, tensor and cyclic flags and returns a
// Field viewing them. Errors wrap dynamo.ErrInvalidConfig.
func New(x, y, z []float64, values Values, cyclic []bool) (*Field, error) {
	axes := [3][]float64{x, y, z}

	for a, axis := range axes {
		name := dynamo.AxisName(a) + " axis"
		if len(axis) < 2 {
			return nil, dynamo.Invalid(name, "need at least 2 coordinates, got %d", len(axis))
		}
		if axis[0] != 0 {
			return nil, dynamo.Invalid(name, "must start at 0, got %g", axis[0])
		}
		for i := 1; i < len(axis); i++ {
			if !(axis[i] > axis[i-1]) {
				return nil, dynamo.Invalid(name, "not strictly increasing at index %d", i)
			}
		}
		if values.Shape[a] != len(axis) {
			return nil, &dynamo.ConfigError{
				Component: "values",
				Message:   fmt.Sprintf("dimension %d has %d points but %s has %d", a, values.Shape[a], name, len(axis)),
				Wrapped:   fmt.Errorf("%w: %w", dynamo.ErrInvalidConfig, dynamo.ErrDimensionMismatch),
			}
		}
	}

	if values.Shape[3] != 3 {
		return nil, dynamo.Invalid("values", "last dimension must be 3, got %d", values.Shape[3])
	}
	if want := values.Shape[0] * values.Shape[1] * values.Shape[2] * 3; len(values.Data) != want {
		return nil, dynamo.Invalid("values", "shape %v needs %d elements, got %d", values.Shape, want, len(values.Data))
	}
	if len(cyclic) != 3 {
		return nil, dynamo.Invalid("cyclic", "need exactly 3 flags, got %d", len(cyclic))
	}

	f := &Field{axes: axes, values: values}
	copy(f.cyclic[:], cyclic)
	return f, nil
}

// Shape returns the number of grid points along each axis.
func (f *Field) Shape() dynamo.Index3 {
	return dynamo.Index3{len(f.axes[0]), len(f.axes[1]), len(f.axes[2])}
}

// Axis returns the coordinates of axis a. The slice must not be modified.
func (f *Field) Axis(a int) []float64 { return f.axes[a] }

func (f *Field) Cyclic(a int) bool { return f.cyclic[a] }

// Extent returns the upper coordinate of each axis.
func (f *Field) Extent() dynamo.Vec3 {
	var e dynamo.Vec3
	for a, axis := range f.axes {
		e[a] = axis[len(axis)-1]
	}
	return e
}

// GridIdx returns the cell containing p. Along each axis it picks the i with
// axis[i] <= p < axis[i+1]; coordinates matching no cell fall back to the
// last cell, n-2.
func (f *Field) GridIdx(p dynamo.Vec3) dynamo.Index3 {
	var idx dynamo.Index3
	for a, axis := range f.axes {
		last := len(axis) - 2
		idx[a] = last
		for i := 0; i < last; i++ {
			if p[a] >= axis[i] && p[a] < axis[i+1] {
				idx[a] = i
				break
			}
		}
	}
	return idx
}

// VectorAt trilinearly interpolates the field at p.
func (f *Field) VectorAt(p dynamo.Vec3) dynamo.Vec3 {
	idx := f.GridIdx(p)

	var dist dynamo.Vec3
	for a, axis := range f.axes {
		origin := axis[idx[a]]
		size := axis[idx[a]+1] - origin
		dist[a] = (p[a] - origin) / size
	}

	var cubes [3]interp.Cube
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				v := f.values.At(idx[0]+di, idx[1]+dj, idx[2]+dk)
				for c := 0; c < 3; c++ {
					cubes[c][di][dj][dk] = v[c]
				}
			}
		}
	}

	var out dynamo.Vec3
	for c := 0; c < 3; c++ {
		out[c] = interp.Trilinear(&cubes[c], dist)
	}
	return out
}

// WrapCyclic maps each cyclic coordinate to mod(p+L, L) where L is the last
// coordinate of that axis. Coordinates already in [0, L) are left untouched
// so wrapping is exactly idempotent. Other axes pass through.
func (f *Field) WrapCyclic(p dynamo.Vec3) dynamo.Vec3 {
	for a, axis := range f.axes {
		if !f.cyclic[a] {
			continue
		}
		span := axis[len(axis)-1]
		if p[a] >= 0 && p[a] < span {
			continue
		}
		p[a] = math.Mod(p[a]+span, span)
	}
	return p
}

// CheckBounds reports In when every component of p lies within its axis,
// endpoints included.
func (f *Field) CheckBounds(p dynamo.Vec3) Bounds {
	for a, axis := range f.axes {
		if !(p[a] >= axis[0] && p[a] <= axis[len(axis)-1]) {
			return Out
		}
	}
	return In
}
