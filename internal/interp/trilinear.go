// Package interp implements trilinear interpolation over a single grid cell.
package interp

import (
	"fmt"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

// Cube holds a scalar at the eight corners of a cell, indexed [ix][iy][iz]
// where each index is 0 for the lower and 1 for the upper corner.
type Cube [2][2][2]float64

// CubeFromSlice builds a Cube from 8 values in [ix][iy][iz] row-major order.
// It panics if values does not hold exactly 8 elements.
func CubeFromSlice(values []float64) Cube {
	if len(values) != 8 {
		panic(fmt.Sprintf("interp: corner values must have shape (2, 2, 2), got %d values", len(values)))
	}
	var c Cube
	for i, v := range values {
		c[i>>2][(i>>1)&1][i&1] = v
	}
	return c
}

// Trilinear blends the corner values at fractional offset t, first along x,
// then y, then z. Offsets outside [0,1] extrapolate linearly.
func Trilinear(c *Cube, t dynamo.Vec3) float64 {
	mx := 1 - t[0]
	my := 1 - t[1]
	mz := 1 - t[2]

	var cx [2][2]float64
	for iy := 0; iy < 2; iy++ {
		for iz := 0; iz < 2; iz++ {
			cx[iy][iz] = c[0][iy][iz]*mx + c[1][iy][iz]*t[0]
		}
	}

	var cy [2]float64
	for iz := 0; iz < 2; iz++ {
		cy[iz] = cx[0][iz]*my + cx[1][iz]*t[1]
	}

	return cy[0]*mz + cy[1]*t[2]
}

// InUnitCube reports whether every component of t lies in [0, 1].
func InUnitCube(t dynamo.Vec3) bool {
	for _, v := range t {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}
