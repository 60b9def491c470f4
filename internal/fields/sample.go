package fields

import (
	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/field"
)

// Sample evaluates m at every grid corner. Planes along x are filled in
// parallel.
func Sample(m Model, coords [3][]float64) field.Values {
	nx, ny, nz := len(coords[0]), len(coords[1]), len(coords[2])
	values := field.NewValues(nx, ny, nz)

	dynamo.ParallelFor(nx, dynamo.Workers(0), func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					values.Set(i, j, k, m.At(dynamo.Vec3{coords[0][i], coords[1][j], coords[2][k]}))
				}
			}
		}
	})

	return values
}

// MakePeriodic copies the first plane along axis onto the last one so a
// sampled field passes the cyclic seam check despite rounding in the model.
func MakePeriodic(values field.Values, axis int) {
	shape := values.Shape
	var idx [3]int
	for idx[0] = 0; idx[0] < shape[0]; idx[0]++ {
		for idx[1] = 0; idx[1] < shape[1]; idx[1]++ {
			for idx[2] = 0; idx[2] < shape[2]; idx[2]++ {
				if idx[axis] != 0 {
					continue
				}
				last := idx
				last[axis] = shape[axis] - 1
				values.Set(last[0], last[1], last[2], values.At(idx[0], idx[1], idx[2]))
			}
		}
	}
}
