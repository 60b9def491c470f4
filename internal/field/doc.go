// Package field samples a 3D vector field stored at the corners of a
// rectilinear grid.
//
// A [Field] borrows three coordinate axes and a row-major (nx, ny, nz, 3)
// value tensor; neither is copied. Construction with [New] is the only
// validation point. After that every method is read-only and safe for
// concurrent use by any number of goroutines.
//
// Sampling happens in two stages that are kept separate on purpose:
// [Field.GridIdx] always resolves a usable cell (clamping to the last cell),
// and [Field.CheckBounds] decides whether a point is actually inside the
// domain.
package field
