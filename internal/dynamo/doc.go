// Package dynamo provides the primitives shared by the streamline engine.
//
// The package defines the small value types and helpers every other layer
// builds on:
//
//   - [Vec3]: a position or vector in 3D space
//   - [Index3]: the lower-corner index of a grid cell
//   - [ParallelFor]: chunked fan-out over an index range
//   - sentinel errors such as [ErrInvalidConfig]
//
// # Example
//
//	f, err := field.New(x, y, z, values, []bool{false, false, true})
//	if errors.Is(err, dynamo.ErrInvalidConfig) {
//		// bad axes or tensor shape
//	}
//
// # Thread Safety
//
// All types are plain values. [ParallelFor] calls fn concurrently on
// disjoint ranges; fn must only write to state owned by its range.
package dynamo
