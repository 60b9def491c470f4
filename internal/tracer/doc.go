// Package tracer traces streamlines through a gridded vector field.
//
// [TraceStreamline] follows one seed with fixed-step RK4 along the
// normalized field direction until it leaves the domain, hits a
// non-finite point, or uses up its step budget. [TraceStreamlines] runs
// many seeds over a fixed worker pool and returns results in seed order.
// [StreamTracer] is the front end used by the CLI: it works in physical
// coordinates on a [grid.VectorGrid] and can trace both directions at once.
//
// Termination reasons cross process boundaries as stable integer codes,
// see [Status.Code].
package tracer
