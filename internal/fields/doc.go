// Package fields provides analytic vector fields for building test and
// demo grids.
//
// Each model implements [Model], returning the field vector at a point, and
// exposes its parameters through GetParams/SetParam:
//
//   - [Uniform]: a constant vector
//   - [Vortex]: solid-body rotation about an axis parallel to z, with drift
//   - [ABC]: Arnold-Beltrami-Childress flow, periodic over 2*pi
//   - [Dipole]: softened magnetic dipole
//   - [Shear]: linear shear flow
//
// [Sample] evaluates a model at every corner of a rectilinear grid:
//
//	m, _ := fields.New("abc", nil)
//	values := fields.Sample(m, coords)
package fields
