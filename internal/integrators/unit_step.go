package integrators

import "github.com/san-kum/streamtrace/internal/dynamo"

// Sampler returns the field vector at a point.
type Sampler interface {
	VectorAt(p dynamo.Vec3) dynamo.Vec3
}

// UnitStep turns a vector field into fixed-length increments along the local
// field direction, so integration follows arc length rather than time. A
// zero field vector yields a non-finite increment.
type UnitStep struct {
	Sampler Sampler
	Step    float64
}

func (u UnitStep) Increment(x dynamo.Vec3) dynamo.Vec3 {
	v := u.Sampler.VectorAt(x)
	mag := v.Norm()
	return dynamo.Vec3{
		u.Step * v[0] / mag,
		u.Step * v[1] / mag,
		u.Step * v[2] / mag,
	}
}
