package integrators

import "github.com/san-kum/streamtrace/internal/dynamo"

// Increment returns the step a first-order method would take from x. The
// step length is already folded in.
type Increment interface {
	Increment(x dynamo.Vec3) dynamo.Vec3
}

// IncrementFunc adapts a plain function to Increment.
type IncrementFunc func(x dynamo.Vec3) dynamo.Vec3

func (f IncrementFunc) Increment(x dynamo.Vec3) dynamo.Vec3 { return f(x) }

// RK4 is the classical fixed-step 4-stage Runge-Kutta method.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f Increment, x dynamo.Vec3) dynamo.Vec3 {
	k1 := f.Increment(x)

	var scratch dynamo.Vec3
	for i := 0; i < 3; i++ {
		scratch[i] = x[i] + 0.5*k1[i]
	}
	k2 := f.Increment(scratch)

	for i := 0; i < 3; i++ {
		scratch[i] = x[i] + 0.5*k2[i]
	}
	k3 := f.Increment(scratch)

	for i := 0; i < 3; i++ {
		scratch[i] = x[i] + k3[i]
	}
	k4 := f.Increment(scratch)

	var result dynamo.Vec3
	for i := 0; i < 3; i++ {
		result[i] = x[i] + (k1[i]+2*k2[i]+2*k3[i]+k4[i])/6
	}

	return result
}
