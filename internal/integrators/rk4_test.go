package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

type constantSampler dynamo.Vec3

func (c constantSampler) VectorAt(p dynamo.Vec3) dynamo.Vec3 { return dynamo.Vec3(c) }

// rotation about z: a unit-speed circle around the origin.
type rotationSampler struct{}

func (rotationSampler) VectorAt(p dynamo.Vec3) dynamo.Vec3 {
	return dynamo.Vec3{-p[1], p[0], 0}
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	// dx/ds = (-y, x) scaled by h: exact solution is a rotation by h per step.
	h := 0.01
	f := IncrementFunc(func(x dynamo.Vec3) dynamo.Vec3 {
		return dynamo.Vec3{-x[1] * h, x[0] * h, 0}
	})

	x := dynamo.Vec3{1, 0, 0}
	steps := 100
	for i := 0; i < steps; i++ {
		x = integ.Step(f, x)
	}

	expectedX := math.Cos(float64(steps) * h)
	expectedY := math.Sin(float64(steps) * h)

	if math.Abs(x[0]-expectedX) > 1e-8 {
		t.Errorf("x error too large: got %.10f, expected %.10f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedY) > 1e-8 {
		t.Errorf("y error too large: got %.10f, expected %.10f", x[1], expectedY)
	}
}

func TestUnitStep_FixedLength(t *testing.T) {
	tests := []struct {
		name string
		v    dynamo.Vec3
		step float64
	}{
		{"weak field", dynamo.Vec3{1e-6, 0, 0}, 0.1},
		{"strong field", dynamo.Vec3{0, 3e4, 4e4}, 0.25},
		{"backward", dynamo.Vec3{1, 1, 1}, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc := UnitStep{Sampler: constantSampler(tt.v), Step: tt.step}.Increment(dynamo.Vec3{})
			if got := inc.Norm(); math.Abs(got-math.Abs(tt.step)) > 1e-12 {
				t.Errorf("increment length = %v, want %v", got, math.Abs(tt.step))
			}
			dot := inc[0]*tt.v[0] + inc[1]*tt.v[1] + inc[2]*tt.v[2]
			if math.Signbit(dot) != math.Signbit(tt.step) {
				t.Errorf("increment %v points the wrong way for step %v", inc, tt.step)
			}
		})
	}
}

func TestUnitStep_ZeroField(t *testing.T) {
	inc := UnitStep{Sampler: constantSampler{}, Step: 0.1}.Increment(dynamo.Vec3{})
	if inc.IsFinite() {
		t.Errorf("expected non-finite increment for zero field, got %v", inc)
	}
}

func TestRK4_UnitStepCircle(t *testing.T) {
	integ := NewRK4()
	f := UnitStep{Sampler: rotationSampler{}, Step: 0.01}

	x := dynamo.Vec3{2, 0, 0}
	for i := 0; i < 500; i++ {
		x = integ.Step(f, x)
	}

	// Arc length 5 on a circle of radius 2.
	r := math.Hypot(x[0], x[1])
	if math.Abs(r-2) > 1e-7 {
		t.Errorf("radius drifted: %v", r)
	}
	angle := math.Atan2(x[1], x[0])
	if math.Abs(angle-2.5) > 1e-7 {
		t.Errorf("angle = %v, want 2.5", angle)
	}
}
