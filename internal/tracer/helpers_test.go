package tracer

import (
	"testing"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/field"
)

// axis returns 0, spacing, 2*spacing, ... up to n points.
func axis(n int, spacing float64) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i) * spacing
	}
	return a
}

// uniformValues fills an n*n*n tensor with v.
func uniformValues(n int, v dynamo.Vec3) field.Values {
	values := field.NewValues(n, n, n)
	values.Fill(func(i, j, k int) dynamo.Vec3 { return v })
	return values
}

// cubeField is a 0..10 cube with 0.5 spacing holding a constant vector.
func cubeField(t testing.TB, v dynamo.Vec3, cyclic []bool) *field.Field {
	t.Helper()

	ax := axis(21, 0.5)
	f, err := field.New(ax, ax, ax, uniformValues(21, v), cyclic)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return f
}

// swirlField rotates about the z axis through (5, 5) and drifts upward.
func swirlField(t testing.TB) *field.Field {
	t.Helper()

	ax := axis(21, 0.5)
	values := field.NewValues(21, 21, 21)
	values.Fill(func(i, j, k int) dynamo.Vec3 {
		x, y := ax[i]-5, ax[j]-5
		return dynamo.Vec3{-y, x, 0.3}
	})

	f, err := field.New(ax, ax, ax, values, []bool{false, false, false})
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return f
}

var noCyclic = []bool{false, false, false}
