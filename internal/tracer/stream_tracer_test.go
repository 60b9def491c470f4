package tracer

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/field"
	"github.com/san-kum/streamtrace/internal/grid"
)

// offsetGrid is a 0..10 cube of +x vectors shifted to start at (100, -5, 2).
func offsetGrid(t *testing.T) *grid.VectorGrid {
	t.Helper()

	g, err := grid.NewUniform(uniformValues(21, dynamo.Vec3{1, 0, 0}), dynamo.Vec3{0.5, 0.5, 0.5}, dynamo.Vec3{100, -5, 2}, [3]bool{})
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

func TestStreamTracer_Forward(t *testing.T) {
	g := offsetGrid(t)
	st := NewStreamTracer(100, 0.1)

	seed := dynamo.Vec3{105, 0, 7}
	res, err := st.Trace([]dynamo.Vec3{seed}, g, Forward)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if res.Backward != nil {
		t.Error("backward batch should be nil")
	}

	line := res.Lines[0]
	if len(line) != res.Forward.NPoints[0] {
		t.Errorf("line has %d points, batch reports %d", len(line), res.Forward.NPoints[0])
	}
	if line[0].Sub(seed).Norm() > 1e-12 {
		t.Errorf("line should start at the seed in physical coordinates, got %v", line[0])
	}
	last := line[len(line)-1]
	if last[0] < 109.8 || last[0] > 110 {
		t.Errorf("line should end near the upper x face, got %v", last)
	}

	rot := res.Terminations()
	if len(rot) != 1 || len(rot[0]) != 1 || rot[0][0] != OutOfBounds {
		t.Errorf("terminations = %v", rot)
	}
}

func TestStreamTracer_Both(t *testing.T) {
	g := offsetGrid(t)
	st := NewStreamTracer(30, 0.1)

	seeds := []dynamo.Vec3{{105, 0, 7}, {101, 1, 3}}
	res, err := st.Trace(seeds, g, Both)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	for i, seed := range seeds {
		nf := res.Forward.NPoints[i]
		nr := res.Backward.NPoints[i]
		line := res.Lines[i]

		if len(line) != nf+nr-1 {
			t.Fatalf("seed %d: %d points, want %d", i, len(line), nf+nr-1)
		}
		if line[nr-1].Sub(seed).Norm() > 1e-12 {
			t.Errorf("seed %d should sit at index %d, got %v", i, nr-1, line[nr-1])
		}
		for j := 1; j < len(line); j++ {
			if !(line[j][0] > line[j-1][0]) {
				t.Fatalf("seed %d: stitched line should run along +x, %v then %v", i, line[j-1], line[j])
			}
		}
	}

	rot := res.Terminations()
	if rot[1][0] != RanOutOfSteps || rot[1][1] != OutOfBounds {
		t.Errorf("seed 1 terminations = %v", rot[1])
	}
}

func TestStreamTracer_Backward(t *testing.T) {
	g := offsetGrid(t)
	st := NewStreamTracer(20, 0.25)

	res, err := st.Trace([]dynamo.Vec3{{105, 0, 7}}, g, Backward)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if res.Forward != nil {
		t.Error("forward batch should be nil")
	}

	line := res.Lines[0]
	if len(line) != 20 {
		t.Fatalf("expected 20 points, got %d", len(line))
	}
	if math.Abs(line[19][0]-(105-19*0.25)) > 1e-9 {
		t.Errorf("last point = %v", line[19])
	}
}

func TestStreamTracer_InvalidDirection(t *testing.T) {
	st := NewStreamTracer(10, 0.1)

	_, err := st.Trace([]dynamo.Vec3{{105, 0, 7}}, offsetGrid(t), 2)
	if !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestStreamTracer_InvalidOptions(t *testing.T) {
	st := NewStreamTracer(0, 0.1)

	_, err := st.Trace([]dynamo.Vec3{{105, 0, 7}}, offsetGrid(t), Forward)
	if !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestStreamTracer_DropsNonFinite(t *testing.T) {
	values := field.NewValues(3, 3, 3)
	g, err := grid.NewUniform(values, dynamo.Vec3{1, 1, 1}, dynamo.Vec3{}, [3]bool{})
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}

	res, err := NewStreamTracer(10, 0.1).Trace([]dynamo.Vec3{{1, 1, 1}, {math.NaN(), 1, 1}}, g, Forward)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	if len(res.Lines[0]) != 1 {
		t.Errorf("zero field should leave only the seed, got %v", res.Lines[0])
	}
	if len(res.Lines[1]) != 0 {
		t.Errorf("NaN seed should be filtered out, got %v", res.Lines[1])
	}
	if res.Forward.Statuses[0] != NonFinite {
		t.Errorf("expected NonFinite, got %v", res.Forward.Statuses[0])
	}
}
