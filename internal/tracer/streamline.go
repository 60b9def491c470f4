package tracer

import (
	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/field"
	"github.com/san-kum/streamtrace/internal/integrators"
)

// Domain is the read-only view of a field that tracing needs.
// *field.Field implements it.
type Domain interface {
	VectorAt(p dynamo.Vec3) dynamo.Vec3
	WrapCyclic(p dynamo.Vec3) dynamo.Vec3
	CheckBounds(p dynamo.Vec3) field.Bounds
}

// Streamline is one traced line. Line has room for the full step budget;
// only the first NPoints entries are valid and the rest stay zero.
type Streamline struct {
	Line    []dynamo.Vec3
	NPoints int
	Status  Status
}

// Points returns the recorded part of the line.
func (s Streamline) Points() []dynamo.Vec3 {
	return s.Line[:s.NPoints]
}

// TraceStreamline integrates from seed in the direction given by the sign of
// direction, taking steps of length stepSize, for at most maxSteps steps.
//
// The seed is always recorded. A point that leaves the domain or becomes
// non-finite ends the trace and is not recorded. A maxSteps below 1 is
// treated as 1.
func TraceStreamline(seed dynamo.Vec3, f Domain, direction int, stepSize float64, maxSteps int) Streamline {
	if maxSteps < 1 {
		maxSteps = 1
	}

	s := Streamline{
		Line:    make([]dynamo.Vec3, maxSteps),
		NPoints: 1,
		Status:  Running,
	}

	inc := integrators.UnitStep{Sampler: f, Step: stepSize * sign(direction)}
	rk4 := integrators.NewRK4()

	x := seed
	for i := 0; i < maxSteps; i++ {
		s.Line[i] = x
		s.NPoints = i + 1

		x = rk4.Step(inc, x)
		x = f.WrapCyclic(x)

		if !x.IsFinite() {
			s.Status = NonFinite
			break
		}
		if f.CheckBounds(x) == field.Out {
			s.Status = OutOfBounds
			break
		}
	}

	if s.Status == Running {
		s.Status = RanOutOfSteps
	}

	return s
}

func sign(direction int) float64 {
	switch {
	case direction > 0:
		return 1
	case direction < 0:
		return -1
	default:
		return 0
	}
}
