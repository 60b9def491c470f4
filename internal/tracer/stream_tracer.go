package tracer

import (
	"log/slog"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/grid"
)

// Trace directions accepted by StreamTracer.Trace.
const (
	Backward = -1
	Both     = 0
	Forward  = 1
)

// StreamTracer traces seeds given in physical coordinates through a
// VectorGrid.
type StreamTracer struct {
	// MaxSteps is the step budget per direction, and so the largest number
	// of points on a one-directional line.
	MaxSteps int
	StepSize float64
	Workers  int
	Logger   *slog.Logger
}

func NewStreamTracer(maxSteps int, stepSize float64) *StreamTracer {
	return &StreamTracer{MaxSteps: maxSteps, StepSize: stepSize}
}

// Result is a traced set of lines in physical coordinates.
type Result struct {
	Seeds []dynamo.Vec3
	// Lines are trimmed to their recorded points. With direction Both each
	// line runs from the far end of the backward trace, through the seed,
	// to the far end of the forward trace. Non-finite rows are dropped.
	Lines [][]dynamo.Vec3
	// Forward and Backward hold the raw engine output of each traced
	// direction, in grid coordinates; either is nil when not traced.
	Forward  *Batch
	Backward *Batch
}

// Terminations returns the termination status per seed for each traced
// direction, forward first.
func (r *Result) Terminations() [][]Status {
	out := make([][]Status, len(r.Seeds))
	for i := range r.Seeds {
		if r.Forward != nil {
			out[i] = append(out[i], r.Forward.Statuses[i])
		}
		if r.Backward != nil {
			out[i] = append(out[i], r.Backward.Statuses[i])
		}
	}
	return out
}

// Trace traces seeds through g. direction is Forward, Backward or Both.
func (t *StreamTracer) Trace(seeds []dynamo.Vec3, g *grid.VectorGrid, direction int) (*Result, error) {
	if direction < Backward || direction > Forward {
		return nil, dynamo.Invalid("direction", "must be -1, 1 or 0, got %d", direction)
	}

	f, err := g.Field()
	if err != nil {
		return nil, err
	}

	local := make([]dynamo.Vec3, len(seeds))
	for i, s := range seeds {
		local[i] = g.ToGrid(s)
	}

	opts := Options{
		StepSize: t.StepSize,
		MaxSteps: t.MaxSteps,
		Workers:  t.Workers,
		Logger:   t.Logger,
	}

	res := &Result{Seeds: seeds}

	if direction == Forward || direction == Both {
		opts.Direction = Forward
		if res.Forward, err = TraceField(local, f, opts); err != nil {
			return nil, err
		}
	}
	if direction == Backward || direction == Both {
		opts.Direction = Backward
		if res.Backward, err = TraceField(local, f, opts); err != nil {
			return nil, err
		}
	}

	res.Lines = make([][]dynamo.Vec3, len(seeds))
	for i := range seeds {
		var line []dynamo.Vec3
		switch {
		case res.Forward != nil && res.Backward != nil:
			line = stitch(res.Backward.Streamline(i).Points(), res.Forward.Streamline(i).Points())
		case res.Forward != nil:
			line = append(line, res.Forward.Streamline(i).Points()...)
		default:
			line = append(line, res.Backward.Streamline(i).Points()...)
		}
		res.Lines[i] = toPhysical(g, line)
	}

	return res, nil
}

// stitch joins a backward and a forward line that share their first point.
func stitch(back, fwd []dynamo.Vec3) []dynamo.Vec3 {
	line := make([]dynamo.Vec3, 0, len(back)+len(fwd)-1)
	for i := len(back) - 1; i > 0; i-- {
		line = append(line, back[i])
	}
	return append(line, fwd...)
}

func toPhysical(g *grid.VectorGrid, line []dynamo.Vec3) []dynamo.Vec3 {
	out := line[:0]
	for _, p := range line {
		if !p.IsFinite() {
			continue
		}
		out = append(out, g.ToPhysical(p))
	}
	return out
}
