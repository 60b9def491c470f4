package tracer

import (
	"log/slog"
	"math"
	"time"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/field"
	"github.com/san-kum/streamtrace/internal/logging"
)

// Options control a batch trace.
type Options struct {
	// Direction is forward when positive and backward when negative. Only
	// the sign is used; zero is rejected.
	Direction int
	StepSize  float64
	// MaxSteps bounds the work per seed and sets the length of every line.
	MaxSteps int
	// Workers is the pool size. Values below 1 use one worker per CPU.
	Workers int
	Logger  *slog.Logger
}

func (o Options) Validate() error {
	if o.Direction == 0 {
		return dynamo.Invalid("direction", "must be nonzero")
	}
	if !(o.StepSize > 0) || math.IsInf(o.StepSize, 0) {
		return dynamo.Invalid("step size", "must be positive and finite, got %g", o.StepSize)
	}
	if o.MaxSteps < 1 {
		return dynamo.Invalid("max steps", "must be positive, got %d", o.MaxSteps)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.NewNop()
}

// Batch holds one result per seed, in seed order. Every line has length
// MaxSteps.
type Batch struct {
	Lines    [][]dynamo.Vec3
	NPoints  []int
	Statuses []Status
}

func (b *Batch) Len() int { return len(b.Statuses) }

// Streamline returns the i-th result.
func (b *Batch) Streamline(i int) Streamline {
	return Streamline{Line: b.Lines[i], NPoints: b.NPoints[i], Status: b.Statuses[i]}
}

// Codes returns the termination code of every seed.
func (b *Batch) Codes() []int {
	codes := make([]int, len(b.Statuses))
	for i, s := range b.Statuses {
		codes[i] = s.Code()
	}
	return codes
}

// Counts tallies seeds per termination status.
func (b *Batch) Counts() map[Status]int {
	counts := make(map[Status]int)
	for _, s := range b.Statuses {
		counts[s]++
	}
	return counts
}

// TraceStreamlines builds a field from borrowed axes and values and traces
// every seed through it. Configuration errors wrap dynamo.ErrInvalidConfig
// and are reported before any tracing starts.
func TraceStreamlines(seeds []dynamo.Vec3, x, y, z []float64, values field.Values, cyclic []bool, opts Options) (*Batch, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	f, err := field.New(x, y, z, values, cyclic)
	if err != nil {
		return nil, err
	}
	return TraceField(seeds, f, opts)
}

// TraceField traces every seed through an already built field. The field is
// shared read-only by all workers.
func TraceField(seeds []dynamo.Vec3, f Domain, opts Options) (*Batch, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := opts.logger()
	workers := dynamo.Workers(opts.Workers)
	start := time.Now()

	n := len(seeds)
	b := &Batch{
		Lines:    make([][]dynamo.Vec3, n),
		NPoints:  make([]int, n),
		Statuses: make([]Status, n),
	}

	dynamo.ParallelFor(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			s := TraceStreamline(seeds[i], f, opts.Direction, opts.StepSize, opts.MaxSteps)
			b.Lines[i] = s.Line
			b.NPoints[i] = s.NPoints
			b.Statuses[i] = s.Status
		}
	})

	counts := b.Counts()
	log.Debug("traced streamlines",
		"seeds", n,
		"workers", workers,
		"direction", opts.Direction,
		"out_of_bounds", counts[OutOfBounds],
		"ran_out_of_steps", counts[RanOutOfSteps],
		"non_finite", counts[NonFinite],
		"elapsed", time.Since(start),
	)
	if counts[NonFinite] > 0 {
		log.Warn("streamlines stopped on non-finite points", "count", counts[NonFinite])
	}

	return b, nil
}
