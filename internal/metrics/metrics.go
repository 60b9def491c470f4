package metrics

import (
	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/tracer"
)

// Metric accumulates a summary value over traced lines.
type Metric interface {
	Name() string
	Observe(line []dynamo.Vec3, statuses []tracer.Status)
	Value() float64
	Reset()
}

// Default returns the metrics reported for every run. Segments longer than
// maxSegment are taken to be cyclic wraps and left out of arc lengths.
func Default(maxSegment float64) []Metric {
	return []Metric{
		NewArcLength(maxSegment),
		NewPointCount(),
		NewTermination("escaped", tracer.OutOfBounds),
		NewTermination("exhausted", tracer.RanOutOfSteps),
		NewTermination("non_finite", tracer.NonFinite),
	}
}

// Evaluate resets each metric, feeds it every line of res and returns the
// values by name.
func Evaluate(res *tracer.Result, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}

	rot := res.Terminations()
	for i, line := range res.Lines {
		for _, m := range ms {
			m.Observe(line, rot[i])
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// ArcLength is the mean path length per line.
type ArcLength struct {
	maxSegment float64
	total      float64
	lines      int
}

func NewArcLength(maxSegment float64) *ArcLength {
	return &ArcLength{maxSegment: maxSegment}
}

func (a *ArcLength) Name() string { return "arc_length_mean" }

func (a *ArcLength) Observe(line []dynamo.Vec3, _ []tracer.Status) {
	for i := 1; i < len(line); i++ {
		d := line[i].Sub(line[i-1]).Norm()
		if a.maxSegment > 0 && d > a.maxSegment {
			continue
		}
		a.total += d
	}
	a.lines++
}

func (a *ArcLength) Value() float64 {
	if a.lines == 0 {
		return 0
	}
	return a.total / float64(a.lines)
}

func (a *ArcLength) Reset() {
	a.total = 0
	a.lines = 0
}

// PointCount is the mean number of points per line.
type PointCount struct {
	points int
	lines  int
}

func NewPointCount() *PointCount { return &PointCount{} }

func (p *PointCount) Name() string { return "points_mean" }

func (p *PointCount) Observe(line []dynamo.Vec3, _ []tracer.Status) {
	p.points += len(line)
	p.lines++
}

func (p *PointCount) Value() float64 {
	if p.lines == 0 {
		return 0
	}
	return float64(p.points) / float64(p.lines)
}

func (p *PointCount) Reset() {
	p.points = 0
	p.lines = 0
}

// Termination is the fraction of traced directions that ended with status.
type Termination struct {
	name    string
	status  tracer.Status
	hits    int
	samples int
}

func NewTermination(name string, status tracer.Status) *Termination {
	return &Termination{name: name, status: status}
}

func (t *Termination) Name() string { return t.name }

func (t *Termination) Observe(_ []dynamo.Vec3, statuses []tracer.Status) {
	for _, s := range statuses {
		if s == t.status {
			t.hits++
		}
		t.samples++
	}
}

func (t *Termination) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return float64(t.hits) / float64(t.samples)
}

func (t *Termination) Reset() {
	t.hits = 0
	t.samples = 0
}
