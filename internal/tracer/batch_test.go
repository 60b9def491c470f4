package tracer

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/field"
)

var _ = Describe("TraceStreamlines", func() {
	var (
		ax     []float64
		values field.Values
		opts   Options
	)

	BeforeEach(func() {
		ax = axis(21, 0.5)
		values = uniformValues(21, dynamo.Vec3{1, 0, 0})
		opts = Options{Direction: 1, StepSize: 0.1, MaxSteps: 100, Workers: 4}
	})

	It("traces every seed with its own budget-sized line", func() {
		seeds := []dynamo.Vec3{{5, 5, 5}, {9, 1, 1}, {2, 10, 10}}

		b, err := TraceStreamlines(seeds, ax, ax, ax, values, noCyclic, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Len()).To(Equal(3))

		for i := range seeds {
			Expect(b.Lines[i]).To(HaveLen(100))
			Expect(b.Lines[i][0]).To(Equal(seeds[i]))
			Expect(b.Statuses[i]).To(Equal(OutOfBounds))
		}
		Expect(b.NPoints[0]).To(Equal(51))
		Expect(b.Codes()).To(Equal([]int{2, 2, 2}))
	})

	It("reports RanOutOfSteps with a small budget", func() {
		opts.MaxSteps = 10

		b, err := TraceStreamlines([]dynamo.Vec3{{5, 5, 5}}, ax, ax, ax, values, noCyclic, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.NPoints).To(Equal([]int{10}))
		Expect(b.Statuses).To(Equal([]Status{RanOutOfSteps}))
		Expect(b.Codes()).To(Equal([]int{1}))
	})

	It("keeps results in seed order regardless of worker count", func() {
		seeds := make([]dynamo.Vec3, 64)
		for i := range seeds {
			seeds[i] = dynamo.Vec3{float64(i%20) * 0.5, 5, 5}
		}

		f, err := field.New(ax, ax, ax, values, noCyclic)
		Expect(err).NotTo(HaveOccurred())

		serial := make([]Streamline, len(seeds))
		for i, s := range seeds {
			serial[i] = TraceStreamline(s, f, 1, 0.1, 100)
		}

		for _, workers := range []int{0, 1, 3, 16, 200} {
			opts.Workers = workers
			b, err := TraceStreamlines(seeds, ax, ax, ax, values, noCyclic, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Len()).To(Equal(len(seeds)))

			for i := range seeds {
				Expect(b.Lines[i][0]).To(Equal(seeds[i]), "workers=%d seed %d", workers, i)
				Expect(b.NPoints[i]).To(Equal(serial[i].NPoints), "workers=%d seed %d", workers, i)
				Expect(b.Statuses[i]).To(Equal(serial[i].Status), "workers=%d seed %d", workers, i)
				Expect(b.Lines[i]).To(Equal(serial[i].Line), "workers=%d seed %d", workers, i)
			}
		}
	})

	It("returns an empty batch for no seeds", func() {
		b, err := TraceStreamlines(nil, ax, ax, ax, values, noCyclic, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Len()).To(BeZero())
	})

	It("keeps seeds independent", func() {
		zero := field.NewValues(21, 21, 21)
		// A single zero vector at one corner only affects seeds that sample it.
		zero.Fill(func(i, j, k int) dynamo.Vec3 {
			if i == 0 && j == 0 && k == 0 {
				return dynamo.Vec3{}
			}
			return dynamo.Vec3{1, 0, 0}
		})

		b, err := TraceStreamlines([]dynamo.Vec3{{0, 0, 0}, {5, 5, 5}}, ax, ax, ax, zero, noCyclic, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Statuses).To(Equal([]Status{NonFinite, OutOfBounds}))
		Expect(b.NPoints[1]).To(Equal(51))
		Expect(b.Counts()).To(HaveKeyWithValue(NonFinite, 1))
	})

	DescribeTable("rejects invalid options before tracing",
		func(mutate func(*Options)) {
			mutate(&opts)
			_, err := TraceStreamlines([]dynamo.Vec3{{5, 5, 5}}, ax, ax, ax, values, noCyclic, opts)
			Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
		},
		Entry("zero direction", func(o *Options) { o.Direction = 0 }),
		Entry("zero step", func(o *Options) { o.StepSize = 0 }),
		Entry("negative step", func(o *Options) { o.StepSize = -0.1 }),
		Entry("zero budget", func(o *Options) { o.MaxSteps = 0 }),
	)

	It("rejects an invalid field configuration", func() {
		_, err := TraceStreamlines([]dynamo.Vec3{{5, 5, 5}}, ax, ax, ax[:20], values, noCyclic, opts)
		Expect(err).To(MatchError(dynamo.ErrInvalidConfig))

		_, err = TraceStreamlines([]dynamo.Vec3{{5, 5, 5}}, ax, ax, ax, values, []bool{true}, opts)
		Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
	})
})
