package paramstore_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/paramstore"
	"github.com/san-kum/odelab/internal/problems"
)

var _ = Describe("Store", func() {
	var store *paramstore.Store

	BeforeEach(func() {
		store = paramstore.New(problems.NewPracticum(), ode.DefaultParams())
	})

	Describe("Set", func() {
		It("stores the value and notifies observers in registration order", func() {
			var calls []string
			Expect(store.Subscribe(paramstore.Step, func() { calls = append(calls, "first") })).To(Succeed())
			Expect(store.Subscribe(paramstore.Step, func() { calls = append(calls, "second") })).To(Succeed())

			Expect(store.Set(paramstore.Step, 0.5)).To(Succeed())

			Expect(store.Params().Step).To(Equal(0.5))
			Expect(calls).To(Equal([]string{"first", "second"}))
		})

		It("does nothing when the value is unchanged", func() {
			calls := 0
			Expect(store.Subscribe(paramstore.X0, func() { calls++ })).To(Succeed())

			Expect(store.Set(paramstore.X0, 1)).To(Succeed())

			Expect(calls).To(BeZero())
		})

		It("compares values exactly", func() {
			calls := 0
			Expect(store.Subscribe(paramstore.Y0, func() { calls++ })).To(Succeed())

			Expect(store.Set(paramstore.Y0, math.Nextafter(2, 3))).To(Succeed())

			Expect(calls).To(Equal(1))
		})

		It("notifies only observers of the changed parameter", func() {
			stepCalls, gridCalls := 0, 0
			Expect(store.Subscribe(paramstore.Step, func() { stepCalls++ })).To(Succeed())
			Expect(store.Subscribe(paramstore.GridSize, func() { gridCalls++ })).To(Succeed())

			Expect(store.Set(paramstore.GridSize, 4)).To(Succeed())

			Expect(stepCalls).To(BeZero())
			Expect(gridCalls).To(Equal(1))
		})

		It("makes the new value visible to observers", func() {
			var seen float64
			var lengths []int
			Expect(store.Subscribe(paramstore.GridSize, func() {
				seen = store.Params().GridSize
				curves, err := store.Trajectories()
				Expect(err).NotTo(HaveOccurred())
				lengths = append(lengths, curves[0].Series.Len())
			})).To(Succeed())

			Expect(store.Set(paramstore.GridSize, 3)).To(Succeed())

			Expect(seen).To(Equal(3.0))
			Expect(lengths).To(Equal([]int{4}))
		})

		It("lets an observer change another parameter", func() {
			Expect(store.Subscribe(paramstore.Sf, func() {
				Expect(store.Set(paramstore.S0, 1)).To(Succeed())
			})).To(Succeed())

			Expect(store.Set(paramstore.Sf, 3)).To(Succeed())

			Expect(store.Params().S0).To(Equal(1.0))
		})

		DescribeTable("rejects out of bounds values and keeps the old ones",
			func(name string, v float64) {
				before := store.Params()
				calls := 0
				Expect(store.Subscribe(name, func() { calls++ })).To(Succeed())

				err := store.Set(name, v)

				Expect(err).To(HaveOccurred())
				Expect(store.Params()).To(Equal(before))
				Expect(calls).To(BeZero())
			},
			Entry("zero step", paramstore.Step, 0.0),
			Entry("negative step", paramstore.Step, -1.0),
			Entry("NaN step", paramstore.Step, math.NaN()),
			Entry("negative grid", paramstore.GridSize, -1.0),
			Entry("zero s0", paramstore.S0, 0.0),
			Entry("zero sstep", paramstore.SStep, 0.0),
			Entry("infinite y0", paramstore.Y0, math.Inf(1)),
			Entry("singular x0", paramstore.X0, 0.0),
		)

		It("wraps bounds failures", func() {
			Expect(store.Set(paramstore.Step, 0)).To(MatchError(ode.ErrParameterBounds))
			Expect(store.Set(paramstore.X0, 0)).To(MatchError(ode.ErrSingular))
		})

		It("accepts x0 = 0 when the constant is fixed", func() {
			fixed := paramstore.New(problems.NewPracticumFixed(1), ode.DefaultParams())
			Expect(fixed.Set(paramstore.X0, 0)).To(Succeed())
		})

		It("rejects unknown names", func() {
			Expect(store.Set("h", 1)).To(MatchError(paramstore.ErrUnknownParameter))
		})
	})

	Describe("SetString", func() {
		It("parses numbers", func() {
			Expect(store.SetString(paramstore.Step, " 0.25 ")).To(Succeed())
			Expect(store.Params().Step).To(Equal(0.25))
		})

		It("leaves parameters unchanged on malformed input", func() {
			calls := 0
			Expect(store.Subscribe(paramstore.Step, func() { calls++ })).To(Succeed())

			Expect(store.SetString(paramstore.Step, "abc")).NotTo(Succeed())

			Expect(store.Params()).To(Equal(ode.DefaultParams()))
			Expect(calls).To(BeZero())
		})
	})

	Describe("Subscribe", func() {
		It("fails for unknown parameters", func() {
			err := store.Subscribe("nope", func() {})
			Expect(err).To(MatchError(paramstore.ErrUnknownParameter))
		})
	})

	Describe("Initialize", func() {
		It("calls every observer once", func() {
			counts := map[string]int{}
			for _, name := range paramstore.Names() {
				name := name
				Expect(store.Subscribe(name, func() { counts[name]++ })).To(Succeed())
			}

			store.Initialize()

			for _, name := range paramstore.Names() {
				Expect(counts[name]).To(Equal(1), name)
			}
		})
	})

	Describe("Apply", func() {
		It("notifies observers of changed parameters only", func() {
			var calls []string
			for _, name := range paramstore.Names() {
				name := name
				Expect(store.Subscribe(name, func() { calls = append(calls, name) })).To(Succeed())
			}

			next := ode.DefaultParams()
			next.Step = 0.5
			next.X0 = 2
			next.Y0 = 20
			Expect(store.Apply(next)).To(Succeed())

			Expect(store.Params()).To(Equal(next))
			Expect(calls).To(Equal([]string{paramstore.X0, paramstore.Y0, paramstore.Step}))
		})

		It("rejects the whole set when one value is invalid", func() {
			next := ode.DefaultParams()
			next.Step = 0.5
			next.SStep = -1

			Expect(store.Apply(next)).To(MatchError(ode.ErrParameterBounds))
			Expect(store.Params()).To(Equal(ode.DefaultParams()))
		})
	})

	Describe("queries", func() {
		It("returns one trajectory per method in display order", func() {
			curves, err := store.Trajectories()
			Expect(err).NotTo(HaveOccurred())
			Expect(curves).To(HaveLen(4))
			for i, m := range integrators.Methods() {
				Expect(curves[i].Method).To(Equal(m))
				Expect(curves[i].Series.Xs).To(HaveLen(10))
			}
		})

		It("returns error series for the approximations", func() {
			global, err := store.GlobalErrors()
			Expect(err).NotTo(HaveOccurred())
			local, err := store.LocalErrors()
			Expect(err).NotTo(HaveOccurred())
			steps, err := store.StepErrors()
			Expect(err).NotTo(HaveOccurred())

			Expect(global).To(HaveLen(3))
			Expect(local).To(HaveLen(3))
			Expect(steps).To(HaveLen(3))
			Expect(steps[0].Series.Xs).To(HaveLen(10))
		})

		It("is idempotent", func() {
			first, err := store.Trajectories()
			Expect(err).NotTo(HaveOccurred())
			second, err := store.Trajectories()
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("follows parameter changes", func() {
			Expect(store.Set(paramstore.GridSize, 0)).To(Succeed())

			curves, err := store.Trajectories()
			Expect(err).NotTo(HaveOccurred())
			Expect(curves[0].Series.Xs).To(Equal([]float64{1}))
		})

		It("builds a complete report", func() {
			r, err := store.Report()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Problem).To(Equal("practicum"))
			Expect(r.Params).To(Equal(ode.DefaultParams()))
			Expect(r.Steps).To(HaveLen(3))
		})
	})
})
