package locus_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rlocus/internal/locus"
)

var _ = Describe("PoleZeroSet", func() {
	var set *locus.PoleZeroSet

	BeforeEach(func() {
		set = locus.New([]complex128{0, -2, -4}, []complex128{-1})
	})

	Describe("asymptotes", func() {
		It("places the centroid at -2.5", func() {
			c, err := set.Centroid()
			Expect(err).NotTo(HaveOccurred())
			Expect(c).To(Equal(complex128(-2.5)))
		})

		It("returns π/2 then 3π/2", func() {
			angles, err := set.AsymptoteAngles()
			Expect(err).NotTo(HaveOccurred())
			Expect(angles).To(HaveLen(2))
			Expect(angles[0].Rad()).To(BeNumerically("~", math.Pi/2, 1e-12))
			Expect(angles[1].Rad()).To(BeNumerically("~", 3*math.Pi/2, 1e-12))
		})

		It("fails explicitly when n == m", func() {
			_, err := locus.New([]complex128{-1}, []complex128{-2}).Centroid()
			Expect(err).To(MatchError(locus.ErrDegenerateConfiguration))
		})
	})

	Describe("real axis", func() {
		It("puts -1 on the locus", func() {
			on, err := set.IsOnLocus(-1)
			Expect(err).NotTo(HaveOccurred())
			Expect(on).To(BeTrue())
		})

		It("rejects complex points instead of answering false", func() {
			_, err := set.IsOnLocus(-1 + 1i)
			Expect(err).To(MatchError(locus.ErrInvalidArgument))
		})

		It("agrees with the segment list", func() {
			segments := set.RealAxisSegments()
			for x := -6.0; x <= 2; x += 0.13 {
				on, err := set.IsOnLocus(complex(x, 0))
				Expect(err).NotTo(HaveOccurred())
				inside := false
				for _, g := range segments {
					if g.Contains(x) {
						inside = true
					}
				}
				Expect(inside).To(Equal(on), "x=%v", x)
			}
		})
	})

	Describe("breakaway points", func() {
		It("finds on-locus points in ascending order", func() {
			points, err := set.FindBreakaway(-20, 5, 1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).NotTo(BeEmpty())
			for _, p := range points {
				on, err := set.IsOnLocus(complex(p, 0))
				Expect(err).NotTo(HaveOccurred())
				Expect(on).To(BeTrue())
				Expect(p).To(BeNumerically(">", -4))
				Expect(p).To(BeNumerically("<", -2))
			}
		})

		It("places a real positive gain at the breakaway point", func() {
			points, err := set.FindBreakaway(-20, 5, 1000)
			Expect(err).NotTo(HaveOccurred())
			k, err := set.GainForRoot(complex(points[0], 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(real(k)).To(BeNumerically(">", 0))
			Expect(imag(k)).To(BeNumerically("~", 0, 1e-12))
		})
	})

	Describe("angle condition", func() {
		It("is monotone in the tolerance", func() {
			for _, s := range []complex128{-3, -1.5, 2i, -2.5 + 3i, -0.7 + 0.2i} {
				if set.AngleCondition(s, locus.Degrees(2)) {
					Expect(set.AngleCondition(s, locus.Degrees(3))).To(BeTrue())
					Expect(set.AngleCondition(s, locus.Degrees(90))).To(BeTrue())
				}
			}
		})

		It("accepts scanned samples whose gain is real and positive", func() {
			samples, err := set.Scan(locus.Interval{Min: -10, Max: 5}, locus.Interval{Min: -10, Max: 10}, 300)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).NotTo(BeEmpty())
			for _, s := range samples {
				k, err := set.GainForRoot(s)
				if err != nil {
					continue
				}
				Expect(cmplx.Phase(k)).To(BeNumerically("~", 0, locus.Degrees(5).Rad()+1e-9), "s=%v", s)
			}
		})
	})

	Describe("scan", func() {
		It("is idempotent", func() {
			x, y := locus.Interval{Min: -10, Max: 5}, locus.Interval{Min: -10, Max: 10}
			first, err := set.Scan(x, y, 200)
			Expect(err).NotTo(HaveOccurred())
			second, err := set.Scan(x, y, 200)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})
	})

	Describe("evaluation at a pole", func() {
		It("fails with ErrPoleCollision instead of returning Inf or NaN", func() {
			for _, p := range set.Poles() {
				g, err := set.EvaluateOpenLoop(p)
				Expect(err).To(MatchError(locus.ErrPoleCollision))
				Expect(cmplx.IsInf(g) || cmplx.IsNaN(g)).To(BeFalse())
			}
		})
	})
})
