package locus

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// BreakawayDecimals is the rounding precision used to deduplicate
// breakaway points found in neighbouring subintervals.
const BreakawayDecimals = 5

// ProbeOutcome classifies what happened on one search subinterval.
type ProbeOutcome string

const (
	ProbeFound        ProbeOutcome = "found"
	ProbeNoSignChange ProbeOutcome = "no_sign_change"
	ProbeCollision    ProbeOutcome = "collision"
	ProbeNotConverged ProbeOutcome = "not_converged"
	ProbeOffLocus     ProbeOutcome = "off_locus"
)

// Probe is the result of searching one subinterval for a stationary point
// of K. Root is set for ProbeFound and ProbeOffLocus.
type Probe struct {
	Interval Interval     `json:"interval"`
	Outcome  ProbeOutcome `json:"outcome"`
	Root     float64      `json:"root,omitempty"`
	Err      error        `json:"-"`
}

// BreakawaySearch parameterizes a breakaway search over the real axis.
type BreakawaySearch struct {
	Range   Interval
	Samples int
	// Step is the central-difference step for dK/ds; zero means
	// DefaultDerivativeStep.
	Step float64
}

// BreakawayReport holds the accepted breakaway points together with the
// outcome of every probed subinterval, in ascending order.
type BreakawayReport struct {
	Points []float64 `json:"points"`
	Probes []Probe   `json:"-"`
}

// Counts tallies probe outcomes.
func (r *BreakawayReport) Counts() map[ProbeOutcome]int {
	counts := make(map[ProbeOutcome]int)
	for _, p := range r.Probes {
		counts[p.Outcome]++
	}
	return counts
}

// FindBreakaway searches [lo, hi] with samples grid points for the points
// where locus branches meet on the real axis. The result is sorted,
// rounded to BreakawayDecimals and free of duplicates. A grid that is too
// coarse can miss closely spaced breakaway points.
func (s *PoleZeroSet) FindBreakaway(lo, hi float64, samples int) ([]float64, error) {
	report, err := s.SearchBreakaway(BreakawaySearch{
		Range:   Interval{Min: lo, Max: hi},
		Samples: samples,
	})
	if err != nil {
		return nil, err
	}
	return report.Points, nil
}

// SearchBreakaway runs a breakaway search and reports every subinterval.
// Collisions and non-convergence only drop the affected subinterval.
func (s *PoleZeroSet) SearchBreakaway(q BreakawaySearch) (*BreakawayReport, error) {
	if !q.Range.Valid() {
		return nil, invalidArgument("breakaway range [%v, %v] is empty or not finite", q.Range.Min, q.Range.Max)
	}
	if q.Samples < 2 {
		return nil, invalidArgument("breakaway search needs at least 2 samples, got %d", q.Samples)
	}
	step := q.Step
	if step == 0 {
		step = DefaultDerivativeStep
	}
	if !(step > 0) {
		return nil, invalidArgument("derivative step must be positive, got %v", step)
	}

	grid := floats.Span(make([]float64, q.Samples), q.Range.Min, q.Range.Max)
	probes := make([]Probe, q.Samples-1)

	parallelFor(len(probes), 64, func(start, end int) {
		for i := start; i < end; i++ {
			probes[i] = s.probe(grid[i], grid[i+1], step)
		}
	})

	seen := make(map[float64]bool)
	points := make([]float64, 0)
	for _, p := range probes {
		if p.Outcome != ProbeFound {
			continue
		}
		r := roundTo(p.Root, BreakawayDecimals)
		if !seen[r] {
			seen[r] = true
			points = append(points, r)
		}
	}
	sort.Float64s(points)

	return &BreakawayReport{Points: points, Probes: probes}, nil
}

func (s *PoleZeroSet) probe(a, b, step float64) Probe {
	pr := Probe{Interval: Interval{Min: a, Max: b}}

	f := func(x float64) (float64, error) {
		d, err := s.GainDerivative(complex(x, 0), step)
		if err != nil {
			return 0, err
		}
		return real(d), nil
	}

	fa, err := f(a)
	if err != nil {
		return failed(pr, err)
	}
	fb, err := f(b)
	if err != nil {
		return failed(pr, err)
	}
	if fa != 0 && fb != 0 && (fa > 0) == (fb > 0) {
		pr.Outcome = ProbeNoSignChange
		return pr
	}

	root, err := brent(f, a, b, fa, fb)
	if err != nil {
		return failed(pr, err)
	}

	// A sign change across a singularity of dK/ds converges onto the
	// singularity; the derivative there is not small.
	fr, err := f(root)
	if err != nil {
		return failed(pr, err)
	}
	if math.IsNaN(fr) || math.Abs(fr) > math.Max(math.Abs(fa), math.Abs(fb)) {
		pr.Err = ErrNonConvergence
		pr.Outcome = ProbeNotConverged
		return pr
	}

	pr.Root = root
	on, err := s.IsOnLocus(complex(root, 0))
	if err != nil || !on {
		pr.Outcome = ProbeOffLocus
		return pr
	}
	pr.Outcome = ProbeFound
	return pr
}

func failed(pr Probe, err error) Probe {
	pr.Err = err
	switch {
	case errors.Is(err, ErrPoleCollision), errors.Is(err, ErrZeroCollision):
		pr.Outcome = ProbeCollision
	default:
		pr.Outcome = ProbeNotConverged
	}
	return pr
}

func roundTo(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	// adding 0 folds -0 into 0
	return math.Round(x*scale)/scale + 0
}
