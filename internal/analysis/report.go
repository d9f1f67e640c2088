package analysis

import (
	"errors"
	"fmt"

	"github.com/san-kum/rlocus/internal/config"
	"github.com/san-kum/rlocus/internal/locus"
)

// Point is a complex-plane location in a JSON-friendly form.
type Point struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func PointOf(c complex128) Point {
	return Point{Re: real(c), Im: imag(c)}
}

func (p Point) Complex() complex128 {
	return complex(p.Re, p.Im)
}

func points(cs []complex128) []Point {
	out := make([]Point, len(cs))
	for i, c := range cs {
		out[i] = PointOf(c)
	}
	return out
}

// RootAngle is the departure (or arrival) angle of the branch at a pole
// (or zero).
type RootAngle struct {
	Index   int     `json:"index"`
	At      Point   `json:"at"`
	Degrees float64 `json:"degrees"`
}

// Options selects the windows and resolutions of a study.
type Options struct {
	ScanX      locus.Interval
	ScanY      locus.Interval
	Resolution int
	Tolerance  locus.Angle
	Breakaway  locus.BreakawaySearch
}

// OptionsFrom builds Options from a study configuration.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		ScanX:      cfg.ScanX(),
		ScanY:      cfg.ScanY(),
		Resolution: cfg.Scan.Resolution,
		Tolerance:  locus.Degrees(cfg.Scan.Tolerance),
		Breakaway: locus.BreakawaySearch{
			Range:   locus.Interval{Min: cfg.Breakaway.Min, Max: cfg.Breakaway.Max},
			Samples: cfg.Breakaway.Samples,
			Step:    cfg.Breakaway.Step,
		},
	}
}

// Report gathers every landmark of one study. Centroid and Asymptotes are
// empty when the configuration has no asymptotes (n <= m).
type Report struct {
	Name       string                     `json:"name"`
	Poles      []Point                    `json:"poles"`
	Zeros      []Point                    `json:"zeros"`
	Centroid   *Point                     `json:"centroid,omitempty"`
	Asymptotes []float64                  `json:"asymptotes_deg,omitempty"`
	Segments   []locus.Segment            `json:"segments"`
	Breakaway  []float64                  `json:"breakaway"`
	Probes     map[locus.ProbeOutcome]int `json:"probes"`
	Departures []RootAngle                `json:"departures"`
	Arrivals   []RootAngle                `json:"arrivals"`
	ScanX      locus.Interval             `json:"scan_x"`
	ScanY      locus.Interval             `json:"scan_y"`
	Locus      []Point                    `json:"-"`
}

// Run computes a full report for set.
func Run(name string, set *locus.PoleZeroSet, opts Options) (*Report, error) {
	r := &Report{
		Name:       name,
		Poles:      points(set.Poles()),
		Zeros:      points(set.Zeros()),
		Segments:   set.RealAxisSegments(),
		Departures: []RootAngle{},
		Arrivals:   []RootAngle{},
		ScanX:      opts.ScanX,
		ScanY:      opts.ScanY,
	}

	centroid, err := set.Centroid()
	switch {
	case err == nil:
		c := PointOf(centroid)
		r.Centroid = &c
	case !errors.Is(err, locus.ErrDegenerateConfiguration):
		return nil, err
	}

	angles, err := set.AsymptoteAngles()
	switch {
	case err == nil:
		for _, a := range angles {
			r.Asymptotes = append(r.Asymptotes, a.Deg())
		}
	case !errors.Is(err, locus.ErrDegenerateConfiguration):
		return nil, err
	}

	breakaway, err := set.SearchBreakaway(opts.Breakaway)
	if err != nil {
		return nil, fmt.Errorf("breakaway search: %w", err)
	}
	r.Breakaway = breakaway.Points
	r.Probes = breakaway.Counts()

	for i, p := range set.Poles() {
		if imag(p) == 0 {
			continue
		}
		a, err := set.DepartureAngle(i)
		if err != nil {
			return nil, err
		}
		r.Departures = append(r.Departures, RootAngle{Index: i, At: PointOf(p), Degrees: a.Deg()})
	}
	for i, z := range set.Zeros() {
		if imag(z) == 0 {
			continue
		}
		a, err := set.ArrivalAngle(i)
		if err != nil {
			return nil, err
		}
		r.Arrivals = append(r.Arrivals, RootAngle{Index: i, At: PointOf(z), Degrees: a.Deg()})
	}

	samples, err := set.ScanTolerance(opts.ScanX, opts.ScanY, opts.Resolution, opts.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("locus scan: %w", err)
	}
	r.Locus = points(samples)

	return r, nil
}
