package analysis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/rlocus/internal/locus"
)

// ProfilePoint is the gain K(σ) required to put a closed-loop pole at the
// real point σ. Err is set where K is undefined (a pole) or unbounded (a
// zero); Gain is meaningless then.
type ProfilePoint struct {
	Sigma   float64
	Gain    float64
	OnLocus bool
	Err     error
}

// GainProfile samples K along the real axis. On locus segments K is real
// and non-negative; local maxima there are breakaway points and local
// minima are break-in points.
func GainProfile(set *locus.PoleZeroSet, span locus.Interval, samples int) ([]ProfilePoint, error) {
	if !span.Valid() || samples < 2 {
		return nil, locus.ErrInvalidArgument
	}

	sigmas := floats.Span(make([]float64, samples), span.Min, span.Max)
	profile := make([]ProfilePoint, samples)
	for i, sigma := range sigmas {
		pt := ProfilePoint{Sigma: sigma}
		k, err := set.GainForRoot(complex(sigma, 0))
		if err != nil {
			pt.Err = err
		} else {
			pt.Gain = real(k)
		}
		pt.OnLocus, _ = set.IsOnLocus(complex(sigma, 0))
		profile[i] = pt
	}
	return profile, nil
}
