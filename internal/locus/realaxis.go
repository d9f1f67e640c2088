package locus

import (
	"encoding/json"
	"math"
	"sort"
)

// Interval is a closed range of real values.
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Valid reports whether the interval is finite and non-empty.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max) &&
		!math.IsInf(i.Min, 0) && !math.IsInf(i.Max, 0) && i.Min < i.Max
}

// Segment is a stretch of the real axis lying on the locus. Min is -Inf for
// the segment that runs off to the left.
type Segment struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether x lies inside the segment, ends included.
func (g Segment) Contains(x float64) bool {
	return x >= g.Min && x <= g.Max
}

type segmentJSON struct {
	Min *float64 `json:"min"`
	Max float64  `json:"max"`
}

// MarshalJSON encodes an unbounded left end as null.
func (g Segment) MarshalJSON() ([]byte, error) {
	w := segmentJSON{Max: g.Max}
	if !math.IsInf(g.Min, -1) {
		lo := g.Min
		w.Min = &lo
	}
	return json.Marshal(w)
}

func (g *Segment) UnmarshalJSON(data []byte) error {
	var w segmentJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	g.Max = w.Max
	g.Min = math.Inf(-1)
	if w.Min != nil {
		g.Min = *w.Min
	}
	return nil
}

// IsOnLocus applies the odd-count rule: a real point is on the locus when
// the number of real poles and real zeros strictly to its right is odd.
// Complex poles and zeros never take part. A point with a non-zero
// imaginary part is rejected with ErrInvalidArgument.
func (s *PoleZeroSet) IsOnLocus(point complex128) (bool, error) {
	if imag(point) != 0 {
		return false, invalidArgument("real-axis test needs a real point, got %v", point)
	}
	x := real(point)
	if math.IsNaN(x) {
		return false, invalidArgument("real-axis test point is NaN")
	}
	return s.countRight(x)%2 == 1, nil
}

func (s *PoleZeroSet) countRight(x float64) int {
	count := 0
	for _, p := range s.poles {
		if imag(p) == 0 && real(p) > x {
			count++
		}
	}
	for _, z := range s.zeros {
		if imag(z) == 0 && real(z) > x {
			count++
		}
	}
	return count
}

// RealAxisSegments returns the maximal real-axis segments on the locus in
// ascending order.
func (s *PoleZeroSet) RealAxisSegments() []Segment {
	critical := make([]float64, 0, s.n+s.m)
	for _, p := range s.poles {
		if imag(p) == 0 {
			critical = append(critical, real(p))
		}
	}
	for _, z := range s.zeros {
		if imag(z) == 0 {
			critical = append(critical, real(z))
		}
	}
	if len(critical) == 0 {
		return nil
	}
	sort.Float64s(critical)
	uniq := critical[:1]
	for _, c := range critical[1:] {
		if c != uniq[len(uniq)-1] {
			uniq = append(uniq, c)
		}
	}

	var segments []Segment
	add := func(lo, hi float64) {
		if n := len(segments); n > 0 && segments[n-1].Max == lo {
			segments[n-1].Max = hi
			return
		}
		segments = append(segments, Segment{Min: lo, Max: hi})
	}

	if s.countRight(math.Inf(-1))%2 == 1 {
		add(math.Inf(-1), uniq[0])
	}
	for i := 0; i+1 < len(uniq); i++ {
		mid := (uniq[i] + uniq[i+1]) / 2
		if s.countRight(mid)%2 == 1 {
			add(uniq[i], uniq[i+1])
		}
	}
	return segments
}
