package locus

import "math"

// Centroid returns the point where the asymptotes meet the real axis,
// (Σ poles - Σ zeros) / (n - m).
func (s *PoleZeroSet) Centroid() (complex128, error) {
	if s.n == s.m {
		return 0, ErrDegenerateConfiguration
	}
	var sum complex128
	for _, p := range s.poles {
		sum += p
	}
	for _, z := range s.zeros {
		sum -= z
	}
	return sum / complex(float64(s.n-s.m), 0), nil
}

// AsymptoteAngles returns the n - m asymptote angles (2q+1)π/(n-m) in index
// order q = 0..n-m-1. Branch q follows asymptote q.
func (s *PoleZeroSet) AsymptoteAngles() ([]Angle, error) {
	k := s.n - s.m
	if k <= 0 {
		return nil, ErrDegenerateConfiguration
	}
	angles := make([]Angle, k)
	for q := range angles {
		angles[q] = Radians(float64(2*q+1) * math.Pi / float64(k))
	}
	return angles, nil
}
