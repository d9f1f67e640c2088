package locus

import (
	"gonum.org/v1/gonum/floats"
)

// Scan approximates the locus by testing the angle condition with
// DefaultAngleTolerance over a resolution × resolution grid spanning the
// x (real) and y (imaginary) ranges.
func (s *PoleZeroSet) Scan(x, y Interval, resolution int) ([]complex128, error) {
	return s.ScanTolerance(x, y, resolution, DefaultAngleTolerance)
}

// ScanTolerance is Scan with an explicit angle tolerance. Accepted points
// are returned in row-major order: rows run over ascending imaginary parts,
// and within a row the real part ascends. The output density depends on
// tol and resolution; it is a sampled approximation, not the exact curve.
func (s *PoleZeroSet) ScanTolerance(x, y Interval, resolution int, tol Angle) ([]complex128, error) {
	if !x.Valid() || !y.Valid() {
		return nil, invalidArgument("scan window %v × %v is empty or not finite", x, y)
	}
	if resolution < 2 {
		return nil, invalidArgument("scan resolution must be at least 2, got %d", resolution)
	}
	if tol < 0 {
		return nil, invalidArgument("angle tolerance must not be negative, got %v", tol)
	}

	xs := floats.Span(make([]float64, resolution), x.Min, x.Max)
	ys := floats.Span(make([]float64, resolution), y.Min, y.Max)

	rows := make([][]complex128, resolution)
	parallelFor(resolution, 8, func(start, end int) {
		for i := start; i < end; i++ {
			var row []complex128
			for _, re := range xs {
				pt := complex(re, ys[i])
				if s.AngleCondition(pt, tol) {
					row = append(row, pt)
				}
			}
			rows[i] = row
		}
	})

	var total int
	for _, row := range rows {
		total += len(row)
	}
	samples := make([]complex128, 0, total)
	for _, row := range rows {
		samples = append(samples, row...)
	}
	return samples, nil
}
