package locus

import "math"

// DefaultAngleTolerance is the angle-condition tolerance used by Scan.
var DefaultAngleTolerance = Degrees(5)

// DepartureAngle returns the angle at which the locus branch leaves the
// pole at index i: 180° - (Σ∠(p - other poles) - Σ∠(p - zeros)). Other
// poles are selected by index, so coincident poles count with their full
// multiplicity. The result is normalized into (-180°, 180°].
//
// A coincident copy of p contributes 0°. For a pole of multiplicity r the
// result is therefore r times a departure angle: the r branches leave at
// (result + 360°·l) / r for l = 0..r-1.
func (s *PoleZeroSet) DepartureAngle(i int) (Angle, error) {
	if i < 0 || i >= s.n {
		return 0, invalidArgument("pole index %d out of range [0, %d)", i, s.n)
	}
	p := s.poles[i]
	var poleSum, zeroSum float64
	for j, other := range s.poles {
		if j != i {
			poleSum += arg(p, other)
		}
	}
	for _, z := range s.zeros {
		zeroSum += arg(p, z)
	}
	return Angle(math.Pi - (poleSum - zeroSum)).Normalize(), nil
}

// DepartureAngleAt is DepartureAngle for the first pole equal to p.
func (s *PoleZeroSet) DepartureAngleAt(p complex128) (Angle, error) {
	for i, pole := range s.poles {
		if pole == p {
			return s.DepartureAngle(i)
		}
	}
	return 0, invalidArgument("%v is not a configured pole", p)
}

// ArrivalAngle returns the angle at which a branch arrives at the zero at
// index i: 180° - (Σ∠(z - other zeros) - Σ∠(z - poles)).
func (s *PoleZeroSet) ArrivalAngle(i int) (Angle, error) {
	if i < 0 || i >= s.m {
		return 0, invalidArgument("zero index %d out of range [0, %d)", i, s.m)
	}
	z := s.zeros[i]
	var zeroSum, poleSum float64
	for j, other := range s.zeros {
		if j != i {
			zeroSum += arg(z, other)
		}
	}
	for _, p := range s.poles {
		poleSum += arg(z, p)
	}
	return Angle(math.Pi - (zeroSum - poleSum)).Normalize(), nil
}

// ArrivalAngleAt is ArrivalAngle for the first zero equal to z.
func (s *PoleZeroSet) ArrivalAngleAt(z complex128) (Angle, error) {
	for i, zero := range s.zeros {
		if zero == z {
			return s.ArrivalAngle(i)
		}
	}
	return 0, invalidArgument("%v is not a configured zero", z)
}

// AngleCondition reports whether x satisfies the locus angle condition:
// Σ∠(x - zeros) - Σ∠(x - poles), reduced into [0°, 360°), lies within tol
// of an odd multiple of 180°. Inside one revolution 180° and 540° share the
// same residue, so a single distance check covers both. Widening tol never
// turns an accepted point into a rejected one.
//
// The phase is undefined at a pole or zero, so those points are always
// rejected; AtRoot reports them.
func (s *PoleZeroSet) AngleCondition(x complex128, tol Angle) bool {
	if s.AtRoot(x) != nil {
		return false
	}
	return angleResidual(s.phase(x)) <= tol.Deg()
}

// AtRoot returns a *PointError wrapping ErrPoleCollision or
// ErrZeroCollision when x is exactly a configured pole or zero, and nil
// otherwise.
func (s *PoleZeroSet) AtRoot(x complex128) error {
	for _, p := range s.poles {
		if p == x {
			return &PointError{Point: x, Wrapped: ErrPoleCollision}
		}
	}
	for _, z := range s.zeros {
		if z == x {
			return &PointError{Point: x, Wrapped: ErrZeroCollision}
		}
	}
	return nil
}

// phase returns Σ∠(x - zeros) - Σ∠(x - poles) in degrees.
func (s *PoleZeroSet) phase(x complex128) float64 {
	var sum float64
	for _, z := range s.zeros {
		sum += arg(x, z)
	}
	for _, p := range s.poles {
		sum -= arg(x, p)
	}
	return sum * 180 / math.Pi
}

// angleResidual returns the distance in degrees between phase (reduced
// into [0, 360)) and 180.
func angleResidual(phase float64) float64 {
	r := math.Mod(phase, 360)
	if r < 0 {
		r += 360
	}
	return math.Abs(r - 180)
}
