package locus

// DefaultDerivativeStep is the central-difference step used for dK/ds.
const DefaultDerivativeStep = 1e-5

// PoleZeroSet is the pole/zero configuration of an open-loop transfer
// function G(s) = Π(s - z) / Π(s - p).
type PoleZeroSet struct {
	poles []complex128
	zeros []complex128
	n, m  int
}

// New copies poles and zeros into an immutable set. It never fails: a set
// with n == m is still usable for evaluation and classification.
func New(poles, zeros []complex128) *PoleZeroSet {
	p := make([]complex128, len(poles))
	copy(p, poles)
	z := make([]complex128, len(zeros))
	copy(z, zeros)
	return &PoleZeroSet{poles: p, zeros: z, n: len(p), m: len(z)}
}

// N returns the number of poles.
func (s *PoleZeroSet) N() int { return s.n }

// M returns the number of zeros.
func (s *PoleZeroSet) M() int { return s.m }

// Poles returns a copy of the configured poles in their original order.
func (s *PoleZeroSet) Poles() []complex128 {
	out := make([]complex128, s.n)
	copy(out, s.poles)
	return out
}

// Zeros returns a copy of the configured zeros in their original order.
func (s *PoleZeroSet) Zeros() []complex128 {
	out := make([]complex128, s.m)
	copy(out, s.zeros)
	return out
}

// EvaluateOpenLoop computes G(x). It fails with ErrPoleCollision when x is
// exactly a pole.
func (s *PoleZeroSet) EvaluateOpenLoop(x complex128) (complex128, error) {
	num := complex(1, 0)
	for _, z := range s.zeros {
		num *= x - z
	}
	den := complex(1, 0)
	for _, p := range s.poles {
		den *= x - p
	}
	if den == 0 {
		return 0, &PointError{Point: x, Wrapped: ErrPoleCollision}
	}
	return num / den, nil
}

// GainForRoot returns K = -1/G(x), the gain that places a closed-loop pole
// at x.
func (s *PoleZeroSet) GainForRoot(x complex128) (complex128, error) {
	g, err := s.EvaluateOpenLoop(x)
	if err != nil {
		return 0, err
	}
	if g == 0 {
		return 0, &PointError{Point: x, Wrapped: ErrZeroCollision}
	}
	return -1 / g, nil
}

// GainDerivative approximates dK/ds at x with a central difference of the
// given step. Accuracy is bounded by the step.
func (s *PoleZeroSet) GainDerivative(x complex128, step float64) (complex128, error) {
	if !(step > 0) {
		return 0, invalidArgument("derivative step must be positive, got %v", step)
	}
	h := complex(step, 0)
	hi, err := s.GainForRoot(x + h)
	if err != nil {
		return 0, err
	}
	lo, err := s.GainForRoot(x - h)
	if err != nil {
		return 0, err
	}
	return (hi - lo) / (2 * h), nil
}
