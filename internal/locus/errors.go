package locus

import (
	"errors"
	"fmt"
)

// Domain errors for locus computations.
var (
	// ErrPoleCollision indicates an evaluation point coincides with a pole,
	// where G(s) is undefined. Callers scanning the plane skip the point.
	ErrPoleCollision = errors.New("locus: evaluation point coincides with a pole")

	// ErrZeroCollision indicates an evaluation point coincides with a zero,
	// where the gain K = -1/G(s) is unbounded.
	ErrZeroCollision = errors.New("locus: evaluation point coincides with a zero")

	// ErrDegenerateConfiguration indicates n == m (or m > n) where the
	// asymptote computations need n - m > 0.
	ErrDegenerateConfiguration = errors.New("locus: degenerate configuration (n - m must be positive)")

	// ErrInvalidArgument indicates wrongly shaped input.
	ErrInvalidArgument = errors.New("locus: invalid argument")

	// ErrNonConvergence indicates a bracketed root search did not converge.
	ErrNonConvergence = errors.New("locus: root search did not converge")
)

// PointError wraps an error with the complex point that triggered it.
type PointError struct {
	Point   complex128
	Wrapped error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("%v at s=%v", e.Wrapped, e.Point)
}

func (e *PointError) Unwrap() error {
	return e.Wrapped
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
