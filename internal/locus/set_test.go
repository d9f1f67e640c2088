package locus

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func textbook() *PoleZeroSet {
	return New([]complex128{0, -2, -4}, []complex128{-1})
}

func TestNew_CopiesInput(t *testing.T) {
	poles := []complex128{0, -2}
	zeros := []complex128{-1}
	set := New(poles, zeros)

	poles[0] = 42
	zeros[0] = 42

	if got := set.Poles()[0]; got != 0 {
		t.Errorf("pole mutated through caller slice: got %v", got)
	}
	if got := set.Zeros()[0]; got != -1 {
		t.Errorf("zero mutated through caller slice: got %v", got)
	}
	if set.N() != 2 || set.M() != 1 {
		t.Errorf("N, M = %d, %d, want 2, 1", set.N(), set.M())
	}

	set.Poles()[1] = 7
	if got := set.Poles()[1]; got != -2 {
		t.Errorf("Poles() exposed internal storage: got %v", got)
	}
}

func TestEvaluateOpenLoop(t *testing.T) {
	tests := []struct {
		name string
		set  *PoleZeroSet
		s    complex128
		want complex128
	}{
		{"textbook at 1", textbook(), 1, complex(2.0/15.0, 0)},
		{"no zeros", New([]complex128{-1}, nil), 1, 0.5},
		{"complex point", New([]complex128{0}, nil), 1i, -1i},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.set.EvaluateOpenLoop(tt.s)
			if err != nil {
				t.Fatalf("EvaluateOpenLoop(%v) error: %v", tt.s, err)
			}
			if cmplx.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EvaluateOpenLoop(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestEvaluateOpenLoop_PoleCollision(t *testing.T) {
	set := New([]complex128{0, -2, -1 + 1i, -1 - 1i}, []complex128{-1})
	for _, p := range set.Poles() {
		g, err := set.EvaluateOpenLoop(p)
		if !errors.Is(err, ErrPoleCollision) {
			t.Errorf("EvaluateOpenLoop(%v) = %v, %v; want ErrPoleCollision", p, g, err)
		}
		var pe *PointError
		if !errors.As(err, &pe) || pe.Point != p {
			t.Errorf("expected PointError carrying %v, got %v", p, err)
		}
		if _, err := set.GainForRoot(p); !errors.Is(err, ErrPoleCollision) {
			t.Errorf("GainForRoot(%v) should propagate ErrPoleCollision, got %v", p, err)
		}
	}
}

func TestGainForRoot(t *testing.T) {
	set := textbook()

	// -3 lies on the locus, so the gain is real and positive.
	k, err := set.GainForRoot(-3)
	if err != nil {
		t.Fatalf("GainForRoot(-3) error: %v", err)
	}
	if math.Abs(real(k)-1.5) > 1e-12 || math.Abs(imag(k)) > 1e-12 {
		t.Errorf("GainForRoot(-3) = %v, want 1.5", k)
	}

	if _, err := set.GainForRoot(-1); !errors.Is(err, ErrZeroCollision) {
		t.Errorf("GainForRoot at a zero should fail with ErrZeroCollision, got %v", err)
	}
}

func TestGainDerivative(t *testing.T) {
	set := textbook()

	// dK/ds = -(2s³ + 9s² + 12s + 8) / (s + 1)², which is 0.25 at s = -3.
	d, err := set.GainDerivative(-3, DefaultDerivativeStep)
	if err != nil {
		t.Fatalf("GainDerivative(-3) error: %v", err)
	}
	if math.Abs(real(d)-0.25) > 1e-6 {
		t.Errorf("GainDerivative(-3) = %v, want 0.25", d)
	}

	for _, step := range []float64{0, -1e-5, math.NaN()} {
		if _, err := set.GainDerivative(-3, step); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("GainDerivative with step %v: want ErrInvalidArgument, got %v", step, err)
		}
	}
}
