package locus

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestIsOnLocus(t *testing.T) {
	set := textbook()
	tests := []struct {
		point float64
		want  bool
	}{
		{1, false},
		{0, false},
		{-0.5, true},
		{-1, true},
		{-1.5, false},
		{-3, true},
		{-5, false},
	}

	for _, tt := range tests {
		got, err := set.IsOnLocus(complex(tt.point, 0))
		if err != nil {
			t.Fatalf("IsOnLocus(%v) error: %v", tt.point, err)
		}
		if got != tt.want {
			t.Errorf("IsOnLocus(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestIsOnLocus_ComplexPolesIgnored(t *testing.T) {
	set := New([]complex128{-1 + 1i, -1 - 1i, -3}, nil)
	for _, x := range []float64{-0.5, -2, 5} {
		if on, _ := set.IsOnLocus(complex(x, 0)); on {
			t.Errorf("IsOnLocus(%v) = true, complex pair must not count", x)
		}
	}
	if on, _ := set.IsOnLocus(-4); !on {
		t.Error("IsOnLocus(-4) = false, want true")
	}
}

func TestIsOnLocus_InvalidArgument(t *testing.T) {
	set := textbook()
	for _, p := range []complex128{-1 + 0.5i, complex(math.NaN(), 0)} {
		on, err := set.IsOnLocus(p)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("IsOnLocus(%v) = %v, %v; want ErrInvalidArgument", p, on, err)
		}
	}
}

func TestRealAxisSegments(t *testing.T) {
	inf := math.Inf(-1)
	tests := []struct {
		name string
		set  *PoleZeroSet
		want []Segment
	}{
		{"textbook", textbook(), []Segment{{-4, -2}, {-1, 0}}},
		{"complex pair", New([]complex128{-1 + 1i, -1 - 1i, -3}, nil), []Segment{{inf, -3}}},
		{"double pole at origin", New([]complex128{0, 0}, nil), nil},
		{"double pole merges", New([]complex128{-1, -1, -3}, nil), []Segment{{inf, -3}}},
		{"odd pole count", New([]complex128{0, -1, -2}, nil), []Segment{{inf, -2}, {-1, 0}}},
		{"no real roots", New([]complex128{1i, -1i}, nil), nil},
		{"far left pole", New([]complex128{-1e17, 0}, nil), []Segment{{-1e17, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.RealAxisSegments()
			if len(got) != len(tt.want) {
				t.Fatalf("RealAxisSegments() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegment_JSONUnboundedLeft(t *testing.T) {
	data, err := json.Marshal([]Segment{{math.Inf(-1), -3}, {-1, 0}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `[{"min":null,"max":-3},{"min":-1,"max":0}]` {
		t.Errorf("unexpected encoding: %s", data)
	}

	var back []Segment
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !math.IsInf(back[0].Min, -1) || back[1].Min != -1 {
		t.Errorf("decoded segments = %v", back)
	}
}
