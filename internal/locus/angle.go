package locus

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Angle is a plane angle stored in radians. Use Deg and Rad to read it in
// the unit a caller needs.
type Angle float64

// Degrees returns the Angle of d degrees.
func Degrees(d float64) Angle {
	return Angle(d * math.Pi / 180)
}

// Radians returns the Angle of r radians.
func Radians(r float64) Angle {
	return Angle(r)
}

func (a Angle) Rad() float64 {
	return float64(a)
}

func (a Angle) Deg() float64 {
	return float64(a) * 180 / math.Pi
}

// Normalize wraps a into (-180°, 180°].
func (a Angle) Normalize() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	} else if r > math.Pi {
		r -= 2 * math.Pi
	}
	return Angle(r)
}

func (a Angle) String() string {
	return fmt.Sprintf("%.4f°", a.Deg())
}

// arg returns the angle of the vector pointing from `from` to `to`.
func arg(to, from complex128) float64 {
	return cmplx.Phase(to - from)
}
