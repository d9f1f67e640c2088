// Package locus implements the root-locus analysis engine.
//
// All computations are pure functions of one immutable [PoleZeroSet], the
// poles and zeros of an open-loop transfer function G(s). The closed-loop
// poles are the roots of the characteristic equation 1 + K·G(s) = 0 as the
// gain K runs over [0, ∞).
//
//   - Transfer function: [PoleZeroSet.EvaluateOpenLoop], [PoleZeroSet.GainForRoot],
//     [PoleZeroSet.GainDerivative]
//   - Asymptotes: [PoleZeroSet.Centroid], [PoleZeroSet.AsymptoteAngles]
//   - Real axis: [PoleZeroSet.IsOnLocus], [PoleZeroSet.RealAxisSegments]
//   - Breakaway points: [PoleZeroSet.FindBreakaway]
//   - Angles: [PoleZeroSet.DepartureAngle], [PoleZeroSet.ArrivalAngle],
//     [PoleZeroSet.AngleCondition]
//   - Locus approximation: [PoleZeroSet.Scan]
//
// # Example
//
//	set := locus.New([]complex128{0, -2, -4}, []complex128{-1})
//	c, _ := set.Centroid()                      // -2.5
//	pts, _ := set.FindBreakaway(-20, 5, 1000)   // [-2.91082]
//	samples, _ := set.Scan(locus.Interval{Min: -10, Max: 5},
//		locus.Interval{Min: -10, Max: 10}, 300)
//
// # Angles
//
// Every angle is an [Angle]: a unit-free value stored in radians that
// exposes both views through Rad and Deg.
//
// # Thread Safety
//
// A PoleZeroSet is never mutated after [New], so all methods are safe for
// concurrent use. Scan and FindBreakaway fan their work out over goroutines
// and merge the partial results in order.
package locus
