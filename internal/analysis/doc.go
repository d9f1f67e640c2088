// Package analysis aggregates the root-locus engine into reports.
//
// The package turns a [locus.PoleZeroSet] into data that renderers,
// storage and the CLI consume without calling the engine themselves:
//
//   - [Run]: every landmark of a study in one [Report]
//   - [GainProfile]: the gain K(σ) along a stretch of the real axis
//
// A Report only holds plain values (points, angles, counts), so it can be
// saved as JSON and rendered again later without recomputation.
package analysis
