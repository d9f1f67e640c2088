// Package viz renders root-locus reports in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas (2×4 dots per cell)
//   - [Plane]: maps complex-plane coordinates onto a Canvas
//   - [RenderReport]: draws axes, locus samples, asymptotes and markers
//   - [Summary]: styled text listing of a report's landmarks
//
// Markers for poles (×), zeros (○) and breakaway points (◆) replace whole
// cells and are colored with the current [Theme].
package viz
