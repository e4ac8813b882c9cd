// Package edgecurve builds clip outlines for rectangular regions in which
// one side is replaced by a run of Bézier curves, such as the wavy edge of a
// banner or a card.
//
// # Segments and fitting
//
// The curved side is declared as a list of segments. A [QuadSegment] names
// its start and end and a hint point the curve must pass through at a given
// proportion of the curve parameter; [QuadSegment.Fit] solves for the single
// control point that makes this true. A [CubicSegment] names four anchors and
// a smoothing factor; [CubicSegment.Fit] derives two control points whose
// tangents follow the chords between neighbouring anchors, weighted by chord
// length.
//
// # Outlines
//
// [Assemble] turns a segment list, an [EdgePlacement] and a [Size] into a
// closed [BezPath]: three straight sides of the rectangle plus the fitted
// curves in place of the fourth. The straight lead-in to the curves is
// clamped to the rectangle when the first anchor lies outside it.
//
// [Builder] wraps Assemble for hosts. It validates the segment list up front,
// carries the redraw flag hosts consult through [OutlineSource], and can
// report degenerate input as an error (see [WithStrict]) instead of passing
// NaN coordinates through.
//
// # Output
//
// A BezPath is a slice of [PathElement]. It can be written as SVG path data
// ([BezPath.SVG]), converted to a seehuhn.de/go/geom path
// ([BezPath.GeomPath]), or replayed into any [Pather], which includes
// golang.org/x/image/vector's Rasterizer.
//
// All functions are pure and safe for concurrent use.
package edgecurve
