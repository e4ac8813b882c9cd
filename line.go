package edgecurve

// Line is a straight segment between two points. Outlines use lines for the
// three sides of the region that are not replaced by curves.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the euclidean length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// SignedArea returns the signed area under the line, relative to the origin.
// Summed over a closed path it yields the path's signed area.
func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
