package edgecurve

// Segment is one section of the curved edge of an outline. [Assemble] reads
// the start point of the first segment to clamp the straight lead-in, and
// appends the element of every segment in order. The element's implicit start
// is the current point of the path, not the segment's own start point.
//
// [QuadSegment] and [CubicSegment] implement Segment.
type Segment interface {
	StartPoint() Point
	PathElement() PathElement
}

var _ Segment = QuadSegment{}
var _ Segment = CubicSegment{}

// QuadSegment declares a quadratic section by the point it must pass through
// rather than by its control point.
type QuadSegment struct {
	Start Point
	// Hint is the point the fitted curve passes through at parameter
	// Proportion.
	Hint Point
	End  Point
	// Proportion is the curve parameter t at which the curve passes through
	// Hint. It must lie strictly between 0 and 1; 0 and 1 yield non-finite
	// control points.
	Proportion float64
	// Exclude skips fitting. Hint is then used verbatim as the control point
	// and Proportion is ignored.
	Exclude bool
}

// QuadControlPoints is the result of fitting a [QuadSegment].
type QuadControlPoints struct {
	Control Point
	End     Point
}

// Fit computes the control point P of the quadratic Bézier from Start to End
// that passes through Hint at t = Proportion:
//
//	P = (Hint − ((1−t)²·Start + t²·End)) / (2t(1−t))
//
// The inputs are not clamped. A proportion of 0 or 1 divides by zero and
// produces NaN or infinite coordinates.
func (s QuadSegment) Fit() QuadControlPoints {
	if s.Exclude {
		return QuadControlPoints{Control: s.Hint, End: s.End}
	}
	t := s.Proportion
	mt := 1.0 - t
	base := Vec2(s.Start).Mul(mt * mt).Add(Vec2(s.End).Mul(t * t))
	ctrl := Vec2(s.Hint).Sub(base).Div(2.0 * t * mt)
	return QuadControlPoints{Control: Point(ctrl), End: s.End}
}

// Curve returns the fitted curve, starting at Start.
func (s QuadSegment) Curve() QuadBez {
	c := s.Fit()
	return QuadBez{s.Start, c.Control, c.End}
}

func (s QuadSegment) StartPoint() Point { return s.Start }

func (s QuadSegment) PathElement() PathElement {
	c := s.Fit()
	return QuadTo(c.Control, c.End)
}

// CubicSegment declares a cubic section by four anchors. P1 and P4 are the
// ends of the section; P2 and P3 pull the curve toward them.
type CubicSegment struct {
	P1, P2, P3, P4 Point
	// Smooth is the tension of the fit. 0 keeps the control points on P2 and
	// P3, 1 moves them fully along the chord-weighted midpoints. Values
	// outside [0, 1] extrapolate.
	Smooth float64
}

// CubicControlPoints is the result of fitting a [CubicSegment].
type CubicControlPoints struct {
	Control1 Point
	Control2 Point
	End      Point
}

// Fit derives the two control points of the section.
//
// The midpoints m1, m2, m3 of the three chords P1P2, P2P3, P3P4 are blended
// by the ratio of neighbouring chord lengths into bm1 (between m1 and m2) and
// bm2 (between m2 and m3). The control points are bm1 and bm2 shifted onto P2
// and P3 respectively and then pulled toward m2 by Smooth.
//
// If two neighbouring chords both have zero length the blend ratio is 0/0
// and the control points are NaN.
func (s CubicSegment) Fit() CubicControlPoints {
	m1 := s.P1.Midpoint(s.P2)
	m2 := s.P2.Midpoint(s.P3)
	m3 := s.P3.Midpoint(s.P4)

	len1 := s.P1.Distance(s.P2)
	len2 := s.P2.Distance(s.P3)
	len3 := s.P3.Distance(s.P4)

	k1 := len1 / (len1 + len2)
	k2 := len2 / (len2 + len3)

	bm1 := m1.Lerp(m2, k1)
	bm2 := m2.Lerp(m3, k2)

	c1 := bm1.Translate(m2.Sub(bm1).Mul(s.Smooth)).Translate(s.P2.Sub(bm1))
	c2 := bm2.Translate(m2.Sub(bm2).Mul(s.Smooth)).Translate(s.P3.Sub(bm2))
	return CubicControlPoints{Control1: c1, Control2: c2, End: s.P4}
}

// Curve returns the fitted curve, starting at P1.
func (s CubicSegment) Curve() CubicBez {
	c := s.Fit()
	return CubicBez{s.P1, c.Control1, c.Control2, c.End}
}

func (s CubicSegment) StartPoint() Point { return s.P1 }

func (s CubicSegment) PathElement() PathElement {
	c := s.Fit()
	return CubicTo(c.Control1, c.Control2, c.End)
}
