package edgecurve

import "fmt"

// Assemble builds the closed outline of a size.Width×size.Height rectangle
// whose placement side is replaced by the curves of segs.
//
// The rectangle spans (0, 0) to (size.Width, size.Height) in a y-down space.
// The sides are always visited in the same cyclic order and the outline is a
// single subpath that returns to its first point before the final ClosePath:
//
//	Left:   M(max(0,x),0)  curves  L(0,h) L(w,h) L(w,0) L(max(0,x),0)
//	Bottom: M(0,0) L(0,min(h,y))  curves  L(w,h) L(w,0) L(0,0)
//	Right:  M(0,0) L(0,h) L(min(w,x),h)  curves  L(w,0) L(0,0)
//	Top:    M(0,0) L(0,h) L(w,h) L(w,max(0,y))  curves  L(0,0)
//
// where (x, y) is the start point of the first segment. The clamp keeps the
// straight lead-in inside the rectangle when the first anchor lies outside
// it. Each segment contributes exactly one curve element, in order.
//
// Assemble panics if segs is empty or placement is invalid. Use a [Builder]
// to have both rejected with an error instead.
func Assemble[S Segment](segs []S, placement EdgePlacement, size Size) BezPath {
	if len(segs) == 0 {
		panic("edgecurve: Assemble called without segments")
	}
	first := segs[0].StartPoint()
	w, h := size.Width, size.Height

	p := make(BezPath, 0, len(segs)+7)
	curves := func() {
		for _, s := range segs {
			p.Push(s.PathElement())
		}
	}

	switch placement {
	case Left:
		lead := Pt(max(0, first.X), 0)
		p.MoveTo(lead)
		curves()
		p.LineTo(Pt(0, h))
		p.LineTo(Pt(w, h))
		p.LineTo(Pt(w, 0))
		p.LineTo(lead)
	case Bottom:
		p.MoveTo(Pt(0, 0))
		p.LineTo(Pt(0, min(h, first.Y)))
		curves()
		p.LineTo(Pt(w, h))
		p.LineTo(Pt(w, 0))
		p.LineTo(Pt(0, 0))
	case Right:
		p.MoveTo(Pt(0, 0))
		p.LineTo(Pt(0, h))
		p.LineTo(Pt(min(w, first.X), h))
		curves()
		p.LineTo(Pt(w, 0))
		p.LineTo(Pt(0, 0))
	case Top:
		p.MoveTo(Pt(0, 0))
		p.LineTo(Pt(0, h))
		p.LineTo(Pt(w, h))
		p.LineTo(Pt(w, max(0, first.Y)))
		curves()
		p.LineTo(Pt(0, 0))
	default:
		panic(fmt.Sprintf("edgecurve: invalid edge placement %v", placement))
	}
	p.ClosePath()
	return p
}
