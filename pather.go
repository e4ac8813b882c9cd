package edgecurve

import "golang.org/x/image/vector"

// Pather receives path commands in float32 coordinates. It matches the path
// methods of [vector.Rasterizer], so an outline can be replayed straight into
// one to produce a clip mask.
type Pather interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	QuadTo(bx, by, cx, cy float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

var _ Pather = (*vector.Rasterizer)(nil)

// Replay issues the elements of p to dst in order.
func (p BezPath) Replay(dst Pather) {
	f := func(pt Point) (float32, float32) {
		return float32(pt.X), float32(pt.Y)
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			dst.MoveTo(f(el.P0))
		case LineToKind:
			dst.LineTo(f(el.P0))
		case QuadToKind:
			bx, by := f(el.P0)
			cx, cy := f(el.P1)
			dst.QuadTo(bx, by, cx, cy)
		case CubicToKind:
			bx, by := f(el.P0)
			cx, cy := f(el.P1)
			dx, dy := f(el.P2)
			dst.CubeTo(bx, by, cx, cy, dx, dy)
		case ClosePathKind:
			dst.ClosePath()
		}
	}
}
