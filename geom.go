package edgecurve

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func (pt Point) vec() vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

// GeomPath converts the path to a [path.Data] from seehuhn.de/go/geom, the
// representation used by PDF writers and the seehuhn.de/go/render
// rasterizer.
//
// The coordinates are copied as they are. PDF user space points up; apply
// [FlipY] and a translation by the region height first if the consumer
// expects that.
func (p BezPath) GeomPath() *path.Data {
	d := &path.Data{}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			d = d.MoveTo(el.P0.vec())
		case LineToKind:
			d = d.LineTo(el.P0.vec())
		case QuadToKind:
			d = d.QuadTo(el.P0.vec(), el.P1.vec())
		case CubicToKind:
			d = d.CubeTo(el.P0.vec(), el.P1.vec(), el.P2.vec())
		case ClosePathKind:
			d = d.Close()
		}
	}
	return d
}

// Matrix returns aff as a seehuhn.de/go/geom matrix. Both use the
// coefficient order (a, b, c, d, e, f).
func (aff Affine) Matrix() matrix.Matrix {
	return matrix.Matrix{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}
