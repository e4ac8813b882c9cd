package edgecurve_test

import (
	"fmt"
	"image"

	"golang.org/x/image/vector"
	"honnef.co/go/edgecurve"
)

func ExampleNewQuadBuilder() {
	// A single wave along the top edge, drawn right to left so that it
	// continues the outline's traversal.
	b, err := edgecurve.NewQuadBuilder([]edgecurve.QuadSegment{{
		Start:      edgecurve.Pt(100, 10),
		Hint:       edgecurve.Pt(50, 20),
		End:        edgecurve.Pt(0, 10),
		Proportion: 0.5,
	}}, edgecurve.Top)
	if err != nil {
		panic(err)
	}
	outline, err := b.Build(edgecurve.Sz(100, 100))
	if err != nil {
		panic(err)
	}
	fmt.Println(outline.SVG(edgecurve.SVGOptions{}))
	// Output:
	// M0,0 L0,100 L100,100 L100,10 Q50,30 0,10 L0,0 Z
}

func ExampleNewCubicBuilder() {
	b, err := edgecurve.NewCubicBuilder([]edgecurve.CubicSegment{{
		P1:     edgecurve.Pt(0, 80),
		P2:     edgecurve.Pt(0, 60),
		P3:     edgecurve.Pt(100, 60),
		P4:     edgecurve.Pt(100, 80),
		Smooth: 0.5,
	}}, edgecurve.Bottom)
	if err != nil {
		panic(err)
	}
	outline, err := b.Build(edgecurve.Sz(100, 100))
	if err != nil {
		panic(err)
	}
	fmt.Println(outline.SVG(edgecurve.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M0,0 L0,80 C20.833,55.833 79.167,55.833 100,80 L100,100 L100,0 L0,0 Z
}

func ExampleBezPath_Replay() {
	b, err := edgecurve.NewQuadBuilder([]edgecurve.QuadSegment{{
		Start:      edgecurve.Pt(8, 0),
		Hint:       edgecurve.Pt(4, 8),
		End:        edgecurve.Pt(8, 16),
		Proportion: 0.5,
	}}, edgecurve.Left)
	if err != nil {
		panic(err)
	}
	outline, err := b.Build(edgecurve.Sz(16, 16))
	if err != nil {
		panic(err)
	}

	z := vector.NewRasterizer(16, 16)
	outline.Replay(z)
	mask := image.NewAlpha(image.Rect(0, 0, 16, 16))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	fmt.Println(mask.AlphaAt(1, 8).A, mask.AlphaAt(14, 8).A)
	// Output:
	// 0 255
}
