package edgecurve

import (
	"fmt"
	"testing"
)

var size100 = Sz(100, 100)

// waves returns a two-segment quadratic edge for each placement, running in
// the direction the outline traverses that side.
func waves() map[EdgePlacement][]QuadSegment {
	return map[EdgePlacement][]QuadSegment{
		Left: {
			{Start: Pt(10, 0), Hint: Pt(20, 25), End: Pt(10, 50), Proportion: 0.5},
			{Start: Pt(10, 50), Hint: Pt(0, 75), End: Pt(10, 100), Proportion: 0.5},
		},
		Bottom: {
			{Start: Pt(0, 90), Hint: Pt(25, 80), End: Pt(50, 90), Proportion: 0.5},
			{Start: Pt(50, 90), Hint: Pt(75, 100), End: Pt(100, 90), Proportion: 0.5},
		},
		Right: {
			{Start: Pt(90, 100), Hint: Pt(80, 75), End: Pt(90, 50), Proportion: 0.5},
			{Start: Pt(90, 50), Hint: Pt(100, 25), End: Pt(90, 0), Proportion: 0.5},
		},
		Top: {
			{Start: Pt(100, 10), Hint: Pt(75, 20), End: Pt(50, 10), Proportion: 0.5},
			{Start: Pt(50, 10), Hint: Pt(25, 0), End: Pt(0, 10), Proportion: 0.5},
		},
	}
}

func TestAssembleTraversal(t *testing.T) {
	segs := waves()
	curves := func(p EdgePlacement) []PathElement {
		var els []PathElement
		for _, s := range segs[p] {
			els = append(els, s.PathElement())
		}
		return els
	}
	join := func(parts ...[]PathElement) BezPath {
		var p BezPath
		for _, part := range parts {
			p = append(p, part...)
		}
		return append(p, ClosePath())
	}

	want := map[EdgePlacement]BezPath{
		Left: join(
			[]PathElement{MoveTo(Pt(10, 0))},
			curves(Left),
			[]PathElement{LineTo(Pt(0, 100)), LineTo(Pt(100, 100)), LineTo(Pt(100, 0)), LineTo(Pt(10, 0))},
		),
		Bottom: join(
			[]PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(0, 90))},
			curves(Bottom),
			[]PathElement{LineTo(Pt(100, 100)), LineTo(Pt(100, 0)), LineTo(Pt(0, 0))},
		),
		Right: join(
			[]PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(0, 100)), LineTo(Pt(90, 100))},
			curves(Right),
			[]PathElement{LineTo(Pt(100, 0)), LineTo(Pt(0, 0))},
		),
		Top: join(
			[]PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(0, 100)), LineTo(Pt(100, 100)), LineTo(Pt(100, 10))},
			curves(Top),
			[]PathElement{LineTo(Pt(0, 0))},
		),
	}
	for _, p := range []EdgePlacement{Left, Bottom, Right, Top} {
		t.Run(p.String(), func(t *testing.T) {
			diff(t, want[p], Assemble(segs[p], p, size100))
		})
	}
}

func TestAssembleTopScenario(t *testing.T) {
	segs := []QuadSegment{{
		Start:      Pt(0, 30),
		Hint:       Pt(50, 10),
		End:        Pt(100, 30),
		Proportion: 0.5,
	}}
	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(0, 100)),
		LineTo(Pt(100, 100)),
		LineTo(Pt(100, 30)),
		QuadTo(Pt(50, -10), Pt(100, 30)),
		LineTo(Pt(0, 0)),
		ClosePath(),
	}
	diff(t, want, Assemble(segs, Top, size100))
}

// cubicWaves is [waves] with each quadratic replaced by a cubic through the
// same anchors.
func cubicWaves() map[EdgePlacement][]CubicSegment {
	out := map[EdgePlacement][]CubicSegment{}
	for p, segs := range waves() {
		for _, s := range segs {
			out[p] = append(out[p], CubicSegment{
				P1:     s.Start,
				P2:     s.Start.Lerp(s.Hint, 0.5),
				P3:     s.Hint.Lerp(s.End, 0.5),
				P4:     s.End,
				Smooth: 0.25,
			})
		}
	}
	return out
}

func TestAssembleClosure(t *testing.T) {
	sizes := []Size{Sz(100, 100), Sz(320, 48), Sz(1, 1000)}
	quads, cubics := waves(), cubicWaves()
	for _, p := range []EdgePlacement{Left, Bottom, Right, Top} {
		for _, sz := range sizes {
			checkClosed(t, fmt.Sprintf("quad %v %v", p, sz), Assemble(quads[p], p, sz))
			checkClosed(t, fmt.Sprintf("cubic %v %v", p, sz), Assemble(cubics[p], p, sz))
		}
	}
}

func checkClosed(t *testing.T, name string, out BezPath) {
	t.Helper()
	first, _ := out.FirstPoint()
	last, _ := out.LastPoint()
	if first != last {
		t.Errorf("%s: outline starts at %s but ends at %s", name, first, last)
	}
	if out[0].Kind != MoveToKind {
		t.Errorf("%s: outline starts with %v", name, out[0].Kind)
	}
	if out[len(out)-1].Kind != ClosePathKind {
		t.Errorf("%s: outline ends with %v", name, out[len(out)-1].Kind)
	}
	if n := out.CurveCount(); n != 2 {
		t.Errorf("%s: got %d curves, want 2", name, n)
	}
}

func TestAssembleCurveOrder(t *testing.T) {
	var segs []CubicSegment
	for i := range 7 {
		x := float64(i) * 10
		segs = append(segs, CubicSegment{
			P1:     Pt(x, 90),
			P2:     Pt(x+3, 85),
			P3:     Pt(x+6, 95),
			P4:     Pt(x+10, 90),
			Smooth: 0.3,
		})
	}
	for _, p := range []EdgePlacement{Left, Bottom, Right, Top} {
		out := Assemble(segs, p, Sz(70, 100))
		var got []PathElement
		for _, el := range out {
			if el.Kind == CubicToKind {
				got = append(got, el)
			} else if el.Kind == QuadToKind {
				t.Errorf("%v: unexpected quadratic element", p)
			}
		}
		var want []PathElement
		for _, s := range segs {
			want = append(want, s.PathElement())
		}
		diff(t, want, got)
		if n := out.CurveCount(); n != len(segs) {
			t.Errorf("%v: got %d curves, want %d", p, n, len(segs))
		}
	}
}

func TestAssembleClamping(t *testing.T) {
	seg := func(start Point) []QuadSegment {
		return []QuadSegment{{Start: start, Hint: Pt(50, 50), End: Pt(50, 100), Proportion: 0.5}}
	}
	tests := []struct {
		placement EdgePlacement
		start     Point
		idx       int
		want      Point
	}{
		{Left, Pt(-20, 0), 0, Pt(0, 0)},
		{Left, Pt(35, 0), 0, Pt(35, 0)},
		// Only the lower bound is clamped on the left.
		{Left, Pt(130, 0), 0, Pt(130, 0)},
		{Bottom, Pt(0, 120), 1, Pt(0, 100)},
		{Bottom, Pt(0, 60), 1, Pt(0, 60)},
		{Right, Pt(150, 100), 2, Pt(100, 100)},
		{Right, Pt(-5, 100), 2, Pt(-5, 100)},
		{Top, Pt(100, -10), 3, Pt(100, 0)},
		{Top, Pt(100, 40), 3, Pt(100, 40)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%s", tt.placement, tt.start), func(t *testing.T) {
			out := Assemble(seg(tt.start), tt.placement, size100)
			got, _ := out[tt.idx].EndPoint()
			diff(t, tt.want, got)
			if tt.placement == Left {
				last, _ := out.LastPoint()
				diff(t, tt.want, last)
			}
		})
	}
}

func TestAssembleOrientation(t *testing.T) {
	// Every placement walks the rectangle the same way round, so all
	// outlines have the same sign of area.
	for p, segs := range waves() {
		a := Assemble(segs, p, size100).SignedArea()
		if a >= 0 {
			t.Errorf("%v: got signed area %v, want negative", p, a)
		}
		if -a < 8000 || -a > 10000 {
			t.Errorf("%v: area %v outside the plausible range", p, -a)
		}
	}
}

func TestAssemblePanics(t *testing.T) {
	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	expectPanic("empty", func() { Assemble([]QuadSegment{}, Top, size100) })
	expectPanic("placement", func() { Assemble(waves()[Top], EdgePlacement(0), size100) })
}

func TestAssembleDoesNotRetainInput(t *testing.T) {
	segs := waves()[Top]
	out := Assemble(segs, Top, size100)
	want := append(BezPath(nil), out...)
	segs[0].End = Pt(-1000, -1000)
	diff(t, want, out)
}
