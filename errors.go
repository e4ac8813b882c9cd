package edgecurve

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSegments is returned when a builder is constructed without any
	// segments.
	ErrNoSegments = errors.New("edgecurve: no segments")

	// ErrInvalidPlacement is returned when a builder is constructed with a
	// placement other than Left, Bottom, Right or Top.
	ErrInvalidPlacement = errors.New("edgecurve: invalid edge placement")

	// ErrDegenerate is wrapped by every [DegenerateError].
	ErrDegenerate = errors.New("edgecurve: degenerate outline")
)

// DegenerateError reports a non-finite coordinate in a built outline. It is
// only returned by builders created with [WithStrict].
type DegenerateError struct {
	// Segment is the index of the input segment whose curve is non-finite, or
	// -1 if the offending element is one of the straight sides. The straight
	// side leading into the curves starts at the first segment's start point,
	// so a non-finite first anchor is also reported as -1.
	Segment int
	// Element is the first offending path element.
	Element PathElement
}

func (e *DegenerateError) Error() string {
	if e.Segment < 0 {
		return fmt.Sprintf("edgecurve: degenerate outline: non-finite straight edge %s", e.Element)
	}
	return fmt.Sprintf("edgecurve: degenerate outline: segment %d fitted to non-finite %s", e.Segment, e.Element)
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerate
}

// checkFinite returns a *DegenerateError for the first element of p that has
// a NaN or infinite coordinate.
func checkFinite(p BezPath) error {
	curve := 0
	for _, el := range p {
		isCurve := el.Kind == QuadToKind || el.Kind == CubicToKind
		if el.IsNaN() || el.IsInf() {
			idx := -1
			if isCurve {
				idx = curve
			}
			return &DegenerateError{Segment: idx, Element: el}
		}
		if isCurve {
			curve++
		}
	}
	return nil
}
