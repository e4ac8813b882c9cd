package edgecurve

import "fmt"

// EdgePlacement selects which side of the bounding rectangle is replaced by
// the curve sequence. It also fixes the order in which the remaining three
// straight sides are traversed.
//
// The zero value is not a valid placement.
type EdgePlacement int

const (
	Left EdgePlacement = iota + 1
	Bottom
	Right
	Top
)

func (e EdgePlacement) String() string {
	switch e {
	case Left:
		return "Left"
	case Bottom:
		return "Bottom"
	case Right:
		return "Right"
	case Top:
		return "Top"
	default:
		return fmt.Sprintf("EdgePlacement(%d)", int(e))
	}
}

// IsValid reports whether e is one of the four defined placements.
func (e EdgePlacement) IsValid() bool {
	return e >= Left && e <= Top
}
