package edgecurve

import (
	"fmt"
	"math"
)

// Size is the extent of the region being clipped. The host supplies it on
// every build; it is never stored by a [Builder].
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

// IsEmpty reports whether the size encloses no area.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}

// IsFinite reports whether both dimensions are neither infinite nor NaN.
func (sz Size) IsFinite() bool {
	return !math.IsInf(sz.Width, 0) && !math.IsNaN(sz.Width) &&
		!math.IsInf(sz.Height, 0) && !math.IsNaN(sz.Height)
}
