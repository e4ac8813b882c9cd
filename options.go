package edgecurve

// Option configures a [Builder] during creation.
//
// Example:
//
//	b, err := edgecurve.NewQuadBuilder(segs, edgecurve.Top,
//	    edgecurve.WithRedraw(true),
//	    edgecurve.WithStrict())
type Option func(*config)

// config holds optional configuration for Builder creation.
type config struct {
	redraw bool
	strict bool
}

// WithRedraw sets the redraw flag reported by [Builder.ShouldRebuild]. Hosts
// use it to decide whether a cached outline must be recomputed even though
// placement and segments look unchanged.
func WithRedraw(redraw bool) Option {
	return func(c *config) {
		c.redraw = redraw
	}
}

// WithStrict makes [Builder.Build] fail with a [*DegenerateError] instead of
// returning an outline that contains NaN or infinite coordinates. Such
// coordinates come from a quadratic proportion of 0 or 1, or from coincident
// neighbouring cubic anchors.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}
