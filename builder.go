package edgecurve

import (
	"fmt"
	"log/slog"
	"slices"
)

// OutlineSource is what a host rendering layer needs from a clip shape: an
// outline for the current size of the region, and whether a previously
// built outline has to be thrown away.
//
// [Builder] implements OutlineSource.
type OutlineSource interface {
	Build(size Size) (BezPath, error)
	ShouldRebuild(prev OutlineSource) bool
}

var _ OutlineSource = (*Builder[QuadSegment])(nil)
var _ OutlineSource = (*Builder[CubicSegment])(nil)

// Builder produces outlines for a fixed list of segments and a placement.
// The segment list is validated and copied on construction, so a Builder is
// immutable and safe for concurrent use.
type Builder[S Segment] struct {
	segments  []S
	placement EdgePlacement
	cfg       config
}

// NewBuilder returns a builder for segs placed on the given side. It returns
// an error wrapping [ErrNoSegments] if segs is empty, and one wrapping
// [ErrInvalidPlacement] if placement is not one of the four sides.
func NewBuilder[S Segment](segs []S, placement EdgePlacement, opts ...Option) (*Builder[S], error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %v outline needs at least one segment", ErrNoSegments, placement)
	}
	if !placement.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlacement, placement)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder[S]{
		segments:  slices.Clone(segs),
		placement: placement,
		cfg:       cfg,
	}, nil
}

// NewQuadBuilder returns a builder whose curved side consists of quadratic
// Béziers.
func NewQuadBuilder(segs []QuadSegment, placement EdgePlacement, opts ...Option) (*Builder[QuadSegment], error) {
	return NewBuilder(segs, placement, opts...)
}

// NewCubicBuilder returns a builder whose curved side consists of cubic
// Béziers.
func NewCubicBuilder(segs []CubicSegment, placement EdgePlacement, opts ...Option) (*Builder[CubicSegment], error) {
	return NewBuilder(segs, placement, opts...)
}

// Placement returns the side replaced by curves.
func (b *Builder[S]) Placement() EdgePlacement { return b.placement }

// Segments returns a copy of the builder's segments.
func (b *Builder[S]) Segments() []S { return slices.Clone(b.segments) }

// Build returns the outline for a region of the given size, with its top
// left corner at the origin.
//
// Non-finite coordinates, from degenerate segments or a non-finite size, are
// passed through into the outline and logged, unless the builder was created
// with [WithStrict], in which case a [*DegenerateError] is returned.
//
// A Builder that was not obtained from one of the constructors has no
// segments and returns [ErrNoSegments].
func (b *Builder[S]) Build(size Size) (BezPath, error) {
	if len(b.segments) == 0 {
		return nil, ErrNoSegments
	}
	if !b.placement.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlacement, b.placement)
	}
	p := Assemble(b.segments, b.placement, size)
	if err := checkFinite(p); err != nil {
		if b.cfg.strict {
			return nil, err
		}
		Logger().Warn("outline contains non-finite coordinates",
			slog.String("placement", b.placement.String()),
			slog.String("size", size.String()),
			slog.Any("error", err))
	}
	Logger().Debug("built outline",
		slog.String("placement", b.placement.String()),
		slog.Int("segments", len(b.segments)),
		slog.String("size", size.String()))
	return p, nil
}

// BuildRect returns the outline for the region r. Segment coordinates are
// relative to the origin of r, as with [Builder.Build]. A strict builder
// rejects a non-finite r with an error wrapping [ErrDegenerate].
func (b *Builder[S]) BuildRect(r Rect) (BezPath, error) {
	if b.cfg.strict && (r.IsNaN() || r.IsInf()) {
		return nil, fmt.Errorf("%w: non-finite region %v", ErrDegenerate, r)
	}
	p, err := b.Build(r.Size())
	if err != nil {
		return nil, err
	}
	return p.Transform(Translate(Vec2(r.Origin()))), nil
}

// ShouldRebuild reports the redraw flag set with [WithRedraw]. prev is the
// source that produced the host's cached outline; it is not consulted.
func (b *Builder[S]) ShouldRebuild(prev OutlineSource) bool {
	return b.cfg.redraw
}
