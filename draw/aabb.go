package draw

import (
	"fmt"

	"github.com/planar2d/planar"
	"github.com/planar2d/planar/geom"
)

// AABB is a drawable axis-aligned box. The embedded geom.AABB is
// exclusively owned; its accessors (BBox, Rect, Shape, Pos, corner
// positions, ...) are promoted on the drawable.
type AABB struct {
	Style
	geom.AABB
}

var _ Drawable = (*AABB)(nil)

// NewAABB returns a drawable box with the given explicit bounds.
func NewAABB(xmin, xmax, ymin, ymax float64, opts ...Option) (*AABB, error) {
	g, err := geom.NewAABB(xmin, xmax, ymin, ymax)
	if err != nil {
		return nil, err
	}
	return newAABB(g, opts)
}

// NewAABBSpec returns a drawable box built from any of the alternate
// representations geom.ResolveAABB accepts.
func NewAABBSpec(spec geom.Spec, opts ...Option) (*AABB, error) {
	g, err := geom.ResolveAABB(spec)
	if err != nil {
		return nil, err
	}
	return newAABB(g, opts)
}

func newAABB(g geom.AABB, opts []Option) (*AABB, error) {
	style, err := newStyle(opts...)
	if err != nil {
		return nil, err
	}
	return &AABB{Style: style, AABB: g}, nil
}

// Geometric returns a copy of the owned primitive.
func (a *AABB) Geometric() geom.AABB {
	return a.AABB
}

// Move translates the box in place by delta.
func (a *AABB) Move(delta planar.Vec2) {
	a.Translate(delta)
}

func (a *AABB) clone() *AABB {
	cp := *a
	return &cp
}

// Copy returns a fully independent duplicate.
func (a *AABB) Copy() Drawable { return a.clone() }

// Moved returns a translated copy, leaving the receiver untouched.
func (a *AABB) Moved(delta planar.Vec2) Drawable {
	n := a.clone()
	n.Move(delta)
	return n
}

// Rotated returns a rotated copy, leaving the receiver untouched.
func (a *AABB) Rotated(theta float64, axis *planar.Vec2) Drawable {
	n := a.clone()
	n.Rotate(theta, axis)
	return n
}

// Rescaled returns a rescaled copy, leaving the receiver untouched.
func (a *AABB) Rescaled(scale float64) Drawable {
	n := a.clone()
	n.Rescale(scale)
	return n
}

// Transformed returns a transformed copy, leaving the receiver untouched.
func (a *AABB) Transformed(m planar.Matrix) Drawable {
	n := a.clone()
	n.Transform(m)
	return n
}

// Draw dispatches the box to the canvas.
func (a *AABB) Draw(canvas any) error {
	cv, ok := canvas.(AABBCanvas)
	if !ok {
		return fmt.Errorf("%w: canvas %T cannot draw %q", ErrUnsupportedCanvasOperation, canvas, a.Primitive())
	}
	return cv.DrawAABB(a)
}

// VerticesWithin returns the four corners. The box is already polygonal,
// so tol is ignored.
func (a *AABB) VerticesWithin(tol float64) []planar.Vec2 {
	v := a.Vertices()
	return v[:]
}

// Primitive returns the canvas primitive tag.
func (a *AABB) Primitive() string { return "aabb" }
