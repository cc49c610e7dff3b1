package draw

import (
	"fmt"

	"github.com/planar2d/planar"
	"github.com/planar2d/planar/geom"
)

// Poly is a drawable polygon. The embedded geom.Poly is exclusively
// owned: construction and copies always deep-copy the vertex storage.
type Poly struct {
	Style
	geom.Poly
}

var _ Drawable = (*Poly)(nil)

// NewPoly returns a drawable polygon with the given vertices, in winding
// order. The slice is copied.
func NewPoly(vertices []planar.Vec2, opts ...Option) (*Poly, error) {
	style, err := newStyle(opts...)
	if err != nil {
		return nil, err
	}
	g, err := geom.NewPoly(vertices)
	if err != nil {
		return nil, err
	}
	return &Poly{Style: style, Poly: g}, nil
}

// NewRectangle returns a rectangle as a four-vertex drawable polygon,
// built from any of the alternate representations geom.ResolveAABB
// accepts. Unlike a drawable AABB it rotates freely.
func NewRectangle(spec geom.Spec, opts ...Option) (*Poly, error) {
	box, err := geom.ResolveAABB(spec)
	if err != nil {
		return nil, err
	}
	corners := box.Vertices()
	return NewPoly(corners[:], opts...)
}

// Geometric returns a deep copy of the owned primitive.
func (p *Poly) Geometric() geom.Poly {
	return p.Poly.Clone()
}

// Move translates the polygon in place by delta.
func (p *Poly) Move(delta planar.Vec2) {
	p.Translate(delta)
}

func (p *Poly) clone() *Poly {
	cp := *p
	cp.Poly = p.Poly.Clone()
	return &cp
}

// Copy returns a fully independent duplicate, including vertex storage.
func (p *Poly) Copy() Drawable { return p.clone() }

// Moved returns a translated copy, leaving the receiver untouched.
func (p *Poly) Moved(delta planar.Vec2) Drawable {
	n := p.clone()
	n.Move(delta)
	return n
}

// Rotated returns a rotated copy, leaving the receiver untouched.
func (p *Poly) Rotated(theta float64, axis *planar.Vec2) Drawable {
	n := p.clone()
	n.Rotate(theta, axis)
	return n
}

// Rescaled returns a rescaled copy, leaving the receiver untouched.
func (p *Poly) Rescaled(scale float64) Drawable {
	n := p.clone()
	n.Rescale(scale)
	return n
}

// Transformed returns a transformed copy, leaving the receiver untouched.
func (p *Poly) Transformed(m planar.Matrix) Drawable {
	n := p.clone()
	n.Transform(m)
	return n
}

// Draw dispatches the polygon to the canvas.
func (p *Poly) Draw(canvas any) error {
	cv, ok := canvas.(PolyCanvas)
	if !ok {
		return fmt.Errorf("%w: canvas %T cannot draw %q", ErrUnsupportedCanvasOperation, canvas, p.Primitive())
	}
	return cv.DrawPoly(p)
}

// VerticesWithin returns the polygon vertices verbatim; tol is ignored
// since the shape is already piecewise-linear.
func (p *Poly) VerticesWithin(tol float64) []planar.Vec2 {
	return p.Vertices()
}

// Primitive returns the canvas primitive tag.
func (p *Poly) Primitive() string { return "poly" }
