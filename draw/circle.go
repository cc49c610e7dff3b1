package draw

import (
	"fmt"
	"math"

	"github.com/planar2d/planar"
	"github.com/planar2d/planar/geom"
)

// Circle is a drawable circle. The embedded geom.Circle is exclusively
// owned; its accessors and predicates (Radius, Pos, IntersectsCircle, ...)
// are promoted on the drawable.
type Circle struct {
	Style
	geom.Circle
}

var _ Drawable = (*Circle)(nil)

// NewCircle returns a drawable circle with the given radius and center.
func NewCircle(radius float64, pos planar.Vec2, opts ...Option) (*Circle, error) {
	style, err := newStyle(opts...)
	if err != nil {
		return nil, err
	}
	g, err := geom.NewCircle(radius, pos)
	if err != nil {
		return nil, err
	}
	return &Circle{Style: style, Circle: g}, nil
}

// Geometric returns a copy of the owned primitive.
func (c *Circle) Geometric() geom.Circle {
	return c.Circle
}

// Move translates the circle in place by delta.
func (c *Circle) Move(delta planar.Vec2) {
	c.Translate(delta)
}

func (c *Circle) clone() *Circle {
	cp := *c
	return &cp
}

// Copy returns a fully independent duplicate.
func (c *Circle) Copy() Drawable { return c.clone() }

// Moved returns a translated copy, leaving the receiver untouched.
func (c *Circle) Moved(delta planar.Vec2) Drawable {
	n := c.clone()
	n.Move(delta)
	return n
}

// Rotated returns a rotated copy, leaving the receiver untouched.
func (c *Circle) Rotated(theta float64, axis *planar.Vec2) Drawable {
	n := c.clone()
	n.Rotate(theta, axis)
	return n
}

// Rescaled returns a rescaled copy, leaving the receiver untouched.
func (c *Circle) Rescaled(scale float64) Drawable {
	n := c.clone()
	n.Rescale(scale)
	return n
}

// Transformed returns a transformed copy, leaving the receiver untouched.
func (c *Circle) Transformed(m planar.Matrix) Drawable {
	n := c.clone()
	n.Transform(m)
	return n
}

// Draw dispatches the circle to the canvas.
func (c *Circle) Draw(canvas any) error {
	cv, ok := canvas.(CircleCanvas)
	if !ok {
		return fmt.Errorf("%w: canvas %T cannot draw %q", ErrUnsupportedCanvasOperation, canvas, c.Primitive())
	}
	return cv.DrawCircle(c)
}

// VerticesWithin approximates the circle boundary with a regular polygon
// whose maximum deviation from the true boundary (the sagitta of each
// chord) is at most tol. At least 8 vertices are always produced.
func (c *Circle) VerticesWithin(tol float64) []planar.Vec2 {
	n := 8
	if tol > 0 && tol < c.Radius {
		n = int(math.Ceil(math.Pi / math.Acos(1-tol/c.Radius)))
		if n < 8 {
			n = 8
		}
	}

	vertices := make([]planar.Vec2, n)
	step := 2 * math.Pi / float64(n)
	for i := range vertices {
		a := step * float64(i)
		vertices[i] = c.Pos.Add(planar.V2(math.Cos(a), math.Sin(a)).Mul(c.Radius))
	}
	return vertices
}

// Primitive returns the canvas primitive tag.
func (c *Circle) Primitive() string { return "circle" }
