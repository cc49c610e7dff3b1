package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/planar2d/planar"
)

// DefaultTol is the tolerance used by point-on-boundary tests when callers
// have no better bound.
const DefaultTol = 1e-6

// ErrNegativeRadius is returned when constructing a circle with a negative
// radius.
var ErrNegativeRadius = errors.New("geom: negative radius")

// Circle represents a circle with a given radius and center position.
// Invariant: Radius >= 0.
type Circle struct {
	Radius float64
	Pos    planar.Vec2
}

// NewCircle returns a circle with the given radius centered at pos.
func NewCircle(radius float64, pos planar.Vec2) (Circle, error) {
	if radius < 0 {
		return Circle{}, fmt.Errorf("%w: %v", ErrNegativeRadius, radius)
	}
	return Circle{Radius: radius, Pos: pos}, nil
}

// Area returns the area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// ROGSqr returns the squared radius of gyration about the center.
func (c Circle) ROGSqr() float64 {
	return c.Radius * c.Radius / 2
}

// ROG returns the radius of gyration about the center.
func (c Circle) ROG() float64 {
	return c.Radius / math.Sqrt2
}

// BoundingBox returns the tightest AABB enclosing the circle.
func (c Circle) BoundingBox() AABB {
	return AABB{
		XMin: c.Pos.X - c.Radius, XMax: c.Pos.X + c.Radius,
		YMin: c.Pos.Y - c.Radius, YMax: c.Pos.Y + c.Radius,
	}
}

// DistanceCenter returns the distance between the centers of two circles.
func (c Circle) DistanceCenter(other Circle) float64 {
	return c.Pos.Distance(other.Pos)
}

// DistanceCircle returns the distance between the boundaries of two
// circles. Zero when they intersect.
func (c Circle) DistanceCircle(other Circle) float64 {
	d := c.DistanceCenter(other) - c.Radius - other.Radius
	if d < 0 {
		return 0
	}
	return d
}

// IntersectsCircle reports whether two circles intersect. Touching
// boundaries count as intersecting; the test is tolerance-free.
func (c Circle) IntersectsCircle(other Circle) bool {
	return c.DistanceCenter(other) <= c.Radius+other.Radius
}

// IntersectsPoint reports whether the point lies on the circle boundary
// within the given tolerance. Pass DefaultTol when in doubt.
func (c Circle) IntersectsPoint(point planar.Vec2, tol float64) bool {
	return math.Abs(point.Distance(c.Pos)-c.Radius) <= tol
}

// ContainsCircle reports whether other lies entirely inside the circle.
func (c Circle) ContainsCircle(other Circle) bool {
	return c.DistanceCenter(other)+other.Radius <= c.Radius
}

// ContainsPoint reports whether the point lies inside or on the circle.
func (c Circle) ContainsPoint(point planar.Vec2) bool {
	return point.Distance(c.Pos) <= c.Radius
}

// Directions returns the exhaustive direction set for the separating axis
// test. A circle has infinitely many; returning none makes the test use
// only the other shape's directions.
func (c Circle) Directions(n int) []planar.Vec2 {
	return nil
}

// Shadow returns the projection interval of the circle onto the direction
// n. Assumes n is normalized.
func (c Circle) Shadow(n planar.Vec2) (min, max float64) {
	p0 := c.Pos.Dot(n)
	return p0 - c.Radius, p0 + c.Radius
}

// Translate moves the circle in place by delta.
func (c *Circle) Translate(delta planar.Vec2) {
	c.Pos = c.Pos.Add(delta)
}

// Rotate rotates the circle in place by theta radians about the given
// axis. A nil axis rotates about the circle's own center, which leaves
// it unchanged.
func (c *Circle) Rotate(theta float64, about *planar.Vec2) {
	if about == nil {
		return
	}
	c.Pos = c.Pos.RotateAround(theta, *about)
}

// Rescale scales the circle in place by the given factor about its center.
func (c *Circle) Rescale(scale float64) {
	c.Radius *= math.Abs(scale)
}

// Transform applies a linear transform in place. The center follows the
// full affine map; the radius is scaled by sqrt(|det|), the isotropic
// approximation of an arbitrary stretch.
func (c *Circle) Transform(m planar.Matrix) {
	c.Pos = m.Apply(c.Pos)
	c.Radius *= math.Sqrt(math.Abs(m.Det()))
}

// String implements fmt.Stringer.
func (c Circle) String() string {
	return fmt.Sprintf("Circle(%.1f, (%.1f, %.1f))", c.Radius, c.Pos.X, c.Pos.Y)
}
