package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/planar2d/planar"
)

// AABB construction errors.
var (
	// ErrInvertedBounds is returned when a constructor receives bounds
	// with min > max on either axis.
	ErrInvertedBounds = errors.New("geom: inverted bounds")

	// ErrConflictingBounds is returned by ResolveAABB when more than one
	// alternate representation is supplied.
	ErrConflictingBounds = errors.New("geom: conflicting bounds")

	// ErrUnderspecifiedBounds is returned by ResolveAABB when no complete
	// representation is supplied.
	ErrUnderspecifiedBounds = errors.New("geom: underspecified bounds")
)

// BBox is the (xmin, xmax, ymin, ymax) representation of a bounding box.
type BBox struct {
	XMin, XMax, YMin, YMax float64
}

// Rect is the (x, y, width, height) representation of a bounding box,
// with (x, y) at the lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// AABB represents an axis-aligned bounding box.
// Invariant: XMin <= XMax and YMin <= YMax. Constructors enforce it;
// code writing the fields directly is responsible for keeping it.
type AABB struct {
	XMin, XMax, YMin, YMax float64
}

// NewAABB returns the AABB with the given explicit bounds.
// Inverted bounds are a construction error, never silently normalized.
func NewAABB(xmin, xmax, ymin, ymax float64) (AABB, error) {
	if xmin > xmax || ymin > ymax {
		return AABB{}, fmt.Errorf("%w: (%v, %v, %v, %v)", ErrInvertedBounds, xmin, xmax, ymin, ymax)
	}
	return AABB{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}, nil
}

// AABBFromBBox builds an AABB from its bbox representation.
func AABBFromBBox(b BBox) (AABB, error) {
	return NewAABB(b.XMin, b.XMax, b.YMin, b.YMax)
}

// AABBFromRect builds an AABB from its rect representation.
func AABBFromRect(r Rect) (AABB, error) {
	return NewAABB(r.X, r.X+r.W, r.Y, r.Y+r.H)
}

// AABBFromShape builds an AABB with the given width and height centered
// at pos.
func AABBFromShape(pos planar.Vec2, width, height float64) (AABB, error) {
	return NewAABB(pos.X-width/2, pos.X+width/2, pos.Y-height/2, pos.Y+height/2)
}

// Spec carries the alternate AABB representations accepted by
// ResolveAABB. Exactly one of BBox, Rect, Shape or Bounds must be set;
// Pos is only meaningful together with Shape and defaults to the origin.
type Spec struct {
	BBox   *BBox
	Rect   *Rect
	Shape  *planar.Vec2 // width, height
	Pos    *planar.Vec2 // center for Shape
	Bounds *[4]float64  // xmin, xmax, ymin, ymax
}

// ResolveAABB builds an AABB from whichever representation the spec
// carries. Supplying more than one fails with ErrConflictingBounds and
// supplying none (or Pos without Shape) fails with
// ErrUnderspecifiedBounds.
func ResolveAABB(s Spec) (AABB, error) {
	n := 0
	if s.BBox != nil {
		n++
	}
	if s.Rect != nil {
		n++
	}
	if s.Shape != nil {
		n++
	}
	if s.Bounds != nil {
		n++
	}

	switch {
	case n > 1:
		return AABB{}, fmt.Errorf("%w: %d representations supplied", ErrConflictingBounds, n)
	case n == 0:
		return AABB{}, fmt.Errorf("%w: one of bbox, rect, shape or bounds is required", ErrUnderspecifiedBounds)
	case s.Pos != nil && s.Shape == nil:
		return AABB{}, fmt.Errorf("%w: pos is only valid together with shape", ErrUnderspecifiedBounds)
	}

	switch {
	case s.BBox != nil:
		return AABBFromBBox(*s.BBox)
	case s.Shape != nil:
		pos := planar.Vec2{}
		if s.Pos != nil {
			pos = *s.Pos
		}
		return AABBFromShape(pos, s.Shape.X, s.Shape.Y)
	case s.Rect != nil:
		return AABBFromRect(*s.Rect)
	default:
		b := *s.Bounds
		return NewAABB(b[0], b[1], b[2], b[3])
	}
}

// BBox returns the (xmin, xmax, ymin, ymax) representation.
func (a AABB) BBox() BBox {
	return BBox{XMin: a.XMin, XMax: a.XMax, YMin: a.YMin, YMax: a.YMax}
}

// Rect returns the (x, y, width, height) representation.
func (a AABB) Rect() Rect {
	return Rect{X: a.XMin, Y: a.YMin, W: a.XMax - a.XMin, H: a.YMax - a.YMin}
}

// Shape returns the width and height of the box.
func (a AABB) Shape() (width, height float64) {
	return a.XMax - a.XMin, a.YMax - a.YMin
}

// Pos returns the center of the box.
func (a AABB) Pos() planar.Vec2 {
	return planar.V2((a.XMin+a.XMax)/2, (a.YMin+a.YMax)/2)
}

// PosSW returns the south-west (lower-left) corner.
func (a AABB) PosSW() planar.Vec2 { return planar.V2(a.XMin, a.YMin) }

// PosSE returns the south-east (lower-right) corner.
func (a AABB) PosSE() planar.Vec2 { return planar.V2(a.XMax, a.YMin) }

// PosNW returns the north-west (upper-left) corner.
func (a AABB) PosNW() planar.Vec2 { return planar.V2(a.XMin, a.YMax) }

// PosNE returns the north-east (upper-right) corner.
func (a AABB) PosNE() planar.Vec2 { return planar.V2(a.XMax, a.YMax) }

// Vertices returns the four corners in counter-clockwise winding starting
// from the south-west corner.
func (a AABB) Vertices() [4]planar.Vec2 {
	return [4]planar.Vec2{a.PosSW(), a.PosSE(), a.PosNE(), a.PosNW()}
}

// RadiusCBB returns the radius of the bounding circle centered at Pos.
func (a AABB) RadiusCBB() float64 {
	w, h := a.Shape()
	return math.Sqrt(w*w+h*h) / 2
}

// CBB returns the bounding circle of the box.
func (a AABB) CBB() Circle {
	return Circle{Radius: a.RadiusCBB(), Pos: a.Pos()}
}

// DistanceCenter returns the distance between the centers of two boxes.
func (a AABB) DistanceCenter(other AABB) float64 {
	return a.Pos().Distance(other.Pos())
}

// DistanceAABB returns the separation distance between two boxes.
// Zero when they intersect.
func (a AABB) DistanceAABB(other AABB) float64 {
	dx := math.Max(0, math.Max(a.XMin-other.XMax, other.XMin-a.XMax))
	dy := math.Max(0, math.Max(a.YMin-other.YMax, other.YMin-a.YMax))
	return math.Hypot(dx, dy)
}

// IntersectsAABB reports whether two boxes overlap. Touching edges count
// as intersecting.
func (a AABB) IntersectsAABB(other AABB) bool {
	return a.XMin <= other.XMax && other.XMin <= a.XMax &&
		a.YMin <= other.YMax && other.YMin <= a.YMax
}

// IntersectsPoint reports whether the point lies on the box boundary
// within the given tolerance.
func (a AABB) IntersectsPoint(point planar.Vec2, tol float64) bool {
	outer := AABB{XMin: a.XMin - tol, XMax: a.XMax + tol, YMin: a.YMin - tol, YMax: a.YMax + tol}
	if !outer.ContainsPoint(point) {
		return false
	}
	// Inside the expanded box: on the boundary unless strictly inside the
	// shrunk box. A box thinner than 2*tol is all boundary.
	inner := AABB{XMin: a.XMin + tol, XMax: a.XMax - tol, YMin: a.YMin + tol, YMax: a.YMax - tol}
	if inner.XMin > inner.XMax || inner.YMin > inner.YMax {
		return true
	}
	strictlyInside := point.X > inner.XMin && point.X < inner.XMax &&
		point.Y > inner.YMin && point.Y < inner.YMax
	return !strictlyInside
}

// ContainsPoint reports whether the point lies inside or on the box.
func (a AABB) ContainsPoint(point planar.Vec2) bool {
	return a.XMin <= point.X && point.X <= a.XMax &&
		a.YMin <= point.Y && point.Y <= a.YMax
}

// ContainsAABB reports whether other lies entirely inside the box.
func (a AABB) ContainsAABB(other AABB) bool {
	return a.XMin <= other.XMin && other.XMax <= a.XMax &&
		a.YMin <= other.YMin && other.YMax <= a.YMax
}

// ContainsCircle reports whether the circle lies entirely inside the box.
func (a AABB) ContainsCircle(c Circle) bool {
	return a.ContainsAABB(c.BoundingBox())
}

// Directions returns the exhaustive direction set for the separating axis
// test: the two principal axes.
func (a AABB) Directions(n int) []planar.Vec2 {
	return []planar.Vec2{planar.V2(1, 0), planar.V2(0, 1)}
}

// Shadow returns the projection interval of the box onto the direction n.
// Assumes n is normalized.
func (a AABB) Shadow(n planar.Vec2) (min, max float64) {
	vertices := a.Vertices()
	min = vertices[0].Dot(n)
	max = min
	for _, v := range vertices[1:] {
		p := v.Dot(n)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}

// ShadowX returns the projection interval of the box onto the x axis.
func (a AABB) ShadowX() (min, max float64) { return a.XMin, a.XMax }

// ShadowY returns the projection interval of the box onto the y axis.
func (a AABB) ShadowY() (min, max float64) { return a.YMin, a.YMax }

// Translate moves the box in place by delta.
func (a *AABB) Translate(delta planar.Vec2) {
	a.XMin += delta.X
	a.XMax += delta.X
	a.YMin += delta.Y
	a.YMax += delta.Y
}

// Rotate rotates the box in place by theta radians about the given axis.
// The box stays axis-aligned: its center follows the rotation and the
// extents are preserved. A nil axis rotates about the box's own center,
// which leaves it unchanged.
func (a *AABB) Rotate(theta float64, about *planar.Vec2) {
	if about == nil {
		return
	}
	a.Translate(a.Pos().RotateAround(theta, *about).Sub(a.Pos()))
}

// Rescale scales the box in place by the given factor about its center.
func (a *AABB) Rescale(scale float64) {
	pos := a.Pos()
	w, h := a.Shape()
	w *= math.Abs(scale) / 2
	h *= math.Abs(scale) / 2
	a.XMin, a.XMax = pos.X-w, pos.X+w
	a.YMin, a.YMax = pos.Y-h, pos.Y+h
}

// Transform applies a linear transform in place. The result is the
// bounding box of the four transformed corners, so the box stays
// axis-aligned.
func (a *AABB) Transform(m planar.Matrix) {
	vertices := a.Vertices()
	p := m.Apply(vertices[0])
	xmin, xmax, ymin, ymax := p.X, p.X, p.Y, p.Y
	for _, v := range vertices[1:] {
		p := m.Apply(v)
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	a.XMin, a.XMax, a.YMin, a.YMax = xmin, xmax, ymin, ymax
}

// String implements fmt.Stringer.
func (a AABB) String() string {
	return fmt.Sprintf("AABB([%.1f, %.1f, %.1f, %.1f])", a.XMin, a.XMax, a.YMin, a.YMax)
}
