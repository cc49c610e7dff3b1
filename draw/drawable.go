package draw

import (
	"errors"
	"fmt"

	"github.com/planar2d/planar"
	"github.com/planar2d/planar/geom"
)

// Drawable errors.
var (
	// ErrUnsupportedPrimitive is returned by FromPrimitive for values that
	// are not one of the known geometric primitives.
	ErrUnsupportedPrimitive = errors.New("draw: unsupported primitive")

	// ErrUnsupportedCanvasOperation is returned by Draw when the canvas
	// does not implement the entry point for the drawable's primitive.
	ErrUnsupportedCanvasOperation = errors.New("draw: unsupported canvas operation")
)

// DefaultVertexTol is the boundary approximation tolerance used when
// callers have no better bound, in position units.
const DefaultVertexTol = 2.0

// Drawable is the uniform contract shared by every shape variant.
//
// The four in-place transforms mutate the receiver and assume exclusive
// ownership for the duration of the call. Each derived counterpart
// duplicates the shape (a fully independent copy, no aliasing of the
// owned primitive) and applies the in-place operation to the duplicate,
// leaving the receiver untouched.
type Drawable interface {
	// Move translates the shape in place by delta.
	Move(delta planar.Vec2)

	// Rotate rotates the shape in place by theta radians about axis,
	// or about the shape's own center when axis is nil.
	Rotate(theta float64, axis *planar.Vec2)

	// Rescale scales the shape in place by a uniform factor.
	Rescale(scale float64)

	// Transform applies a general linear transform in place.
	Transform(m planar.Matrix)

	// Moved, Rotated, Rescaled and Transformed return transformed copies,
	// leaving the receiver untouched.
	Moved(delta planar.Vec2) Drawable
	Rotated(theta float64, axis *planar.Vec2) Drawable
	Rescaled(scale float64) Drawable
	Transformed(m planar.Matrix) Drawable

	// Copy returns a fully independent duplicate of the shape.
	Copy() Drawable

	// Draw dispatches the shape to the canvas entry point matching its
	// primitive, passing the shape itself so the canvas can read geometry
	// and style. Fails with ErrUnsupportedCanvasOperation when the canvas
	// lacks the entry point.
	Draw(canvas any) error

	// VerticesWithin returns a finite sequence of boundary-approximating
	// points. For non-polygonal shapes tol bounds the maximum deviation
	// between the true boundary and the approximation, in position units;
	// for already-polygonal shapes it is ignored and the vertices are
	// returned verbatim.
	VerticesWithin(tol float64) []planar.Vec2

	// Primitive returns the canvas primitive tag, fixed per variant:
	// "circle", "aabb", "poly" or "image".
	Primitive() string
}

// Per-primitive canvas capabilities. A renderer implements the ones it
// supports; Draw type-asserts the capability it needs.
type (
	// CircleCanvas rasterizes circles.
	CircleCanvas interface {
		DrawCircle(*Circle) error
	}

	// AABBCanvas rasterizes axis-aligned boxes.
	AABBCanvas interface {
		DrawAABB(*AABB) error
	}

	// PolyCanvas rasterizes polygons.
	PolyCanvas interface {
		DrawPoly(*Poly) error
	}

	// ImageCanvas rasterizes textured images.
	ImageCanvas interface {
		DrawImage(*Image) error
	}
)

// Canvas is the full rasterization surface: every primitive entry point.
type Canvas interface {
	CircleCanvas
	AABBCanvas
	PolyCanvas
	ImageCanvas
}

// FromPrimitive wraps a bare geometric primitive in the matching drawable
// variant. It accepts geom.Circle, geom.AABB and geom.Poly, by value or
// pointer; anything else fails with ErrUnsupportedPrimitive.
func FromPrimitive(obj any, opts ...Option) (Drawable, error) {
	style, err := newStyle(opts...)
	if err != nil {
		return nil, err
	}

	switch p := obj.(type) {
	case geom.Circle:
		return &Circle{Style: style, Circle: p}, nil
	case *geom.Circle:
		return &Circle{Style: style, Circle: *p}, nil
	case geom.AABB:
		return &AABB{Style: style, AABB: p}, nil
	case *geom.AABB:
		return &AABB{Style: style, AABB: *p}, nil
	case geom.Poly:
		return &Poly{Style: style, Poly: p.Clone()}, nil
	case *geom.Poly:
		return &Poly{Style: style, Poly: p.Clone()}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPrimitive, obj)
	}
}
