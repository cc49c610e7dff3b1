package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/planar2d/planar"
)

// ErrTooFewVertices is returned when constructing a polygon with fewer
// than three vertices.
var ErrTooFewVertices = errors.New("geom: polygon needs at least three vertices")

// Poly represents a polygon specified by an ordered list of vertices.
// Insertion order is the winding order and is significant for edge and
// normal computation. The vertex storage is owned by the polygon; Clone
// produces a fully independent copy.
type Poly struct {
	vertices []planar.Vec2
}

// NewPoly returns a polygon with the given vertices. The slice is copied.
func NewPoly(vertices []planar.Vec2) (Poly, error) {
	if len(vertices) < 3 {
		return Poly{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}
	vs := make([]planar.Vec2, len(vertices))
	copy(vs, vertices)
	return Poly{vertices: vs}, nil
}

// Clone returns a polygon with independent vertex storage.
func (p Poly) Clone() Poly {
	vs := make([]planar.Vec2, len(p.vertices))
	copy(vs, p.vertices)
	return Poly{vertices: vs}
}

// Vertices returns the vertices verbatim, in winding order.
// The returned slice is a copy; mutating it does not affect the polygon.
func (p Poly) Vertices() []planar.Vec2 {
	vs := make([]planar.Vec2, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// NumVertices returns the number of vertices.
func (p Poly) NumVertices() int {
	return len(p.vertices)
}

// Area returns the unsigned area of the polygon (shoelace formula).
func (p Poly) Area() float64 {
	return math.Abs(p.signedArea())
}

func (p Poly) signedArea() float64 {
	var acc float64
	for i, v := range p.vertices {
		w := p.vertices[(i+1)%len(p.vertices)]
		acc += v.Cross(w)
	}
	return acc / 2
}

// Centroid returns the area-weighted centroid of the polygon.
// Degenerate (zero-area) polygons fall back to the vertex average.
func (p Poly) Centroid() planar.Vec2 {
	area := p.signedArea()
	if area == 0 {
		var acc planar.Vec2
		for _, v := range p.vertices {
			acc = acc.Add(v)
		}
		return acc.Div(float64(len(p.vertices)))
	}

	var acc planar.Vec2
	for i, v := range p.vertices {
		w := p.vertices[(i+1)%len(p.vertices)]
		acc = acc.Add(v.Add(w).Mul(v.Cross(w)))
	}
	return acc.Div(6 * area)
}

// Edges returns the edge vectors in winding order: edge i runs from
// vertex i to vertex i+1.
func (p Poly) Edges() []planar.Vec2 {
	edges := make([]planar.Vec2, len(p.vertices))
	for i, v := range p.vertices {
		edges[i] = p.vertices[(i+1)%len(p.vertices)].Sub(v)
	}
	return edges
}

// Directions returns the unit edge normals, the exhaustive direction set
// for the separating axis test.
func (p Poly) Directions(n int) []planar.Vec2 {
	dirs := make([]planar.Vec2, 0, len(p.vertices))
	for _, e := range p.Edges() {
		dirs = append(dirs, e.Perp().Normalize())
	}
	return dirs
}

// Shadow returns the projection interval of the polygon onto the
// direction n. Assumes n is normalized.
func (p Poly) Shadow(n planar.Vec2) (min, max float64) {
	min = p.vertices[0].Dot(n)
	max = min
	for _, v := range p.vertices[1:] {
		d := v.Dot(n)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// ContainsPoint reports whether the point lies inside the polygon,
// using the even-odd (ray casting) rule.
func (p Poly) ContainsPoint(point planar.Vec2) bool {
	inside := false
	for i, v := range p.vertices {
		w := p.vertices[(i+1)%len(p.vertices)]
		if (v.Y > point.Y) != (w.Y > point.Y) {
			x := v.X + (point.Y-v.Y)/(w.Y-v.Y)*(w.X-v.X)
			if point.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// BoundingBox returns the tightest AABB enclosing the polygon.
func (p Poly) BoundingBox() AABB {
	v := p.vertices[0]
	box := AABB{XMin: v.X, XMax: v.X, YMin: v.Y, YMax: v.Y}
	for _, v := range p.vertices[1:] {
		box.XMin = math.Min(box.XMin, v.X)
		box.XMax = math.Max(box.XMax, v.X)
		box.YMin = math.Min(box.YMin, v.Y)
		box.YMax = math.Max(box.YMax, v.Y)
	}
	return box
}

// Translate moves the polygon in place by delta.
func (p *Poly) Translate(delta planar.Vec2) {
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Add(delta)
	}
}

// Rotate rotates the polygon in place by theta radians about the given
// axis, or about its centroid when the axis is nil.
func (p *Poly) Rotate(theta float64, about *planar.Vec2) {
	pivot := p.Centroid()
	if about != nil {
		pivot = *about
	}
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].RotateAround(theta, pivot)
	}
}

// Rescale scales the polygon in place by the given factor about its
// centroid.
func (p *Poly) Rescale(scale float64) {
	pivot := p.Centroid()
	for i := range p.vertices {
		p.vertices[i] = pivot.Add(p.vertices[i].Sub(pivot).Mul(scale))
	}
}

// Transform applies a linear transform in place to every vertex.
func (p *Poly) Transform(m planar.Matrix) {
	for i := range p.vertices {
		p.vertices[i] = m.Apply(p.vertices[i])
	}
}

// String implements fmt.Stringer.
func (p Poly) String() string {
	return fmt.Sprintf("Poly(%d vertices)", len(p.vertices))
}
