package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/planar2d/planar"
)

func square(t *testing.T) Poly {
	t.Helper()
	p, err := NewPoly([]planar.Vec2{
		planar.V2(0, 0), planar.V2(2, 0), planar.V2(2, 2), planar.V2(0, 2),
	})
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}
	return p
}

func TestNewPoly(t *testing.T) {
	if _, err := NewPoly([]planar.Vec2{{}, {X: 1}}); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("error = %v, want ErrTooFewVertices", err)
	}

	// The input slice is copied.
	vs := []planar.Vec2{planar.V2(0, 0), planar.V2(1, 0), planar.V2(0, 1)}
	p, err := NewPoly(vs)
	if err != nil {
		t.Fatal(err)
	}
	vs[0] = planar.V2(99, 99)
	if p.Vertices()[0] != planar.V2(0, 0) {
		t.Error("polygon aliases the input slice")
	}
}

func TestPoly_VerticesVerbatim(t *testing.T) {
	in := []planar.Vec2{planar.V2(0, 0), planar.V2(3, 1), planar.V2(2, 4), planar.V2(-1, 2)}
	p, err := NewPoly(in)
	if err != nil {
		t.Fatal(err)
	}

	got := p.Vertices()
	if len(got) != len(in) {
		t.Fatalf("got %d vertices, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("vertex %d = %v, want %v (order must be preserved)", i, got[i], in[i])
		}
	}

	// The returned slice is a copy.
	got[0] = planar.V2(99, 99)
	if p.Vertices()[0] != in[0] {
		t.Error("Vertices() exposes internal storage")
	}
}

func TestPoly_AreaCentroid(t *testing.T) {
	p := square(t)
	if p.Area() != 4 {
		t.Errorf("Area = %v, want 4", p.Area())
	}
	if !p.Centroid().Approx(planar.V2(1, 1), 1e-12) {
		t.Errorf("Centroid = %v, want (1, 1)", p.Centroid())
	}

	// Winding order does not affect the unsigned area.
	rev, err := NewPoly([]planar.Vec2{
		planar.V2(0, 2), planar.V2(2, 2), planar.V2(2, 0), planar.V2(0, 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if rev.Area() != 4 {
		t.Errorf("reversed Area = %v, want 4", rev.Area())
	}
	if !rev.Centroid().Approx(planar.V2(1, 1), 1e-12) {
		t.Errorf("reversed Centroid = %v", rev.Centroid())
	}
}

func TestPoly_ContainsPoint(t *testing.T) {
	p := square(t)
	if !p.ContainsPoint(planar.V2(1, 1)) {
		t.Error("interior point not contained")
	}
	if p.ContainsPoint(planar.V2(3, 1)) || p.ContainsPoint(planar.V2(-1, 1)) {
		t.Error("exterior point contained")
	}
}

func TestPoly_EdgesDirections(t *testing.T) {
	p := square(t)

	edges := p.Edges()
	if len(edges) != 4 {
		t.Fatalf("got %d edges", len(edges))
	}
	if edges[0] != planar.V2(2, 0) || edges[1] != planar.V2(0, 2) {
		t.Errorf("edges = %v", edges)
	}

	dirs := p.Directions(0)
	if len(dirs) != 4 {
		t.Fatalf("got %d directions", len(dirs))
	}
	for i, d := range dirs {
		if math.Abs(d.Length()-1) > 1e-12 {
			t.Errorf("direction %d not normalized: %v", i, d)
		}
		if math.Abs(d.Dot(edges[i])) > 1e-12 {
			t.Errorf("direction %d not normal to its edge", i)
		}
	}
}

func TestPoly_Shadow(t *testing.T) {
	p := square(t)
	if min, max := p.Shadow(planar.V2(1, 0)); min != 0 || max != 2 {
		t.Errorf("Shadow = (%v, %v), want (0, 2)", min, max)
	}
}

func TestPoly_BoundingBox(t *testing.T) {
	p, err := NewPoly([]planar.Vec2{planar.V2(-1, 2), planar.V2(3, 0), planar.V2(1, 5)})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.BoundingBox(); got != (AABB{XMin: -1, XMax: 3, YMin: 0, YMax: 5}) {
		t.Errorf("BoundingBox = %v", got)
	}
}

func TestPoly_Transforms(t *testing.T) {
	t.Run("translate", func(t *testing.T) {
		p := square(t)
		p.Translate(planar.V2(1, 1))
		if p.Vertices()[0] != planar.V2(1, 1) {
			t.Errorf("after Translate: %v", p.Vertices())
		}
	})

	t.Run("rotate about centroid keeps centroid", func(t *testing.T) {
		p := square(t)
		p.Rotate(math.Pi/4, nil)
		if !p.Centroid().Approx(planar.V2(1, 1), 1e-10) {
			t.Errorf("centroid moved: %v", p.Centroid())
		}
		if math.Abs(p.Area()-4) > 1e-10 {
			t.Errorf("area changed: %v", p.Area())
		}
	})

	t.Run("rotate about axis", func(t *testing.T) {
		p := square(t)
		axis := planar.V2(0, 0)
		p.Rotate(math.Pi, &axis)
		if !p.Centroid().Approx(planar.V2(-1, -1), 1e-10) {
			t.Errorf("centroid = %v, want (-1, -1)", p.Centroid())
		}
	})

	t.Run("rescale about centroid", func(t *testing.T) {
		p := square(t)
		p.Rescale(2)
		if math.Abs(p.Area()-16) > 1e-10 {
			t.Errorf("area = %v, want 16", p.Area())
		}
		if !p.Centroid().Approx(planar.V2(1, 1), 1e-10) {
			t.Errorf("centroid moved: %v", p.Centroid())
		}
	})

	t.Run("linear transform", func(t *testing.T) {
		p := square(t)
		p.Transform(planar.Scale(2, 3))
		if got := p.BoundingBox(); got != (AABB{XMin: 0, XMax: 4, YMin: 0, YMax: 6}) {
			t.Errorf("after Transform: %v", got)
		}
	})
}

func TestPoly_CloneIndependence(t *testing.T) {
	p := square(t)
	q := p.Clone()
	q.Translate(planar.V2(10, 10))
	if p.Vertices()[0] != planar.V2(0, 0) {
		t.Error("mutating the clone changed the original")
	}
}
