package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/planar2d/planar"
)

func TestNewCircle(t *testing.T) {
	c, err := NewCircle(50, planar.V2(50, 0))
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	if c.Radius != 50 || c.Pos != planar.V2(50, 0) {
		t.Errorf("NewCircle = %v", c)
	}

	if _, err := NewCircle(-1, planar.Vec2{}); !errors.Is(err, ErrNegativeRadius) {
		t.Errorf("negative radius error = %v, want ErrNegativeRadius", err)
	}
}

func TestCircle_IntersectsCircle(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{
			"overlapping",
			Circle{Radius: 5, Pos: planar.V2(0, 0)},
			Circle{Radius: 5, Pos: planar.V2(3, 0)},
			true,
		},
		{
			"touching boundaries count",
			Circle{Radius: 3, Pos: planar.V2(0, 0)},
			Circle{Radius: 2, Pos: planar.V2(5, 0)},
			true,
		},
		{
			"separated",
			Circle{Radius: 3, Pos: planar.V2(0, 0)},
			Circle{Radius: 2, Pos: planar.V2(5.001, 0)},
			false,
		},
		{
			"contained",
			Circle{Radius: 10, Pos: planar.V2(0, 0)},
			Circle{Radius: 1, Pos: planar.V2(2, 0)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IntersectsCircle(tt.b); got != tt.want {
				t.Errorf("IntersectsCircle = %v, want %v", got, tt.want)
			}
			if got := tt.b.IntersectsCircle(tt.a); got != tt.want {
				t.Errorf("IntersectsCircle is not symmetric")
			}
		})
	}
}

func TestCircle_Contains(t *testing.T) {
	big := Circle{Radius: 10, Pos: planar.V2(0, 0)}
	tests := []struct {
		name  string
		other Circle
		want  bool
	}{
		{"well inside", Circle{Radius: 2, Pos: planar.V2(1, 1)}, true},
		{"touching from inside", Circle{Radius: 4, Pos: planar.V2(6, 0)}, true},
		{"poking out", Circle{Radius: 4, Pos: planar.V2(7, 0)}, false},
		{"outside", Circle{Radius: 1, Pos: planar.V2(20, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := big.ContainsCircle(tt.other); got != tt.want {
				t.Errorf("ContainsCircle = %v, want %v", got, tt.want)
			}
		})
	}

	if !big.ContainsPoint(planar.V2(10, 0)) {
		t.Error("boundary point not contained")
	}
	if big.ContainsPoint(planar.V2(10.001, 0)) {
		t.Error("outside point contained")
	}
}

func TestCircle_IntersectsPoint(t *testing.T) {
	c := Circle{Radius: 5, Pos: planar.V2(0, 0)}

	tests := []struct {
		name  string
		point planar.Vec2
		tol   float64
		want  bool
	}{
		{"on boundary", planar.V2(5, 0), DefaultTol, true},
		{"near boundary within tol", planar.V2(5.05, 0), 0.1, true},
		{"near boundary outside tol", planar.V2(5.05, 0), DefaultTol, false},
		{"center", planar.V2(0, 0), DefaultTol, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IntersectsPoint(tt.point, tt.tol); got != tt.want {
				t.Errorf("IntersectsPoint(%v, %v) = %v, want %v", tt.point, tt.tol, got, tt.want)
			}
		})
	}
}

func TestCircle_Distances(t *testing.T) {
	a := Circle{Radius: 1, Pos: planar.V2(0, 0)}
	b := Circle{Radius: 2, Pos: planar.V2(10, 0)}

	if got := a.DistanceCenter(b); got != 10 {
		t.Errorf("DistanceCenter = %v, want 10", got)
	}
	if got := a.DistanceCircle(b); got != 7 {
		t.Errorf("DistanceCircle = %v, want 7", got)
	}

	overlapping := Circle{Radius: 8, Pos: planar.V2(5, 0)}
	if got := a.DistanceCircle(overlapping); got != 0 {
		t.Errorf("DistanceCircle overlapping = %v, want 0", got)
	}
}

func TestCircle_Transforms(t *testing.T) {
	t.Run("translate", func(t *testing.T) {
		c := Circle{Radius: 2, Pos: planar.V2(1, 1)}
		c.Translate(planar.V2(3, -1))
		if c.Pos != planar.V2(4, 0) || c.Radius != 2 {
			t.Errorf("after Translate: %v", c)
		}
	})

	t.Run("rotate about own center is a no-op", func(t *testing.T) {
		c := Circle{Radius: 2, Pos: planar.V2(1, 1)}
		c.Rotate(1.23, nil)
		if c.Pos != planar.V2(1, 1) || c.Radius != 2 {
			t.Errorf("after Rotate(nil): %v", c)
		}
	})

	t.Run("rotate about axis moves the center", func(t *testing.T) {
		c := Circle{Radius: 2, Pos: planar.V2(1, 0)}
		axis := planar.V2(0, 0)
		c.Rotate(math.Pi/2, &axis)
		if !c.Pos.Approx(planar.V2(0, 1), 1e-10) {
			t.Errorf("after Rotate: pos = %v, want (0, 1)", c.Pos)
		}
	})

	t.Run("rescale", func(t *testing.T) {
		c := Circle{Radius: 2, Pos: planar.V2(1, 1)}
		c.Rescale(2.5)
		if c.Radius != 5 || c.Pos != planar.V2(1, 1) {
			t.Errorf("after Rescale: %v", c)
		}
	})

	t.Run("transform scales radius by sqrt of det", func(t *testing.T) {
		c := Circle{Radius: 2, Pos: planar.V2(1, 0)}
		c.Transform(planar.Scale(4, 1))
		if math.Abs(c.Radius-4) > 1e-10 {
			t.Errorf("radius = %v, want 4", c.Radius)
		}
		if !c.Pos.Approx(planar.V2(4, 0), 1e-10) {
			t.Errorf("pos = %v, want (4, 0)", c.Pos)
		}
	})
}

func TestCircle_ShadowAndBounds(t *testing.T) {
	c := Circle{Radius: 3, Pos: planar.V2(1, 2)}

	min, max := c.Shadow(planar.V2(1, 0))
	if min != -2 || max != 4 {
		t.Errorf("Shadow x = (%v, %v), want (-2, 4)", min, max)
	}

	box := c.BoundingBox()
	if box != (AABB{XMin: -2, XMax: 4, YMin: -1, YMax: 5}) {
		t.Errorf("BoundingBox = %v", box)
	}

	if got := c.Directions(0); len(got) != 0 {
		t.Errorf("Directions = %v, want none", got)
	}
}

func TestCircle_Area(t *testing.T) {
	c := Circle{Radius: 2}
	if math.Abs(c.Area()-4*math.Pi) > 1e-12 {
		t.Errorf("Area = %v", c.Area())
	}
	if math.Abs(c.ROGSqr()-2) > 1e-12 {
		t.Errorf("ROGSqr = %v", c.ROGSqr())
	}
}
