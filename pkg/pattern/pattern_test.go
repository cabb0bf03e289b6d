package pattern

import (
	"errors"
	"math"
	"testing"

	"github.com/mkale/aurelia/pkg/geom"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func vecAlmostEqual(a, b geom.Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestCircleAllPointsOnRadius(t *testing.T) {
	center := geom.Vec2{X: 2, Y: -1}
	c, err := Circle(center, 3.5, 64)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	if len(c.Points) != 64 {
		t.Fatalf("got %d points, want 64", len(c.Points))
	}
	for i, p := range c.Points {
		if d := p.Sub(center).Length(); !almostEqual(d, 3.5) {
			t.Errorf("point %d at distance %v, want 3.5", i, d)
		}
	}
}

func TestCircleValidation(t *testing.T) {
	var ipe *geom.InvalidParameterError
	if _, err := Circle(geom.Vec2{}, 0, 10); !errors.As(err, &ipe) {
		t.Errorf("zero radius: got %v", err)
	}
	if _, err := Circle(geom.Vec2{}, -1, 10); !errors.As(err, &ipe) {
		t.Errorf("negative radius: got %v", err)
	}
	if _, err := Circle(geom.Vec2{}, 1, 2); !errors.As(err, &ipe) {
		t.Errorf("numPoints=2: got %v", err)
	}
}

func TestRegularPolygonRotationalSymmetry(t *testing.T) {
	// Rotating the polygon by 2pi/n must reproduce the vertex set up to
	// index rotation.
	const n = 7
	p, err := RegularPolygon(geom.Vec2{}, 2, n, 0)
	if err != nil {
		t.Fatalf("RegularPolygon: %v", err)
	}
	if len(p.Vertices) != n {
		t.Fatalf("got %d vertices, want %d", len(p.Vertices), n)
	}
	step := 2 * math.Pi / n
	for i, v := range p.Vertices {
		rotated := v.Rotate(step)
		next := p.Vertices[(i+1)%n]
		if !vecAlmostEqual(rotated, next) {
			t.Errorf("vertex %d rotated = %+v, want %+v", i, rotated, next)
		}
	}
}

func TestRegularPolygonStartsAtRotation(t *testing.T) {
	p, err := RegularPolygon(geom.Vec2{}, 1, 4, math.Pi/2)
	if err != nil {
		t.Fatalf("RegularPolygon: %v", err)
	}
	if !vecAlmostEqual(p.Vertices[0], geom.Vec2{X: 0, Y: 1}) {
		t.Errorf("first vertex = %+v, want (0,1)", p.Vertices[0])
	}
}

func TestGoldenRectangleProportion(t *testing.T) {
	r, err := GoldenRectangle(geom.Vec2{}, 2)
	if err != nil {
		t.Fatalf("GoldenRectangle: %v", err)
	}
	w := r.Vertices[1].X - r.Vertices[0].X
	h := r.Vertices[2].Y - r.Vertices[1].Y
	if !almostEqual(w/h, geom.Phi()) {
		t.Errorf("aspect = %v, want phi", w/h)
	}
}

func TestSeedOfLife(t *testing.T) {
	circles, err := SeedOfLife(geom.Vec2{}, 1)
	if err != nil {
		t.Fatalf("SeedOfLife: %v", err)
	}
	if len(circles) != 7 {
		t.Fatalf("got %d circles, want 7", len(circles))
	}
	for i := 1; i < 7; i++ {
		d := circles[i].Center.Length()
		if !almostEqual(d, 1) {
			t.Errorf("ring circle %d center at distance %v, want 1", i, d)
		}
		angle := math.Atan2(circles[i].Center.Y, circles[i].Center.X)
		want := float64(i-1) * math.Pi / 3
		if want > math.Pi {
			want -= 2 * math.Pi
		}
		if !almostEqual(angle, want) {
			t.Errorf("ring circle %d at angle %v, want %v", i, angle, want)
		}
	}
}

func TestFlowerOfLifeRingCounts(t *testing.T) {
	tests := []struct {
		layers int
		want   int
	}{
		{0, 1},
		{1, 7},   // 1 + 6
		{2, 19},  // 1 + 6 + 12
		{3, 37},  // 1 + 6 + 12 + 18
	}
	for _, tt := range tests {
		circles, err := FlowerOfLife(geom.Vec2{}, 1, tt.layers)
		if err != nil {
			t.Fatalf("FlowerOfLife(layers=%d): %v", tt.layers, err)
		}
		if len(circles) != tt.want {
			t.Errorf("layers=%d: got %d circles, want %d", tt.layers, len(circles), tt.want)
		}
		for i, c := range circles {
			if c.Radius != 1 {
				t.Errorf("layers=%d circle %d radius %v, want 1", tt.layers, i, c.Radius)
			}
		}
	}
}

func TestFlowerOfLifeSixfoldSymmetry(t *testing.T) {
	circles, err := FlowerOfLife(geom.Vec2{}, 1, 2)
	if err != nil {
		t.Fatalf("FlowerOfLife: %v", err)
	}
	centers := make(map[gridKey]struct{}, len(circles))
	for _, c := range circles {
		centers[keyOf(c.Center)] = struct{}{}
	}
	// Every center rotated by 60 degrees must land on another center.
	for _, c := range circles {
		rotated := c.Center.Rotate(math.Pi / 3)
		if _, ok := centers[keyOf(rotated)]; !ok {
			t.Errorf("center %+v rotated by 60 degrees has no counterpart", c.Center)
		}
	}
}

func TestFlowerOfLifeNegativeLayers(t *testing.T) {
	var ipe *geom.InvalidParameterError
	if _, err := FlowerOfLife(geom.Vec2{}, 1, -1); !errors.As(err, &ipe) {
		t.Errorf("got %v, want InvalidParameterError", err)
	}
}

func TestMetatron(t *testing.T) {
	m, err := Metatron(geom.Vec2{}, 0.5)
	if err != nil {
		t.Fatalf("Metatron: %v", err)
	}
	if len(m.Vertices) != 13 {
		t.Errorf("got %d vertices, want 13", len(m.Vertices))
	}
	if len(m.Circles) != 13 {
		t.Errorf("got %d circles, want 13", len(m.Circles))
	}
	if len(m.Lines) != 78 {
		t.Errorf("got %d lines, want C(13,2) = 78", len(m.Lines))
	}
}

func TestIntersectCircles(t *testing.T) {
	// Equal circles one radius apart: the classic vesica crossing.
	pts := IntersectCircles(geom.Vec2{}, 1, geom.Vec2{X: 1}, 1)
	if len(pts) != 2 {
		t.Fatalf("got %d intersections, want 2", len(pts))
	}
	for _, p := range pts {
		if !almostEqual(p.X, 0.5) {
			t.Errorf("intersection X = %v, want 0.5", p.X)
		}
		if !almostEqual(math.Abs(p.Y), math.Sqrt(3)/2) {
			t.Errorf("intersection |Y| = %v, want sqrt(3)/2", math.Abs(p.Y))
		}
	}

	// Tangent circles meet at exactly one point.
	pts = IntersectCircles(geom.Vec2{}, 1, geom.Vec2{X: 2}, 1)
	if len(pts) != 1 {
		t.Errorf("tangent circles: got %d intersections, want 1", len(pts))
	}

	// Disjoint circles have none.
	if pts := IntersectCircles(geom.Vec2{}, 1, geom.Vec2{X: 5}, 1); len(pts) != 0 {
		t.Errorf("disjoint circles: got %d intersections, want 0", len(pts))
	}
}

func TestVesica(t *testing.T) {
	v, err := Vesica(geom.Vec2{}, geom.Vec2{X: 1}, 1)
	if err != nil {
		t.Fatalf("Vesica: %v", err)
	}
	if len(v.Intersections) != 2 {
		t.Errorf("got %d intersections, want 2", len(v.Intersections))
	}

	var dge *geom.DegenerateGeometryError
	if _, err := Vesica(geom.Vec2{}, geom.Vec2{X: 2}, 1); !errors.As(err, &dge) {
		t.Errorf("separation == 2r: got %v, want DegenerateGeometryError", err)
	}
	if _, err := Vesica(geom.Vec2{}, geom.Vec2{X: 3}, 1); !errors.As(err, &dge) {
		t.Errorf("separation > 2r: got %v, want DegenerateGeometryError", err)
	}
	if _, err := Vesica(geom.Vec2{}, geom.Vec2{}, 1); !errors.As(err, &dge) {
		t.Errorf("coincident centers: got %v, want DegenerateGeometryError", err)
	}
}

func TestGoldenSpiralGrowth(t *testing.T) {
	sp, err := GoldenSpiral(geom.Vec2{}, 0.1, 100, 3, 90)
	if err != nil {
		t.Fatalf("GoldenSpiral: %v", err)
	}
	if len(sp.Points) == 0 {
		t.Fatal("empty spiral")
	}
	// Radius after one quarter turn (index pointsPerTurn/4) grows by phi.
	r0 := sp.Points[0].Length()
	rq := sp.Points[90/4].Length()
	// The quarter-turn index is inexact by at most one sample step.
	if math.Abs(rq/r0-geom.Phi()) > 0.1 {
		t.Errorf("quarter-turn growth = %v, want ~phi", rq/r0)
	}
}

func TestGoldenSpiralStopsAtMaxRadius(t *testing.T) {
	sp, err := GoldenSpiral(geom.Vec2{}, 1, 2, 10, 100)
	if err != nil {
		t.Fatalf("GoldenSpiral: %v", err)
	}
	last := sp.Points[len(sp.Points)-1]
	if !almostEqual(last.Length(), 2) {
		t.Errorf("final radius = %v, want clamp at maxRadius 2", last.Length())
	}
	for i, p := range sp.Points {
		if p.Length() > 2+tol {
			t.Errorf("point %d beyond maxRadius: %v", i, p.Length())
		}
	}
}

func TestGoldenSpiralValidation(t *testing.T) {
	var ipe *geom.InvalidParameterError
	if _, err := GoldenSpiral(geom.Vec2{}, 0, 10, 3, 100); !errors.As(err, &ipe) {
		t.Errorf("zero startRadius: got %v", err)
	}
	if _, err := GoldenSpiral(geom.Vec2{}, 1, 0.5, 3, 100); !errors.As(err, &ipe) {
		t.Errorf("maxRadius < startRadius: got %v", err)
	}
}

func TestFibonacci(t *testing.T) {
	fs, err := Fibonacci(geom.Vec2{}, 0.5, 6)
	if err != nil {
		t.Fatalf("Fibonacci: %v", err)
	}
	if len(fs.Squares) != 6 {
		t.Errorf("got %d squares, want 6", len(fs.Squares))
	}
	// One quarter arc per iteration after the first.
	if want := 5 * arcSamples; len(fs.Spiral.Points) != want {
		t.Errorf("got %d spiral points, want %d", len(fs.Spiral.Points), want)
	}
	fib := geom.FibonacciSequence(6)
	for i, sq := range fs.Squares {
		if !almostEqual(sq.Side, float64(fib[i])*0.5) {
			t.Errorf("square %d side = %v, want %v", i, sq.Side, float64(fib[i])*0.5)
		}
	}
}
