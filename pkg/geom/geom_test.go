package geom

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestPhi(t *testing.T) {
	phi := Phi()
	if !almostEqual(phi, 1.6180339887498949) {
		t.Errorf("Phi() = %v, want (1+sqrt5)/2", phi)
	}
	// phi^2 = phi + 1 is the defining identity.
	if !almostEqual(phi*phi, phi+1) {
		t.Errorf("phi^2 = %v, want phi+1 = %v", phi*phi, phi+1)
	}
}

func TestFibonacciSequence(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{-3, nil},
		{1, []int{1}},
		{2, []int{1, 1}},
		{8, []int{1, 1, 2, 3, 5, 8, 13, 21}},
	}
	for _, tt := range tests {
		got := FibonacciSequence(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("FibonacciSequence(%d) has %d entries, want %d", tt.n, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("FibonacciSequence(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestVec2Rotate(t *testing.T) {
	v := Vec2{1, 0}
	got := v.Rotate(math.Pi / 2)
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Errorf("Rotate(pi/2) = %+v, want (0,1)", got)
	}
	// A full turn is the identity.
	full := v.Rotate(2 * math.Pi)
	if !almostEqual(full.X, 1) || !almostEqual(full.Y, 0) {
		t.Errorf("Rotate(2pi) = %+v, want (1,0)", full)
	}
}

func TestVec2RotateAbout(t *testing.T) {
	got := Vec2{2, 1}.RotateAbout(math.Pi, Vec2{1, 1})
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Errorf("RotateAbout = %+v, want (0,1)", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %+v, want z", got)
	}
}

func TestVec3RotateY(t *testing.T) {
	got := Vec3{1, 5, 0}.RotateY(math.Pi / 2)
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 5) || !almostEqual(got.Z, -1) {
		t.Errorf("RotateY(pi/2) = %+v", got)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero Vec2 Normalize = %+v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Vec3 Normalize = %+v", got)
	}
}

func TestEdgesFromFaces(t *testing.T) {
	// Tetrahedron face table: 6 distinct edges, each shared by two faces.
	faces := [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	edges := EdgesFromFaces(faces)
	if len(edges) != 6 {
		t.Fatalf("got %d edges, want 6", len(edges))
	}
	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i, e := range edges {
		if e != want[i] {
			t.Errorf("edges[%d] = %v, want %v", i, e, want[i])
		}
	}
}

func TestSolidValidate(t *testing.T) {
	ok := &Solid{
		Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Edges:    [][2]int{{0, 1}, {1, 2}, {0, 2}},
		Faces:    [][]int{{0, 1, 2}},
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid solid rejected: %v", err)
	}

	badEdge := &Solid{Vertices: ok.Vertices, Edges: [][2]int{{0, 3}}}
	if err := badEdge.Validate(); err == nil {
		t.Error("out-of-range edge accepted")
	}

	badFace := &Solid{Vertices: ok.Vertices, Faces: [][]int{{0, 1, 5}}}
	if err := badFace.Validate(); err == nil {
		t.Error("out-of-range face accepted")
	}

	thinFace := &Solid{Vertices: ok.Vertices, Faces: [][]int{{0, 1}}}
	if err := thinFace.Validate(); err == nil {
		t.Error("two-vertex face accepted")
	}
}

func TestSolidTranslateDoesNotMutate(t *testing.T) {
	s := &Solid{Vertices: []Vec3{{1, 2, 3}}}
	moved := s.Translate(Vec3{1, 1, 1})
	if s.Vertices[0] != (Vec3{1, 2, 3}) {
		t.Error("Translate mutated the receiver")
	}
	if moved.Vertices[0] != (Vec3{2, 3, 4}) {
		t.Errorf("Translate result = %+v", moved.Vertices[0])
	}
}

func TestCheckPositive(t *testing.T) {
	if err := CheckPositive("radius", 1.0); err != nil {
		t.Errorf("positive value rejected: %v", err)
	}
	err := CheckPositive("radius", 0)
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("want InvalidParameterError, got %T", err)
	}
	if ipe.Param != "radius" {
		t.Errorf("Param = %q", ipe.Param)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&InvalidParameterError{Param: "sides", Value: 2, Reason: "must be at least 3"}, "invalid parameter sides=2: must be at least 3"},
		{&ConfigurationError{Message: "mismatched lengths"}, "configuration error: mismatched lengths"},
		{&UnsupportedShapeError{Name: "hypercube"}, `unsupported shape type "hypercube"`},
		{&DegenerateGeometryError{Message: "circles do not intersect"}, "degenerate geometry: circles do not intersect"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
