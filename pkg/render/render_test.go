package render

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/pattern"
	"github.com/mkale/aurelia/pkg/solid"
)

const tol = 1e-9

func testComposition(t *testing.T) *compose.Composition {
	t.Helper()
	circles, err := pattern.SeedOfLife(geom.Vec2{}, 1)
	if err != nil {
		t.Fatalf("seed of life: %v", err)
	}
	cube, err := solid.Cube(geom.Vec3{}, 2)
	if err != nil {
		t.Fatalf("cube: %v", err)
	}
	return &compose.Composition{
		Circles: circles,
		Solids:  []*geom.Solid{cube},
	}
}

func TestPNGProducesDecodableImage(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(&buf, testComposition(t), DefaultStyle(), Isometric(), 320, 240)
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}

func TestPNGRejectsBadDimensions(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(&buf, &compose.Composition{}, DefaultStyle(), Isometric(), 0, 100)
	var perr *geom.InvalidParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("want InvalidParameterError, got %v", err)
	}
}

func TestSVGOutput(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(&buf, testComposition(t), DefaultStyle(), Isometric(), 400, 400)
	if err != nil {
		t.Fatalf("svg: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	// seed of life contributes 7 circles
	if got := strings.Count(out, "<circle"); got != 7 {
		t.Errorf("svg has %d circle elements, want 7", got)
	}
	// cube edges become line elements
	if got := strings.Count(out, "<line"); got != 12 {
		t.Errorf("svg has %d line elements, want 12", got)
	}
}

func TestProjectionDropsDepth(t *testing.T) {
	p := Projection{}
	got := p.Point(geom.Vec3{X: 3, Y: 2, Z: 99})
	if math.Abs(got.X-3) > tol || math.Abs(got.Y-2) > tol {
		t.Errorf("head-on projection moved the point: %+v", got)
	}
}

func TestProjectionAzimuthQuarterTurn(t *testing.T) {
	p := Projection{Azimuth: math.Pi / 2}
	got := p.Point(geom.Vec3{X: 1})
	// a quarter turn brings the X axis into the depth direction
	if math.Abs(got.X) > tol {
		t.Errorf("X = %g, want 0", got.X)
	}
}

func TestProjectionPreservesVerticalAtZeroElevation(t *testing.T) {
	p := Projection{Azimuth: 1.234}
	got := p.Point(geom.Vec3{Y: 5})
	if math.Abs(got.Y-5) > tol {
		t.Errorf("Y = %g, want 5", got.Y)
	}
}

func TestDefaultStyleIsFresh(t *testing.T) {
	a := DefaultStyle()
	a.Stroke = "#ff0000"
	b := DefaultStyle()
	if b.Stroke == "#ff0000" {
		t.Error("DefaultStyle shares state between calls")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("default style invalid: %v", err)
	}
}

func TestStyleValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Style)
	}{
		{"zero stroke width", func(s *Style) { s.StrokeWidth = 0 }},
		{"alpha above one", func(s *Style) { s.FillAlpha = 1.5 }},
		{"bare color", func(s *Style) { s.Stroke = "d4af37" }},
		{"short color", func(s *Style) { s.Background = "#fff" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultStyle()
			tc.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("invalid style accepted")
			}
		})
	}
}

func TestLoadSchemes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemes.toml")
	doc := `
[schemes.midnight]
background = "#0a0a12"
stroke = "#d4af37"
fill = "#1c1c2e"
stroke_width = 2.0
fill_alpha = 0.3
show_fill = true

[schemes.paper]
background = "#fdf6e3"
stroke = "#333333"
fill = "#ffffff"
stroke_width = 1.0
fill_alpha = 0.0
show_fill = false
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	schemes, err := LoadSchemes(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(schemes) != 2 {
		t.Fatalf("loaded %d schemes, want 2", len(schemes))
	}
	s, err := Scheme(schemes, "midnight")
	if err != nil {
		t.Fatalf("scheme: %v", err)
	}
	if s.Stroke != "#d4af37" || !s.ShowFill {
		t.Errorf("midnight scheme mismatch: %+v", s)
	}
}

func TestLoadSchemesRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	doc := `
[schemes.broken]
background = "#000000"
stroke = "nope"
fill = "#ffffff"
stroke_width = 1.0
fill_alpha = 0.0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadSchemes(path)
	var cerr *geom.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConfigurationError, got %v", err)
	}
}

func TestSchemeLookup(t *testing.T) {
	schemes := map[string]Style{"only": DefaultStyle()}
	if _, err := Scheme(schemes, "missing"); err == nil {
		t.Error("unknown scheme accepted")
	}
	s, err := Scheme(schemes, "")
	if err != nil {
		t.Fatalf("empty name: %v", err)
	}
	if s != DefaultStyle() {
		t.Error("empty name did not fall back to the default style")
	}
}
