package main

import (
	"context"
	"log"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/engine"
	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/preview"
)

// colorPalette assigns distinct colors to successive scene entries.
var colorPalette = []string{
	"#D4AF37", "#4A90D9", "#E67E22", "#2ECC71",
	"#9B59B6", "#E74C3C", "#1ABC9C", "#3498DB",
}

// previewMeshCells is the marching cubes resolution for GUI previews;
// coarser than the package default to keep evaluation interactive.
const previewMeshCells = 64

// App is the Wails backend. It exposes methods to the frontend via
// bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// WireData is a solid's edge set as flat line-segment coordinates:
// 6 floats per segment (x0,y0,z0, x1,y1,z1).
type WireData struct {
	Segments []float32 `json:"segments"`
	Color    string    `json:"color"`
}

// PathData is a 2D curve as flat coordinates: 2 floats per point.
type PathData struct {
	Points []float64 `json:"points"`
	Closed bool      `json:"closed"`
	Color  string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// SceneResult is the full result returned to the frontend.
type SceneResult struct {
	Meshes []MeshData      `json:"meshes"`
	Wires  []WireData      `json:"wires"`
	Paths  []PathData      `json:"paths"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates a new App with a DSL engine.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
	}
}

// startup is called by Wails on app startup. The context is saved so
// Wails runtime methods can be called later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes Lisp source and returns scene data + errors. This is
// the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) SceneResult {
	result := SceneResult{
		Meshes: []MeshData{},
		Wires:  []WireData{},
		Paths:  []PathData{},
		Errors: []EvalErrorData{},
	}

	c, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	return buildScene(c)
}

// buildScene converts a composition into the frontend scene format.
// Sphere clusters become shaded marching-cubes meshes; solids become
// wireframes; 2D figures become flat paths.
func buildScene(c *compose.Composition) SceneResult {
	result := SceneResult{
		Meshes: []MeshData{},
		Wires:  []WireData{},
		Paths:  []PathData{},
		Errors: []EvalErrorData{},
	}
	nextColor := paletteCycler()

	if len(c.Spheres) > 0 {
		mesh, err := preview.SphereCluster("spheres", c.Spheres, previewMeshCells)
		if err != nil {
			result.Errors = append(result.Errors, EvalErrorData{
				Message: "mesh preview failed: " + err.Error(),
			})
		} else {
			result.Meshes = append(result.Meshes, MeshData{
				Vertices: mesh.Vertices,
				Normals:  mesh.Normals,
				Indices:  mesh.Indices,
				Name:     mesh.Name,
				Color:    nextColor(),
			})
		}
	}

	for _, s := range c.Solids {
		result.Wires = append(result.Wires, WireData{
			Segments: solidSegments(s),
			Color:    nextColor(),
		})
	}

	for _, circ := range c.Circles {
		result.Paths = append(result.Paths, PathData{
			Points: flatten2(circ.Points),
			Closed: true,
			Color:  nextColor(),
		})
	}
	for _, poly := range c.Polygons {
		result.Paths = append(result.Paths, PathData{
			Points: flatten2(poly.Vertices),
			Closed: true,
			Color:  nextColor(),
		})
	}
	for _, pl := range c.Polylines {
		result.Paths = append(result.Paths, PathData{
			Points: flatten2(pl.Points),
			Color:  nextColor(),
		})
	}
	for _, ln := range c.Lines {
		result.Paths = append(result.Paths, PathData{
			Points: []float64{ln.A.X, ln.A.Y, ln.B.X, ln.B.Y},
			Color:  nextColor(),
		})
	}

	return result
}

func paletteCycler() func() string {
	i := 0
	return func() string {
		color := colorPalette[i%len(colorPalette)]
		i++
		return color
	}
}

func flatten2(points []geom.Vec2) []float64 {
	out := make([]float64, 0, len(points)*2)
	for _, p := range points {
		out = append(out, p.X, p.Y)
	}
	return out
}

func solidSegments(s *geom.Solid) []float32 {
	out := make([]float32, 0, len(s.Edges)*6)
	for _, e := range s.Edges {
		a, b := s.Vertices[e[0]], s.Vertices[e[1]]
		out = append(out,
			float32(a.X), float32(a.Y), float32(a.Z),
			float32(b.X), float32(b.Y), float32(b.Z))
	}
	return out
}
