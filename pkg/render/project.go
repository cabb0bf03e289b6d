package render

import (
	"math"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
)

// Projection maps 3D points onto the drawing plane orthographically:
// rotate by Azimuth about the vertical axis, tilt by Elevation, drop
// depth. Both angles are radians.
type Projection struct {
	Azimuth   float64
	Elevation float64
}

// Isometric returns the classic isometric view.
func Isometric() Projection {
	return Projection{Azimuth: math.Pi / 4, Elevation: math.Asin(math.Tan(math.Pi / 6))}
}

// Point projects a 3D point to the plane.
func (p Projection) Point(v geom.Vec3) geom.Vec2 {
	ca, sa := math.Cos(p.Azimuth), math.Sin(p.Azimuth)
	x := ca*v.X + sa*v.Z
	z := -sa*v.X + ca*v.Z
	ce, se := math.Cos(p.Elevation), math.Sin(p.Elevation)
	return geom.Vec2{X: x, Y: ce*v.Y - se*z}
}

// circleShape is a drawable circle in plane coordinates. Orthographic
// projection keeps a sphere's silhouette a circle of the same radius.
type circleShape struct {
	center geom.Vec2
	radius float64
}

// pathShape is a drawable polyline in plane coordinates.
type pathShape struct {
	points []geom.Vec2
	closed bool
}

// flatScene is a composition reduced to plane shapes, ready for a
// backend to draw.
type flatScene struct {
	circles []circleShape
	paths   []pathShape
}

func flatten(c *compose.Composition, proj Projection) flatScene {
	var scene flatScene
	for _, circ := range c.Circles {
		scene.circles = append(scene.circles, circleShape{center: circ.Center, radius: circ.Radius})
	}
	for _, sph := range c.Spheres {
		scene.circles = append(scene.circles, circleShape{center: proj.Point(sph.Center), radius: sph.Radius})
	}
	for _, poly := range c.Polygons {
		scene.paths = append(scene.paths, pathShape{points: poly.Vertices, closed: true})
	}
	for _, pl := range c.Polylines {
		scene.paths = append(scene.paths, pathShape{points: pl.Points})
	}
	for _, ln := range c.Lines {
		scene.paths = append(scene.paths, pathShape{points: []geom.Vec2{ln.A, ln.B}})
	}
	for _, s := range c.Solids {
		projected := make([]geom.Vec2, len(s.Vertices))
		for i, v := range s.Vertices {
			projected[i] = proj.Point(v)
		}
		for _, e := range s.Edges {
			scene.paths = append(scene.paths, pathShape{
				points: []geom.Vec2{projected[e[0]], projected[e[1]]},
			})
		}
	}
	return scene
}

// bounds returns the scene's plane-space extents. An empty scene gets a
// unit box around the origin.
func (s flatScene) bounds() (min, max geom.Vec2) {
	first := true
	grow := func(p geom.Vec2) {
		if first {
			min, max = p, p
			first = false
			return
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, c := range s.circles {
		grow(geom.Vec2{X: c.center.X - c.radius, Y: c.center.Y - c.radius})
		grow(geom.Vec2{X: c.center.X + c.radius, Y: c.center.Y + c.radius})
	}
	for _, p := range s.paths {
		for _, pt := range p.points {
			grow(pt)
		}
	}
	if first {
		return geom.Vec2{X: -1, Y: -1}, geom.Vec2{X: 1, Y: 1}
	}
	return min, max
}

// canvasMap converts plane coordinates to pixel coordinates, uniform
// scale, vertical axis flipped, scene centered with a margin.
type canvasMap struct {
	scale    float64
	offset   geom.Vec2
	height   float64
	centerPx geom.Vec2
}

func newCanvasMap(s flatScene, width, height int, margin float64) canvasMap {
	min, max := s.bounds()
	dx, dy := max.X-min.X, max.Y-min.Y
	usableW := float64(width) * (1 - 2*margin)
	usableH := float64(height) * (1 - 2*margin)
	scale := 1.0
	if dx > 0 || dy > 0 {
		sx, sy := math.Inf(1), math.Inf(1)
		if dx > 0 {
			sx = usableW / dx
		}
		if dy > 0 {
			sy = usableH / dy
		}
		scale = math.Min(sx, sy)
	}
	mid := geom.Vec2{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
	return canvasMap{
		scale:    scale,
		offset:   mid,
		height:   float64(height),
		centerPx: geom.Vec2{X: float64(width) / 2, Y: float64(height) / 2},
	}
}

func (m canvasMap) point(p geom.Vec2) (float64, float64) {
	x := m.centerPx.X + (p.X-m.offset.X)*m.scale
	y := m.centerPx.Y - (p.Y-m.offset.Y)*m.scale
	return x, y
}

func (m canvasMap) length(l float64) float64 {
	return l * m.scale
}
