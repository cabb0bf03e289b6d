// Package pattern generates the 2D sacred-geometry figures: circles,
// regular polygons, the Seed/Flower/Fruit of Life family, Metatron's Cube,
// the Vesica Piscis, and the golden-ratio spirals. Every generator
// validates its parameters eagerly and returns a freshly allocated value.
package pattern

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// Circle samples a circle of the given radius into numPoints evenly spaced
// points, counter-clockwise starting at angle 0. The starting point is not
// duplicated at the end; consumers close the loop.
func Circle(center geom.Vec2, radius float64, numPoints int) (geom.Circle, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return geom.Circle{}, err
	}
	if err := geom.CheckMin("numPoints", float64(numPoints), 3); err != nil {
		return geom.Circle{}, err
	}

	points := make([]geom.Vec2, numPoints)
	step := 2 * math.Pi / float64(numPoints)
	for i := range points {
		points[i] = center.Polar(radius, float64(i)*step)
	}
	return geom.Circle{Center: center, Radius: radius, Points: points}, nil
}

// RegularPolygon returns the vertices of a regular polygon inscribed in the
// circle of the given radius, counter-clockwise starting at angle rotation.
// The ordering is load-bearing: star patterns connect vertices by index.
func RegularPolygon(center geom.Vec2, radius float64, sides int, rotation float64) (geom.Polygon, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return geom.Polygon{}, err
	}
	if err := geom.CheckMin("sides", float64(sides), 3); err != nil {
		return geom.Polygon{}, err
	}

	verts := make([]geom.Vec2, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range verts {
		verts[i] = center.Polar(radius, rotation+float64(i)*step)
	}
	return geom.Polygon{Vertices: verts}, nil
}

// GoldenRectangle returns a rectangle of the given width whose sides are in
// golden-ratio proportion, vertices counter-clockwise from the bottom-left.
func GoldenRectangle(center geom.Vec2, width float64) (geom.Polygon, error) {
	if err := geom.CheckPositive("width", width); err != nil {
		return geom.Polygon{}, err
	}

	halfW := width / 2
	halfH := width / geom.Phi() / 2
	return geom.Polygon{Vertices: []geom.Vec2{
		{X: center.X - halfW, Y: center.Y - halfH},
		{X: center.X + halfW, Y: center.Y - halfH},
		{X: center.X + halfW, Y: center.Y + halfH},
		{X: center.X - halfW, Y: center.Y + halfH},
	}}, nil
}
