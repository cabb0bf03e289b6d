// Package fractal generates recursive point-set figures: the Sierpinski
// triangle, the Koch snowflake, the binary fractal tree, and the dragon
// curve. Every generator bottoms out at depth 0 with a finite structure,
// and output size is a closed-form function of depth.
package fractal

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// Sierpinski subdivides the triangle into three half-scale corner
// triangles per level, omitting the central one, and returns the 3^depth
// leaf triangles. depth 0 returns the input triangle unchanged.
func Sierpinski(tri geom.Triangle2, depth int) ([]geom.Triangle2, error) {
	if depth < 0 {
		return nil, &geom.InvalidParameterError{
			Param: "depth", Value: float64(depth), Reason: "must be non-negative",
		}
	}
	return sierpinski(tri, depth), nil
}

func sierpinski(tri geom.Triangle2, depth int) []geom.Triangle2 {
	if depth == 0 {
		return []geom.Triangle2{tri}
	}

	m01 := tri[0].Add(tri[1]).Scale(0.5)
	m12 := tri[1].Add(tri[2]).Scale(0.5)
	m20 := tri[2].Add(tri[0]).Scale(0.5)

	out := make([]geom.Triangle2, 0, 3*intPow(3, depth-1))
	out = append(out, sierpinski(geom.Triangle2{tri[0], m01, m20}, depth-1)...)
	out = append(out, sierpinski(geom.Triangle2{m01, tri[1], m12}, depth-1)...)
	out = append(out, sierpinski(geom.Triangle2{m20, m12, tri[2]}, depth-1)...)
	return out
}

// KochSnowflake replaces every boundary segment with four segments forming
// an outward equilateral bump, recursively to depth levels. depth 0 returns
// the input boundary unchanged. The point count is n * 4^depth for an
// n-vertex input polygon.
func KochSnowflake(points []geom.Vec2, depth int) ([]geom.Vec2, error) {
	if depth < 0 {
		return nil, &geom.InvalidParameterError{
			Param: "depth", Value: float64(depth), Reason: "must be non-negative",
		}
	}
	if len(points) < 3 {
		return nil, &geom.InvalidParameterError{
			Param: "points", Value: float64(len(points)), Reason: "polygon needs at least 3 vertices",
		}
	}

	current := points
	for d := 0; d < depth; d++ {
		next := make([]geom.Vec2, 0, 4*len(current))
		n := len(current)
		for i := 0; i < n; i++ {
			start := current[i]
			end := current[(i+1)%n]
			third := end.Sub(start).Scale(1.0 / 3.0)

			p2 := start.Add(third)
			// The bump peak: the first-third point plus the segment third
			// rotated by 60 degrees.
			p3 := p2.Add(third.Rotate(math.Pi / 3))
			p4 := start.Add(third.Scale(2))

			next = append(next, start, p2, p3, p4)
		}
		current = next
	}
	return current, nil
}

func intPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
