package solid

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// Cuboctahedron returns the vector equilibrium: 12 vertices at the edge
// midpoints of a cube, 8 triangular and 6 square faces, 24 edges of equal
// length. Every vertex is exactly radius from center and every edge has the
// same length as that radius, the property that names the shape.
func Cuboctahedron(center geom.Vec3, radius float64) (*geom.Solid, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	unit := []geom.Vec3{
		{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
		{X: 1, Z: 1}, {X: 1, Z: -1}, {X: -1, Z: 1}, {X: -1, Z: -1},
		{Y: 1, Z: 1}, {Y: 1, Z: -1}, {Y: -1, Z: 1}, {Y: -1, Z: -1},
	}
	faces := [][]int{
		// 8 triangles, one per octant.
		{0, 4, 8}, {0, 5, 9}, {1, 4, 10}, {1, 5, 11},
		{2, 6, 8}, {2, 7, 9}, {3, 6, 10}, {3, 7, 11},
		// 6 squares, one per axis-aligned plane at distance 1.
		{0, 4, 1, 5},  // x = +1
		{2, 6, 3, 7},  // x = -1
		{0, 8, 2, 9},  // y = +1
		{1, 10, 3, 11}, // y = -1
		{4, 8, 6, 10}, // z = +1
		{5, 9, 7, 11}, // z = -1
	}
	return build(center, radius, math.Sqrt(2), unit, faces), nil
}
