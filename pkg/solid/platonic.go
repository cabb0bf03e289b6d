// Package solid generates the 3D sacred-geometry polyhedra: the five
// Platonic solids, the Merkaba, the cuboctahedron (vector equilibrium), the
// torus, and the spherical Flower of Life. Every generator scales its
// closed-form vertex set so each vertex sits exactly at the requested
// circumradius from the center, then derives edges from the face table.
package solid

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// build scales the unit vertex set to the requested circumradius,
// translates it to center, and assembles the solid with edges deduped from
// the face table. norm is the circumradius of the unscaled vertex set.
func build(center geom.Vec3, radius, norm float64, unit []geom.Vec3, faces [][]int) *geom.Solid {
	verts := make([]geom.Vec3, len(unit))
	k := radius / norm
	for i, v := range unit {
		verts[i] = v.Scale(k).Add(center)
	}
	return &geom.Solid{
		Vertices: verts,
		Edges:    geom.EdgesFromFaces(faces),
		Faces:    faces,
	}
}

// Tetrahedron returns a regular tetrahedron with the given circumradius.
// The canonical orientation uses the four alternating cube corners
// (1,1,1), (1,-1,-1), (-1,1,-1), (-1,-1,1).
func Tetrahedron(center geom.Vec3, radius float64) (*geom.Solid, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	unit := []geom.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	faces := [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	return build(center, radius, math.Sqrt(3), unit, faces), nil
}

// Cube returns a cube (hexahedron) with the given circumradius.
func Cube(center geom.Vec3, radius float64) (*geom.Solid, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	unit := []geom.Vec3{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1},
		{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1},
	}
	faces := [][]int{
		{0, 1, 3, 2}, // x = +1
		{4, 5, 7, 6}, // x = -1
		{0, 1, 5, 4}, // y = +1
		{2, 3, 7, 6}, // y = -1
		{0, 2, 6, 4}, // z = +1
		{1, 3, 7, 5}, // z = -1
	}
	return build(center, radius, math.Sqrt(3), unit, faces), nil
}

// Octahedron returns a regular octahedron with the given circumradius.
func Octahedron(center geom.Vec3, radius float64) (*geom.Solid, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	unit := []geom.Vec3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	faces := [][]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 4}, {1, 4, 3}, {1, 3, 5}, {1, 5, 2},
	}
	return build(center, radius, 1, unit, faces), nil
}

// Icosahedron returns a regular icosahedron with the given circumradius.
func Icosahedron(center geom.Vec3, radius float64) (*geom.Solid, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	phi := geom.Phi()
	unit := []geom.Vec3{
		{Y: 1, Z: phi}, {Y: -1, Z: phi}, {Y: 1, Z: -phi}, {Y: -1, Z: -phi},
		{X: 1, Y: phi}, {X: -1, Y: phi}, {X: 1, Y: -phi}, {X: -1, Y: -phi},
		{X: phi, Z: 1}, {X: -phi, Z: 1}, {X: phi, Z: -1}, {X: -phi, Z: -1},
	}
	faces := [][]int{
		{0, 1, 8}, {0, 1, 9}, {0, 4, 5}, {0, 4, 8}, {0, 5, 9},
		{1, 6, 7}, {1, 6, 8}, {1, 7, 9}, {2, 3, 10}, {2, 3, 11},
		{2, 4, 5}, {2, 4, 10}, {2, 5, 11}, {3, 6, 7}, {3, 6, 10},
		{3, 7, 11}, {4, 8, 10}, {5, 9, 11}, {6, 8, 10}, {7, 9, 11},
	}
	return build(center, radius, math.Sqrt(1+phi*phi), unit, faces), nil
}

// Dodecahedron returns a regular dodecahedron with the given circumradius.
func Dodecahedron(center geom.Vec3, radius float64) (*geom.Solid, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	phi := geom.Phi()
	inv := 1 / phi
	unit := []geom.Vec3{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1},
		{Y: phi, Z: inv}, {Y: phi, Z: -inv}, {Y: -phi, Z: inv}, {Y: -phi, Z: -inv},
		{X: inv, Z: phi}, {X: inv, Z: -phi}, {X: -inv, Z: phi}, {X: -inv, Z: -phi},
		{X: phi, Y: inv}, {X: phi, Y: -inv}, {X: -phi, Y: inv}, {X: -phi, Y: -inv},
	}
	faces := [][]int{
		{0, 8, 4, 14, 12},
		{0, 8, 9, 1, 16},
		{0, 12, 2, 17, 16},
		{1, 9, 5, 15, 13},
		{1, 13, 3, 17, 16},
		{2, 10, 6, 14, 12},
		{2, 10, 11, 3, 17},
		{3, 11, 7, 15, 13},
		{4, 8, 9, 5, 18},
		{4, 14, 6, 19, 18},
		{5, 15, 7, 19, 18},
		{6, 10, 11, 7, 19},
	}
	return build(center, radius, math.Sqrt(3), unit, faces), nil
}
